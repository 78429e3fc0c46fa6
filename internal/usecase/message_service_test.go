package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/clubhq/clubmanager/internal/domain/user"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

func newMessageFixture() *MessageService {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	messageRepo := memory.NewMessageRepository(memory.SeedMessages())

	return NewMessageService(teamRepo, messageRepo, id.NewRandomGenerator())
}

func TestMessageService_PostMessage(t *testing.T) {
	svc := newMessageFixture()
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }
	ctx := t.Context()

	principal := user.Principal{UserID: "usr-coach", Name: "Coach"}
	posted, err := svc.PostMessage(ctx, principal, PostMessageInput{
		TeamID:  memory.TeamIDFirst,
		Content: "Abfahrt 12:45 am Vereinsheim.",
	})
	if err != nil {
		t.Fatalf("post message: %v", err)
	}

	if posted.UserID != "usr-coach" {
		t.Fatalf("expected author from principal, got %s", posted.UserID)
	}
	if posted.SenderName != "Coach" {
		t.Fatalf("expected sender name to fall back to principal name, got %s", posted.SenderName)
	}
	if !posted.CreatedAt.Equal(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected created at: %s", posted.CreatedAt)
	}

	items, err := svc.ListMessagesByTeam(ctx, memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(items))
	}
	if items[0].ID != posted.ID {
		t.Fatalf("newest message must come first, got %s", items[0].ID)
	}
}

func TestMessageService_PostMessageKeepsExplicitSenderName(t *testing.T) {
	svc := newMessageFixture()

	posted, err := svc.PostMessage(t.Context(), user.Principal{UserID: "usr-coach", Name: "Coach"}, PostMessageInput{
		TeamID:     memory.TeamIDFirst,
		SenderName: "Co-Trainer",
		Content:    "Bitte Regenjacken mitbringen.",
	})
	if err != nil {
		t.Fatalf("post message: %v", err)
	}
	if posted.SenderName != "Co-Trainer" {
		t.Fatalf("explicit sender name must win, got %s", posted.SenderName)
	}
}

func TestMessageService_PostMessageRequiresPrincipal(t *testing.T) {
	svc := newMessageFixture()

	_, err := svc.PostMessage(t.Context(), user.Principal{}, PostMessageInput{
		TeamID:  memory.TeamIDFirst,
		Content: "Hallo",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMessageService_PostMessageRequiresContent(t *testing.T) {
	svc := newMessageFixture()

	_, err := svc.PostMessage(t.Context(), user.Principal{UserID: "usr-coach"}, PostMessageInput{
		TeamID:  memory.TeamIDFirst,
		Content: "   ",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMessageService_PostMessageUnknownTeam(t *testing.T) {
	svc := newMessageFixture()

	_, err := svc.PostMessage(t.Context(), user.Principal{UserID: "usr-coach"}, PostMessageInput{
		TeamID:  "team-unknown",
		Content: "Hallo",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
