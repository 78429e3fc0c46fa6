package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/clubhq/clubmanager/internal/domain/message"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
)

func newDashboardFixture(messages []message.Message) *DashboardService {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	messageRepo := memory.NewMessageRepository(messages)

	return NewDashboardService(teamRepo, playerRepo, eventRepo, messageRepo)
}

func TestDashboardService_GetTeamOverview(t *testing.T) {
	svc := newDashboardFixture(memory.SeedMessages())
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	overview, err := svc.GetTeamOverview(t.Context(), memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("get team overview: %v", err)
	}

	if overview.Team.ID != memory.TeamIDFirst {
		t.Fatalf("unexpected team: %s", overview.Team.ID)
	}
	if overview.StatsSummary.PlayerCount != 4 {
		t.Fatalf("expected 4 players in summary, got %d", overview.StatsSummary.PlayerCount)
	}
	if overview.UpcomingEvent == nil || overview.UpcomingEvent.ID != "ev-training-01" {
		t.Fatalf("expected earliest future event ev-training-01, got %+v", overview.UpcomingEvent)
	}
	if len(overview.LatestMessages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(overview.LatestMessages))
	}
}

func TestDashboardService_GetTeamOverviewNoUpcomingEvent(t *testing.T) {
	svc := newDashboardFixture(memory.SeedMessages())
	svc.now = func() time.Time { return time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC) }

	overview, err := svc.GetTeamOverview(t.Context(), memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("get team overview: %v", err)
	}
	if overview.UpcomingEvent != nil {
		t.Fatalf("all events are in the past, got %+v", overview.UpcomingEvent)
	}
}

func TestDashboardService_GetTeamOverviewCapsMessages(t *testing.T) {
	messages := make([]message.Message, 0, 8)
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		messages = append(messages, message.Message{
			ID:        fmt.Sprintf("msg-%03d", i),
			TeamID:    memory.TeamIDFirst,
			UserID:    "usr-coach",
			Content:   fmt.Sprintf("Info %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	svc := newDashboardFixture(messages)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	overview, err := svc.GetTeamOverview(t.Context(), memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("get team overview: %v", err)
	}
	if len(overview.LatestMessages) != overviewMessageLimit {
		t.Fatalf("expected %d messages, got %d", overviewMessageLimit, len(overview.LatestMessages))
	}
	if overview.LatestMessages[0].ID != "msg-007" {
		t.Fatalf("newest message must come first, got %s", overview.LatestMessages[0].ID)
	}
}

func TestDashboardService_GetTeamOverviewUnknownTeam(t *testing.T) {
	svc := newDashboardFixture(nil)

	_, err := svc.GetTeamOverview(t.Context(), "team-unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
