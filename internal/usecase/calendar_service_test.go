package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

func newCalendarFixture() *CalendarService {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	eventRepo := memory.NewEventRepository(memory.SeedEvents())

	return NewCalendarService(teamRepo, eventRepo, id.NewRandomGenerator())
}

func TestCalendarService_CreateEvent(t *testing.T) {
	svc := newCalendarFixture()
	ctx := t.Context()

	created, err := svc.CreateEvent(ctx, CreateEventInput{
		TeamID: memory.TeamIDFirst,
		Type:   event.TypeTraining,
		Title:  "Donnerstagstraining",
		Start:  time.Date(2026, 9, 3, 18, 30, 0, 0, time.UTC),
		End:    time.Date(2026, 9, 3, 20, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated event id")
	}

	items, err := svc.ListEventsByTeam(ctx, memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 events, got %d", len(items))
	}
}

func TestCalendarService_CreateEventRejectsStartAfterEnd(t *testing.T) {
	svc := newCalendarFixture()

	_, err := svc.CreateEvent(t.Context(), CreateEventInput{
		TeamID: memory.TeamIDFirst,
		Type:   event.TypeMatch,
		Title:  "Pokalspiel",
		Start:  time.Date(2026, 9, 10, 17, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalendarService_CreateEventRejectsUnknownType(t *testing.T) {
	svc := newCalendarFixture()

	_, err := svc.CreateEvent(t.Context(), CreateEventInput{
		TeamID: memory.TeamIDFirst,
		Type:   event.Type("party"),
		Title:  "Saisonabschluss",
		Start:  time.Date(2026, 9, 10, 17, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 9, 10, 19, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalendarService_CreateEventUnknownTeam(t *testing.T) {
	svc := newCalendarFixture()

	_, err := svc.CreateEvent(t.Context(), CreateEventInput{
		TeamID: "team-unknown",
		Type:   event.TypeTraining,
		Title:  "Training",
		Start:  time.Date(2026, 9, 3, 18, 30, 0, 0, time.UTC),
		End:    time.Date(2026, 9, 3, 20, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCalendarService_ListEventsOrderedByStartDescending(t *testing.T) {
	svc := newCalendarFixture()

	items, err := svc.ListEventsByTeam(t.Context(), memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded events, got %d", len(items))
	}
	if items[0].ID != "ev-match-01" || items[1].ID != "ev-training-01" {
		t.Fatalf("unexpected order: %s, %s", items[0].ID, items[1].ID)
	}
}

func TestCalendarService_DeleteEventIsIdempotent(t *testing.T) {
	svc := newCalendarFixture()
	ctx := t.Context()

	if err := svc.DeleteEvent(ctx, "ev-training-01"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteEvent(ctx, "ev-training-01"); err != nil {
		t.Fatalf("second delete must succeed: %v", err)
	}

	items, err := svc.ListEventsByTeam(ctx, memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 remaining event, got %d", len(items))
	}
}
