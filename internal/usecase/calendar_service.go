package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/domain/team"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

type CreateEventInput struct {
	TeamID      string
	Type        event.Type
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	Opponent    string
	IsHome      *bool
}

type CalendarService struct {
	teamRepo  team.Repository
	eventRepo event.Repository
	idGen     id.Generator
}

func NewCalendarService(teamRepo team.Repository, eventRepo event.Repository, idGen id.Generator) *CalendarService {
	return &CalendarService{
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
		idGen:     idGen,
	}
}

// ListEventsByTeam returns the team's events ordered by start descending.
func (s *CalendarService) ListEventsByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.eventRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list events by team: %w", err)
	}

	return items, nil
}

func (s *CalendarService) CreateEvent(ctx context.Context, input CreateEventInput) (event.Event, error) {
	input.TeamID = strings.TrimSpace(input.TeamID)
	if err := s.requireTeam(ctx, input.TeamID); err != nil {
		return event.Event{}, err
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return event.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	item := event.Event{
		ID:          newID,
		TeamID:      input.TeamID,
		Type:        input.Type,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Start:       input.Start,
		End:         input.End,
		Location:    strings.TrimSpace(input.Location),
		Opponent:    strings.TrimSpace(input.Opponent),
		IsHome:      input.IsHome,
	}
	if err := item.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.eventRepo.Create(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}

	return item, nil
}

// DeleteEvent is idempotent: deleting an unknown event succeeds.
// Attendance rows referencing the event are left in place.
func (s *CalendarService) DeleteEvent(ctx context.Context, eventID string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

func (s *CalendarService) requireTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
