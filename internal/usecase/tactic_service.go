package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubhq/clubmanager/internal/domain/tactic"
	"github.com/clubhq/clubmanager/internal/domain/team"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

const defaultDrawingDataMaxBytes = 64 << 10

type CreateTacticInput struct {
	TeamID      string
	Name        string
	Formation   string
	Markers     []tactic.Marker
	DrawingData string
}

type TacticService struct {
	teamRepo            team.Repository
	tacticRepo          tactic.Repository
	idGen               id.Generator
	drawingDataMaxBytes int
}

func NewTacticService(teamRepo team.Repository, tacticRepo tactic.Repository, idGen id.Generator, drawingDataMaxBytes int) *TacticService {
	if drawingDataMaxBytes <= 0 {
		drawingDataMaxBytes = defaultDrawingDataMaxBytes
	}

	return &TacticService{
		teamRepo:            teamRepo,
		tacticRepo:          tacticRepo,
		idGen:               idGen,
		drawingDataMaxBytes: drawingDataMaxBytes,
	}
}

func (s *TacticService) ListTacticsForTeam(ctx context.Context, teamID string) ([]tactic.Tactic, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.tacticRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list tactics by team: %w", err)
	}

	return items, nil
}

// CreateTactic stores a whole formation snapshot. Marker coordinates
// must lie in the unit square, bounds inclusive, and marker ids must be
// unique within the tactic.
func (s *TacticService) CreateTactic(ctx context.Context, input CreateTacticInput) (tactic.Tactic, error) {
	input.TeamID = strings.TrimSpace(input.TeamID)
	if err := s.requireTeam(ctx, input.TeamID); err != nil {
		return tactic.Tactic{}, err
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return tactic.Tactic{}, fmt.Errorf("generate tactic id: %w", err)
	}

	item := tactic.Tactic{
		ID:          newID,
		TeamID:      input.TeamID,
		Name:        strings.TrimSpace(input.Name),
		Formation:   strings.TrimSpace(input.Formation),
		Markers:     append([]tactic.Marker(nil), input.Markers...),
		DrawingData: input.DrawingData,
	}
	if err := item.Validate(s.drawingDataMaxBytes); err != nil {
		return tactic.Tactic{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tacticRepo.Create(ctx, item); err != nil {
		return tactic.Tactic{}, fmt.Errorf("create tactic: %w", err)
	}

	return item, nil
}

func (s *TacticService) requireTeam(ctx context.Context, teamID string) error {
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
