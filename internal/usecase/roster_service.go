package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/domain/team"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

type CreatePlayerInput struct {
	TeamID    string
	Name      string
	Position  player.Position
	Number    *int
	Status    player.Status
	Stats     *player.Stats
	IsCaptain bool
	AvatarURL string
}

// UpdatePlayerInput is a partial edit. Nil fields are left untouched.
// Stats is merged counter by counter, never replaced whole, so an edit
// to goals cannot silently zero assists.
type UpdatePlayerInput struct {
	TeamID    *string
	Name      *string
	Position  *player.Position
	Number    *int
	Status    *player.Status
	Stats     player.StatsPatch
	IsCaptain *bool
	AvatarURL *string
}

// StatsSummary is a read-side fold over the current roster. Nothing is
// materialized; every read recomputes from scratch.
type StatsSummary struct {
	PlayerCount    int
	Totals         player.Stats
	TopScorer      *player.Player
	Captain        *player.Player
	CountsByStatus map[player.Status]int
}

type RosterService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      id.Generator
}

func NewRosterService(teamRepo team.Repository, playerRepo player.Repository, idGen id.Generator) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *RosterService) ListPlayersByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *RosterService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.TeamID = strings.TrimSpace(input.TeamID)
	if err := s.requireTeam(ctx, input.TeamID); err != nil {
		return player.Player{}, err
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	status := input.Status
	if status == "" {
		status = player.StatusActive
	}
	stats := player.Stats{}
	if input.Stats != nil {
		stats = *input.Stats
	}

	item := player.Player{
		ID:        newID,
		TeamID:    input.TeamID,
		Name:      strings.TrimSpace(input.Name),
		Position:  input.Position,
		Number:    input.Number,
		Status:    status,
		Stats:     stats,
		IsCaptain: input.IsCaptain,
		AvatarURL: strings.TrimSpace(input.AvatarURL),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *RosterService) UpdatePlayer(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if input.TeamID != nil {
		teamID := strings.TrimSpace(*input.TeamID)
		if err := s.requireTeam(ctx, teamID); err != nil {
			return player.Player{}, err
		}
		item.TeamID = teamID
	}
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Position != nil {
		item.Position = *input.Position
	}
	if input.Number != nil {
		item.Number = input.Number
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.IsCaptain != nil {
		item.IsCaptain = *input.IsCaptain
	}
	if input.AvatarURL != nil {
		item.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	item.Stats = input.Stats.Apply(item.Stats)

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

// DeletePlayer is idempotent: deleting an unknown player succeeds.
// Attendance rows referencing the player are left in place.
func (s *RosterService) DeletePlayer(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

func (s *RosterService) GetTeamStatsSummary(ctx context.Context, teamID string) (StatsSummary, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return StatsSummary{}, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("list players by team: %w", err)
	}

	return SummarizeRoster(items), nil
}

// SummarizeRoster folds roster counters into a summary. Ties on goals go
// to the earlier player in the list.
func SummarizeRoster(items []player.Player) StatsSummary {
	summary := StatsSummary{
		PlayerCount:    len(items),
		CountsByStatus: make(map[player.Status]int, len(player.AllStatuses)),
	}

	for i := range items {
		p := items[i]
		summary.Totals.Goals += p.Stats.Goals
		summary.Totals.Assists += p.Stats.Assists
		summary.Totals.YellowCards += p.Stats.YellowCards
		summary.Totals.RedCards += p.Stats.RedCards
		summary.Totals.MinutesPlayed += p.Stats.MinutesPlayed
		summary.Totals.MatchesPlayed += p.Stats.MatchesPlayed
		summary.CountsByStatus[p.Status]++

		if p.IsCaptain && summary.Captain == nil {
			summary.Captain = &items[i]
		}
		if summary.TopScorer == nil || p.Stats.Goals > summary.TopScorer.Stats.Goals {
			summary.TopScorer = &items[i]
		}
	}

	return summary
}

func (s *RosterService) requireTeam(ctx context.Context, teamID string) error {
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
