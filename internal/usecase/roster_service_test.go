package usecase

import (
	"errors"
	"testing"

	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

func newRosterFixture() *RosterService {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	return NewRosterService(teamRepo, playerRepo, id.NewRandomGenerator())
}

func intPtr(n int) *int { return &n }

func TestRosterService_CreatePlayerDefaults(t *testing.T) {
	svc := newRosterFixture()

	created, err := svc.CreatePlayer(t.Context(), CreatePlayerInput{
		TeamID:   memory.TeamIDFirst,
		Name:     "Nico Berger",
		Position: player.PositionDefender,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected generated player id")
	}
	if created.Status != player.StatusActive {
		t.Fatalf("expected default status Active, got %s", created.Status)
	}
	if created.Stats != (player.Stats{}) {
		t.Fatalf("expected zeroed stats, got %+v", created.Stats)
	}
}

func TestRosterService_CreatePlayerUnknownTeam(t *testing.T) {
	svc := newRosterFixture()

	_, err := svc.CreatePlayer(t.Context(), CreatePlayerInput{
		TeamID:   "team-unknown",
		Name:     "Nico Berger",
		Position: player.PositionDefender,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_CreatePlayerRejectsNegativeStats(t *testing.T) {
	svc := newRosterFixture()

	_, err := svc.CreatePlayer(t.Context(), CreatePlayerInput{
		TeamID:   memory.TeamIDFirst,
		Name:     "Nico Berger",
		Position: player.PositionDefender,
		Stats:    &player.Stats{Goals: -1},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_UpdatePlayerMergesStatsPerCounter(t *testing.T) {
	svc := newRosterFixture()
	ctx := t.Context()

	// Lukas Schneider starts at 4 goals, 6 assists.
	updated, err := svc.UpdatePlayer(ctx, "pl-mid-01", UpdatePlayerInput{
		Stats: player.StatsPatch{Goals: intPtr(6)},
	})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}

	if updated.Stats.Goals != 6 {
		t.Fatalf("expected goals 6, got %d", updated.Stats.Goals)
	}
	if updated.Stats.Assists != 6 {
		t.Fatalf("untouched assists must survive the edit, got %d", updated.Stats.Assists)
	}
	if updated.Stats.MinutesPlayed != 920 {
		t.Fatalf("untouched minutes must survive the edit, got %d", updated.Stats.MinutesPlayed)
	}
}

func TestRosterService_UpdatePlayerRejectsNegativeStat(t *testing.T) {
	svc := newRosterFixture()

	_, err := svc.UpdatePlayer(t.Context(), "pl-mid-01", UpdatePlayerInput{
		Stats: player.StatsPatch{Assists: intPtr(-2)},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRosterService_UpdatePlayerUnknownTargetTeam(t *testing.T) {
	svc := newRosterFixture()

	target := "team-unknown"
	_, err := svc.UpdatePlayer(t.Context(), "pl-mid-01", UpdatePlayerInput{
		TeamID: &target,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_DeletePlayerIsIdempotent(t *testing.T) {
	svc := newRosterFixture()
	ctx := t.Context()

	if err := svc.DeletePlayer(ctx, "pl-fwd-01"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeletePlayer(ctx, "pl-fwd-01"); err != nil {
		t.Fatalf("second delete must succeed: %v", err)
	}

	items, err := svc.ListPlayersByTeam(ctx, memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, item := range items {
		if item.ID == "pl-fwd-01" {
			t.Fatal("deleted player still listed")
		}
	}
}

func TestRosterService_GetTeamStatsSummary(t *testing.T) {
	svc := newRosterFixture()

	summary, err := svc.GetTeamStatsSummary(t.Context(), memory.TeamIDFirst)
	if err != nil {
		t.Fatalf("get team stats: %v", err)
	}

	if summary.PlayerCount != 4 {
		t.Fatalf("expected 4 players, got %d", summary.PlayerCount)
	}
	if summary.Totals.Goals != 14 {
		t.Fatalf("expected 14 total goals, got %d", summary.Totals.Goals)
	}
	if summary.Totals.Assists != 8 {
		t.Fatalf("expected 8 total assists, got %d", summary.Totals.Assists)
	}
	if summary.TopScorer == nil || summary.TopScorer.ID != "pl-fwd-01" {
		t.Fatalf("expected top scorer pl-fwd-01, got %+v", summary.TopScorer)
	}
	if summary.Captain == nil || summary.Captain.ID != "pl-mid-01" {
		t.Fatalf("expected captain pl-mid-01, got %+v", summary.Captain)
	}
	if summary.CountsByStatus[player.StatusActive] != 3 {
		t.Fatalf("expected 3 active players, got %d", summary.CountsByStatus[player.StatusActive])
	}
	if summary.CountsByStatus[player.StatusInjured] != 1 {
		t.Fatalf("expected 1 injured player, got %d", summary.CountsByStatus[player.StatusInjured])
	}
}

func TestSummarizeRoster(t *testing.T) {
	roster := []player.Player{
		{ID: "a", Stats: player.Stats{Goals: 3}},
		{ID: "b", Stats: player.Stats{Goals: 7}},
		{ID: "c", Stats: player.Stats{Goals: 1}},
	}

	summary := SummarizeRoster(roster)

	if summary.Totals.Goals != 11 {
		t.Fatalf("expected 11 total goals, got %d", summary.Totals.Goals)
	}
	if summary.TopScorer == nil || summary.TopScorer.ID != "b" {
		t.Fatalf("expected top scorer b, got %+v", summary.TopScorer)
	}
	if summary.Captain != nil {
		t.Fatalf("no captain on this roster, got %+v", summary.Captain)
	}
}

func TestSummarizeRoster_TieKeepsEarlierPlayer(t *testing.T) {
	roster := []player.Player{
		{ID: "a", Stats: player.Stats{Goals: 5}},
		{ID: "b", Stats: player.Stats{Goals: 5}},
	}

	summary := SummarizeRoster(roster)
	if summary.TopScorer == nil || summary.TopScorer.ID != "a" {
		t.Fatalf("ties resolve to the earlier player, got %+v", summary.TopScorer)
	}
}

func TestSummarizeRoster_Empty(t *testing.T) {
	summary := SummarizeRoster(nil)

	if summary.PlayerCount != 0 {
		t.Fatalf("expected zero players, got %d", summary.PlayerCount)
	}
	if summary.TopScorer != nil || summary.Captain != nil {
		t.Fatal("empty roster has no top scorer or captain")
	}
}
