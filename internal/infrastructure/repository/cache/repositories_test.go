package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/domain/team"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
	basecache "github.com/clubhq/clubmanager/internal/platform/cache"
)

func TestTeamRepository_CreateInvalidatesList(t *testing.T) {
	ctx := t.Context()
	store := basecache.NewStore(time.Minute)
	repo := NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), store)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	err = repo.Create(ctx, team.Team{ID: "team-third", Name: "3. Mannschaft"})
	require.NoError(t, err)

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3, "create must evict the cached list")
}

func TestTeamRepository_GetByIDCachesMisses(t *testing.T) {
	ctx := t.Context()
	store := basecache.NewStore(time.Minute)
	repo := NewTeamRepository(memory.NewTeamRepository(nil), store)

	_, exists, err := repo.GetByID(ctx, "team-third")
	require.NoError(t, err)
	require.False(t, exists)

	// The miss is cached until a create for the same id evicts it.
	err = repo.Create(ctx, team.Team{ID: "team-third", Name: "3. Mannschaft"})
	require.NoError(t, err)

	item, exists, err := repo.GetByID(ctx, "team-third")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "3. Mannschaft", item.Name)
}

func TestPlayerRepository_UpdateEvictsAllTeamLists(t *testing.T) {
	ctx := t.Context()
	store := basecache.NewStore(time.Minute)
	repo := NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), store)

	first, err := repo.ListByTeam(ctx, memory.TeamIDFirst)
	require.NoError(t, err)
	second, err := repo.ListByTeam(ctx, memory.TeamIDSecond)
	require.NoError(t, err)
	require.Len(t, first, 4)
	require.Len(t, second, 1)

	moved, _, err := repo.GetByID(ctx, "pl-mid-02")
	require.NoError(t, err)
	moved.TeamID = memory.TeamIDFirst
	require.NoError(t, repo.Update(ctx, moved))

	first, err = repo.ListByTeam(ctx, memory.TeamIDFirst)
	require.NoError(t, err)
	second, err = repo.ListByTeam(ctx, memory.TeamIDSecond)
	require.NoError(t, err)
	require.Len(t, first, 5, "destination list must reflect the move")
	require.Empty(t, second, "source list must not serve the stale roster")
}

func TestPlayerRepository_DeleteEvictsIDKey(t *testing.T) {
	ctx := t.Context()
	store := basecache.NewStore(time.Minute)
	repo := NewPlayerRepository(memory.NewPlayerRepository([]player.Player{
		{ID: "pl-x", TeamID: memory.TeamIDFirst, Name: "X", Position: player.PositionDefender, Status: player.StatusActive},
	}), store)

	_, exists, err := repo.GetByID(ctx, "pl-x")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.Delete(ctx, "pl-x"))

	_, exists, err = repo.GetByID(ctx, "pl-x")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestEventRepository_DeleteEvictsLists(t *testing.T) {
	ctx := t.Context()
	store := basecache.NewStore(time.Minute)
	repo := NewEventRepository(memory.NewEventRepository(memory.SeedEvents()), store)

	items, err := repo.ListByTeam(ctx, memory.TeamIDFirst)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, repo.Delete(ctx, "ev-training-01"))

	items, err = repo.ListByTeam(ctx, memory.TeamIDFirst)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, exists, err := repo.GetByID(ctx, "ev-training-01")
	require.NoError(t, err)
	require.False(t, exists)
}
