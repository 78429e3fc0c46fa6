package cache

import (
	"context"

	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/domain/team"
	basecache "github.com/clubhq/clubmanager/internal/platform/cache"
)

// Read-through decorators for the hot list/get paths. Keys follow the
// resource:kind:id scheme and every mutation invalidates only the keys
// its resource touches; there is no global flush.

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamByIDKey(teamID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "team:list")
	r.cache.Delete(ctx, teamByIDKey(item.ID))
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func teamByIDKey(teamID string) string {
	return "team:id:" + teamID
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey(teamID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerByIDKey(playerID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID, item.TeamID)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	// A team move leaves the old team's list stale; the id key cannot
	// say which team that was, so drop all player lists.
	r.cache.Delete(ctx, playerByIDKey(item.ID))
	r.cache.DeletePrefix(ctx, "player:list:")
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.cache.Delete(ctx, playerByIDKey(playerID))
	r.cache.DeletePrefix(ctx, "player:list:")
	return nil
}

func (r *PlayerRepository) invalidate(ctx context.Context, playerID, teamID string) {
	r.cache.Delete(ctx, playerByIDKey(playerID))
	r.cache.Delete(ctx, playerListKey(teamID))
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func playerByIDKey(playerID string) string {
	return "player:id:" + playerID
}

func playerListKey(teamID string) string {
	return "player:list:" + teamID
}

type EventRepository struct {
	next  event.Repository
	cache *basecache.Store
}

func NewEventRepository(next event.Repository, cache *basecache.Store) *EventRepository {
	return &EventRepository{next: next, cache: cache}
}

func (r *EventRepository) ListByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	v, err := r.cache.GetOrLoad(ctx, eventListKey(teamID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]event.Event(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]event.Event)
	return append([]event.Event(nil), items...), nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, eventByIDKey(eventID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return cachedEventByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return event.Event{}, false, err
	}

	cached, _ := v.(cachedEventByID)
	return cached.value, cached.exists, nil
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, eventByIDKey(item.ID))
	r.cache.Delete(ctx, eventListKey(item.TeamID))
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	if err := r.next.Delete(ctx, eventID); err != nil {
		return err
	}
	r.cache.Delete(ctx, eventByIDKey(eventID))
	r.cache.DeletePrefix(ctx, "event:list:")
	return nil
}

type cachedEventByID struct {
	value  event.Event
	exists bool
}

func eventByIDKey(eventID string) string {
	return "event:id:" + eventID
}

func eventListKey(teamID string) string {
	return "event:list:" + teamID
}
