package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubhq/clubmanager/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	r := &EventRepository{items: make(map[string]event.Event, len(events))}
	for _, item := range events {
		r.items[item.ID] = cloneEvent(item)
	}

	return r
}

func (r *EventRepository) ListByTeam(_ context.Context, teamID string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0)
	for _, item := range r.items {
		if item.TeamID == teamID {
			out = append(out, cloneEvent(item))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })

	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}

	return cloneEvent(item), true, nil
}

func (r *EventRepository) Create(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneEvent(item)
	return nil
}

func (r *EventRepository) Delete(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, eventID)
	return nil
}

func cloneEvent(item event.Event) event.Event {
	copied := item
	if item.IsHome != nil {
		isHome := *item.IsHome
		copied.IsHome = &isHome
	}
	return copied
}
