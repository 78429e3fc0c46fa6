package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubhq/clubmanager/internal/domain/tactic"
)

type TacticRepository struct {
	mu    sync.RWMutex
	items map[string]tactic.Tactic
	seq   int64
	order map[string]int64
}

func NewTacticRepository() *TacticRepository {
	return &TacticRepository{
		items: make(map[string]tactic.Tactic),
		order: make(map[string]int64),
	}
}

func (r *TacticRepository) ListByTeam(_ context.Context, teamID string) ([]tactic.Tactic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tactic.Tactic, 0)
	for _, item := range r.items {
		if item.TeamID == teamID {
			out = append(out, cloneTactic(item))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })

	return out, nil
}

func (r *TacticRepository) Create(_ context.Context, item tactic.Tactic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.order[item.ID] = r.seq
	r.items[item.ID] = cloneTactic(item)

	return nil
}

func cloneTactic(item tactic.Tactic) tactic.Tactic {
	copied := item
	copied.Markers = append([]tactic.Marker(nil), item.Markers...)
	return copied
}
