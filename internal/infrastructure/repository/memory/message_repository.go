package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubhq/clubmanager/internal/domain/message"
)

type MessageRepository struct {
	mu    sync.RWMutex
	items map[string]message.Message
}

func NewMessageRepository(messages []message.Message) *MessageRepository {
	r := &MessageRepository{items: make(map[string]message.Message, len(messages))}
	for _, item := range messages {
		r.items[item.ID] = item
	}

	return r
}

func (r *MessageRepository) ListByTeam(_ context.Context, teamID string) ([]message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]message.Message, 0)
	for _, item := range r.items {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *MessageRepository) Create(_ context.Context, item message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
