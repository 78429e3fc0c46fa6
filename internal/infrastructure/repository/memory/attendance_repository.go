package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubhq/clubmanager/internal/domain/attendance"
)

// AttendanceRepository keys rows by the composite (event, player)
// identity, so an upsert is a single locked map write and concurrent
// writes for the same pair can never produce two rows.
type AttendanceRepository struct {
	mu    sync.RWMutex
	items map[string]attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{items: make(map[string]attendance.Record)}
}

func (r *AttendanceRepository) Upsert(_ context.Context, item attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[attendanceKey(item.EventID, item.PlayerID)] = item
	return item, nil
}

func (r *AttendanceRepository) ListByEvent(_ context.Context, eventID string) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Record, 0)
	for _, item := range r.items {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func attendanceKey(eventID, playerID string) string {
	return eventID + "::" + playerID
}
