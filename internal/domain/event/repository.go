package event

import "context"

// Repository describes event persistence needs from use cases.
// ListByTeam returns events ordered by start descending.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Event, error)
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	Create(ctx context.Context, e Event) error
	Delete(ctx context.Context, eventID string) error
}
