package message

import "context"

// Repository describes message persistence needs from use cases.
// ListByTeam returns messages ordered by created time descending.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Message, error)
	Create(ctx context.Context, m Message) error
}
