package attendance

import "context"

// Repository describes attendance persistence needs from use cases.
// Upsert must be atomic on the (event, player) identity: two concurrent
// calls for the same pair leave exactly one record, reflecting one of
// the two writes.
type Repository interface {
	Upsert(ctx context.Context, r Record) (Record, error)
	ListByEvent(ctx context.Context, eventID string) ([]Record, error)
}
