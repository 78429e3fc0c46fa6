package tactic

import "context"

// Repository describes tactic persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Tactic, error)
	Create(ctx context.Context, t Tactic) error
}
