package event

import (
	"fmt"
	"time"
)

// Type classifies calendar entries.
type Type string

const (
	TypeTraining Type = "training"
	TypeMatch    Type = "match"
	TypeOther    Type = "event"
)

var AllTypes = map[Type]struct{}{
	TypeTraining: {},
	TypeMatch:    {},
	TypeOther:    {},
}

// Event is a scheduled training, match or other club appointment.
// Opponent and IsHome are only meaningful for matches but are not
// enforced against the type.
type Event struct {
	ID          string
	TeamID      string
	Type        Type
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	Opponent    string
	IsHome      *bool
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("event team id is required")
	}
	if _, ok := AllTypes[e.Type]; !ok {
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return fmt.Errorf("event start and end are required")
	}
	if e.Start.After(e.End) {
		return fmt.Errorf("event start must not be after end")
	}

	return nil
}
