package player

import "fmt"

// Position represents the position categories players are rostered under.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Status is a player's current availability.
type Status string

const (
	StatusActive    Status = "Active"
	StatusInjured   Status = "Injured"
	StatusSuspended Status = "Suspended"
)

var AllStatuses = map[Status]struct{}{
	StatusActive:    {},
	StatusInjured:   {},
	StatusSuspended: {},
}

// Stats is the per-player counter block. All fields are non-negative.
type Stats struct {
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
	MatchesPlayed int
}

func (s Stats) Validate() error {
	if s.Goals < 0 || s.Assists < 0 || s.YellowCards < 0 || s.RedCards < 0 ||
		s.MinutesPlayed < 0 || s.MatchesPlayed < 0 {
		return fmt.Errorf("player stats must not be negative")
	}

	return nil
}

// StatsPatch carries a partial stats edit. Nil fields are left untouched,
// so an update never zeroes counters the caller did not mention.
type StatsPatch struct {
	Goals         *int
	Assists       *int
	YellowCards   *int
	RedCards      *int
	MinutesPlayed *int
	MatchesPlayed *int
}

// Apply merges the patch into base field by field.
func (p StatsPatch) Apply(base Stats) Stats {
	if p.Goals != nil {
		base.Goals = *p.Goals
	}
	if p.Assists != nil {
		base.Assists = *p.Assists
	}
	if p.YellowCards != nil {
		base.YellowCards = *p.YellowCards
	}
	if p.RedCards != nil {
		base.RedCards = *p.RedCards
	}
	if p.MinutesPlayed != nil {
		base.MinutesPlayed = *p.MinutesPlayed
	}
	if p.MatchesPlayed != nil {
		base.MatchesPlayed = *p.MatchesPlayed
	}

	return base
}

// Player is a rostered athlete belonging to exactly one team.
type Player struct {
	ID        string
	TeamID    string
	Name      string
	Position  Position
	Number    *int
	Status    Status
	Stats     Stats
	IsCaptain bool
	AvatarURL string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}
	if p.Number != nil && *p.Number < 0 {
		return fmt.Errorf("player number must not be negative")
	}
	if err := p.Stats.Validate(); err != nil {
		return err
	}

	return nil
}
