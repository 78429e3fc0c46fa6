package team

import "fmt"

// Team is the top-level grouping entity owning players, events, tactics
// and messages.
type Team struct {
	ID      string
	Name    string
	Color   string
	LogoURL string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
