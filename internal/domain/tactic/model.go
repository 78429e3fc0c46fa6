package tactic

import "fmt"

// Marker is a positioned player token on the board. X and Y are
// normalized to the unit square, independent of rendering resolution.
type Marker struct {
	ID     string
	Name   string
	Number int
	X      float64
	Y      float64
	Color  string
}

func (m Marker) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("marker id is required")
	}
	if m.X < 0 || m.X > 1 {
		return fmt.Errorf("marker %s x coordinate %v outside [0, 1]", m.ID, m.X)
	}
	if m.Y < 0 || m.Y > 1 {
		return fmt.Errorf("marker %s y coordinate %v outside [0, 1]", m.ID, m.Y)
	}

	return nil
}

// Tactic is a named formation snapshot. It is created whole and
// overwritten by re-creating; there are no partial marker updates.
type Tactic struct {
	ID          string
	TeamID      string
	Name        string
	Formation   string
	Markers     []Marker
	DrawingData string
}

// Validate checks the tactic fields. DrawingData is opaque; only its
// size is bounded, by maxDrawingBytes (<= 0 disables the bound).
func (t Tactic) Validate(maxDrawingBytes int) error {
	if t.ID == "" {
		return fmt.Errorf("tactic id is required")
	}
	if t.TeamID == "" {
		return fmt.Errorf("tactic team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tactic name is required")
	}
	if maxDrawingBytes > 0 && len(t.DrawingData) > maxDrawingBytes {
		return fmt.Errorf("tactic drawing data exceeds %d bytes", maxDrawingBytes)
	}

	seen := make(map[string]struct{}, len(t.Markers))
	for _, m := range t.Markers {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("duplicate marker id: %s", m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return nil
}
