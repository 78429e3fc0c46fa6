package attendance

import "fmt"

// Status values form a flat enumeration. Any status may replace any
// other; there is no transition table.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusExcused Status = "Excused"
	StatusPending Status = "Pending"
)

var AllStatuses = map[Status]struct{}{
	StatusPresent: {},
	StatusAbsent:  {},
	StatusLate:    {},
	StatusExcused: {},
	StatusPending: {},
}

// Record is the attendance row for one (event, player) pair. The pair is
// the identity: there is never more than one record for it.
type Record struct {
	EventID  string
	PlayerID string
	Status   Status
	Reason   string
}

func (r Record) Validate() error {
	if r.EventID == "" {
		return fmt.Errorf("attendance event id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("attendance player id is required")
	}
	if _, ok := AllStatuses[r.Status]; !ok {
		return fmt.Errorf("invalid attendance status: %s", r.Status)
	}

	return nil
}
