package user

import "fmt"

// Principal is the opaque identity supplied by the external session
// provider. The core only consumes UserID.
type Principal struct {
	UserID string
	Email  string
	Name   string
}

func (p Principal) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("principal user id is required")
	}

	return nil
}
