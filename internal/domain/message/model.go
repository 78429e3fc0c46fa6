package message

import (
	"fmt"
	"time"
)

// Message is one append-only entry in a team's chat log.
type Message struct {
	ID         string
	TeamID     string
	UserID     string
	SenderName string
	Content    string
	CreatedAt  time.Time
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("message team id is required")
	}
	if m.Content == "" {
		return fmt.Errorf("message content is required")
	}

	return nil
}
