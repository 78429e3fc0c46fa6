package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubhq/clubmanager/internal/domain/message"
	"github.com/clubhq/clubmanager/internal/domain/team"
	"github.com/clubhq/clubmanager/internal/domain/user"
	"github.com/clubhq/clubmanager/internal/platform/id"
)

type PostMessageInput struct {
	TeamID     string
	SenderName string
	Content    string
}

type MessageService struct {
	teamRepo    team.Repository
	messageRepo message.Repository
	idGen       id.Generator
	now         func() time.Time
}

func NewMessageService(teamRepo team.Repository, messageRepo message.Repository, idGen id.Generator) *MessageService {
	return &MessageService{
		teamRepo:    teamRepo,
		messageRepo: messageRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

// ListMessagesByTeam returns the team's log ordered by created time
// descending.
func (s *MessageService) ListMessagesByTeam(ctx context.Context, teamID string) ([]message.Message, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.messageRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list messages by team: %w", err)
	}

	return items, nil
}

// PostMessage appends one entry to the team log. The author identity
// comes from the authenticated principal; messages are never edited or
// deleted here.
func (s *MessageService) PostMessage(ctx context.Context, principal user.Principal, input PostMessageInput) (message.Message, error) {
	if err := principal.Validate(); err != nil {
		return message.Message{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	input.TeamID = strings.TrimSpace(input.TeamID)
	if err := s.requireTeam(ctx, input.TeamID); err != nil {
		return message.Message{}, err
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return message.Message{}, fmt.Errorf("generate message id: %w", err)
	}

	senderName := strings.TrimSpace(input.SenderName)
	if senderName == "" {
		senderName = principal.Name
	}

	item := message.Message{
		ID:         newID,
		TeamID:     input.TeamID,
		UserID:     principal.UserID,
		SenderName: senderName,
		Content:    strings.TrimSpace(input.Content),
		CreatedAt:  s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return message.Message{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.messageRepo.Create(ctx, item); err != nil {
		return message.Message{}, fmt.Errorf("create message: %w", err)
	}

	return item, nil
}

func (s *MessageService) requireTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
