package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/message"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type postMessageRequest struct {
	TeamID     string `json:"teamId" validate:"required"`
	SenderName string `json:"senderName" validate:"omitempty,max=120"`
	Content    string `json:"content" validate:"required,max=4000"`
}

type messageDTO struct {
	ID         string `json:"id"`
	TeamID     string `json:"teamId"`
	UserID     string `json:"userId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

func messageToDTO(item message.Message) messageDTO {
	return messageDTO{
		ID:         item.ID,
		TeamID:     item.TeamID,
		UserID:     item.UserID,
		SenderName: item.SenderName,
		Content:    item.Content,
		CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) ListMessagesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMessagesByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	messages, err := h.messageService.ListMessagesByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list messages failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]messageDTO, 0, len(messages))
	for _, item := range messages {
		items = append(items, messageToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PostMessage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req postMessageRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.messageService.PostMessage(ctx, principal, usecase.PostMessageInput{
		TeamID:     req.TeamID,
		SenderName: req.SenderName,
		Content:    req.Content,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "post message failed", "team_id", req.TeamID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, messageToDTO(item))
}
