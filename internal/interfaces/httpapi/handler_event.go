package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type createEventRequest struct {
	TeamID      string    `json:"teamId" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=training match event"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=200"`
	Opponent    string    `json:"opponent" validate:"omitempty,max=120"`
	IsHome      *bool     `json:"isHome"`
}

type eventDTO struct {
	ID          string `json:"id"`
	TeamID      string `json:"teamId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location,omitempty"`
	Opponent    string `json:"opponent,omitempty"`
	IsHome      *bool  `json:"isHome,omitempty"`
}

func eventToDTO(item event.Event) eventDTO {
	return eventDTO{
		ID:          item.ID,
		TeamID:      item.TeamID,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Start:       item.Start.UTC().Format(time.RFC3339),
		End:         item.End.UTC().Format(time.RFC3339),
		Location:    item.Location,
		Opponent:    item.Opponent,
		IsHome:      item.IsHome,
	}
}

func (h *Handler) ListEventsByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventsByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	events, err := h.calendarService.ListEventsByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, item := range events {
		items = append(items, eventToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	var req createEventRequest
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

	item, err := h.calendarService.CreateEvent(ctx, usecase.CreateEventInput{
		TeamID:      req.TeamID,
		Type:        event.Type(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		Location:    req.Location,
		Opponent:    req.Opponent,
		IsHome:      req.IsHome,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create event failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	if err := h.calendarService.DeleteEvent(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
