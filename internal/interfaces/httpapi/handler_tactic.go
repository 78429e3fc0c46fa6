package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/tactic"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type markerPayload struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"omitempty,max=120"`
	Number int     `json:"number" validate:"gte=0,lte=99"`
	X      float64 `json:"x" validate:"gte=0,lte=1"`
	Y      float64 `json:"y" validate:"gte=0,lte=1"`
	Color  string  `json:"color" validate:"omitempty,max=32"`
}

type createTacticRequest struct {
	TeamID      string          `json:"teamId" validate:"required"`
	Name        string          `json:"name" validate:"required,max=120"`
	Formation   string          `json:"formation" validate:"omitempty,max=32"`
	Markers     []markerPayload `json:"markers" validate:"dive"`
	DrawingData string          `json:"drawingData"`
}

type tacticDTO struct {
	ID          string          `json:"id"`
	TeamID      string          `json:"teamId"`
	Name        string          `json:"name"`
	Formation   string          `json:"formation,omitempty"`
	Markers     []markerPayload `json:"markers"`
	DrawingData string          `json:"drawingData,omitempty"`
}

func markerToPayload(m tactic.Marker) markerPayload {
	return markerPayload{
		ID:     m.ID,
		Name:   m.Name,
		Number: m.Number,
		X:      m.X,
		Y:      m.Y,
		Color:  m.Color,
	}
}

func tacticToDTO(item tactic.Tactic) tacticDTO {
	markers := make([]markerPayload, 0, len(item.Markers))
	for _, m := range item.Markers {
		markers = append(markers, markerToPayload(m))
	}

	return tacticDTO{
		ID:          item.ID,
		TeamID:      item.TeamID,
		Name:        item.Name,
		Formation:   item.Formation,
		Markers:     markers,
		DrawingData: item.DrawingData,
	}
}

func (h *Handler) ListTacticsByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTacticsByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	tactics, err := h.tacticService.ListTacticsForTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list tactics failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tacticDTO, 0, len(tactics))
	for _, item := range tactics {
		items = append(items, tacticToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTactic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTactic")
	defer span.End()

	var req createTacticRequest
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

	markers := make([]tactic.Marker, 0, len(req.Markers))
	for _, m := range req.Markers {
		markers = append(markers, tactic.Marker{
			ID:     m.ID,
			Name:   m.Name,
			Number: m.Number,
			X:      m.X,
			Y:      m.Y,
			Color:  m.Color,
		})
	}

	item, err := h.tacticService.CreateTactic(ctx, usecase.CreateTacticInput{
		TeamID:      req.TeamID,
		Name:        req.Name,
		Formation:   req.Formation,
		Markers:     markers,
		DrawingData: req.DrawingData,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tactic failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, tacticToDTO(item))
}
