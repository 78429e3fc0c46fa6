package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/attendance"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type recordAttendanceRequest struct {
	EventID  string `json:"eventId" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=Present Absent Late Excused Pending"`
	Reason   string `json:"reason" validate:"omitempty,max=500"`
}

type bulkAttendanceRequest struct {
	EventID   string   `json:"eventId" validate:"required"`
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
	Status    string   `json:"status" validate:"required,oneof=Present Absent Late Excused Pending"`
	Reason    string   `json:"reason" validate:"omitempty,max=500"`
}

type attendanceDTO struct {
	EventID  string `json:"eventId"`
	PlayerID string `json:"playerId"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

type bulkFailureDTO struct {
	PlayerID string `json:"playerId"`
	Reason   string `json:"reason"`
}

type bulkAttendanceDTO struct {
	Records  []attendanceDTO  `json:"records"`
	Failures []bulkFailureDTO `json:"failures"`
}

func attendanceToDTO(item attendance.Record) attendanceDTO {
	return attendanceDTO{
		EventID:  item.EventID,
		PlayerID: item.PlayerID,
		Status:   string(item.Status),
		Reason:   item.Reason,
	}
}

func (h *Handler) ListAttendanceForEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAttendanceForEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	records, err := h.attendanceService.ListForEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list attendance failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]attendanceDTO, 0, len(records))
	for _, item := range records {
		items = append(items, attendanceToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

// RecordAttendance is an upsert: repeated calls for the same
// (eventId, playerId) pair overwrite the row in place, so it answers
// 200 rather than 201.
func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordAttendance")
	defer span.End()

	var req recordAttendanceRequest
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

	record, err := h.attendanceService.Record(ctx, usecase.RecordAttendanceInput{
		EventID:  req.EventID,
		PlayerID: req.PlayerID,
		Status:   attendance.Status(req.Status),
		Reason:   req.Reason,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record attendance failed", "event_id", req.EventID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, attendanceToDTO(record))
}

func (h *Handler) RecordAttendanceBulk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordAttendanceBulk")
	defer span.End()

	var req bulkAttendanceRequest
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

	result, err := h.attendanceService.RecordBulk(ctx, usecase.BulkAttendanceInput{
		EventID:   req.EventID,
		PlayerIDs: req.PlayerIDs,
		Status:    attendance.Status(req.Status),
		Reason:    req.Reason,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "bulk attendance failed", "event_id", req.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	records := make([]attendanceDTO, 0, len(result.Records))
	for _, item := range result.Records {
		records = append(records, attendanceToDTO(item))
	}
	failures := make([]bulkFailureDTO, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, bulkFailureDTO{PlayerID: failure.PlayerID, Reason: failure.Reason})
	}

	writeJSON(ctx, w, http.StatusOK, bulkAttendanceDTO{Records: records, Failures: failures})
}
