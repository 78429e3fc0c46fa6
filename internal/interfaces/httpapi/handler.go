package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/clubhq/clubmanager/internal/platform/logging"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	rosterService     *usecase.RosterService
	calendarService   *usecase.CalendarService
	attendanceService *usecase.AttendanceService
	tacticService     *usecase.TacticService
	messageService    *usecase.MessageService
	dashboardService  *usecase.DashboardService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	rosterService *usecase.RosterService,
	calendarService *usecase.CalendarService,
	attendanceService *usecase.AttendanceService,
	tacticService *usecase.TacticService,
	messageService *usecase.MessageService,
	dashboardService *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		rosterService:     rosterService,
		calendarService:   calendarService,
		attendanceService: attendanceService,
		tacticService:     tacticService,
		messageService:    messageService,
		dashboardService:  dashboardService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
