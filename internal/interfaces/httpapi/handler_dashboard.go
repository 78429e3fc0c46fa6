package httpapi

import (
	"net/http"

	"github.com/clubhq/clubmanager/internal/usecase"
)

type teamOverviewDTO struct {
	Team           teamDTO      `json:"team"`
	Stats          teamStatsDTO `json:"stats"`
	UpcomingEvent  *eventDTO    `json:"upcomingEvent,omitempty"`
	LatestMessages []messageDTO `json:"latestMessages"`
}

func teamOverviewToDTO(overview usecase.TeamOverview) teamOverviewDTO {
	messages := make([]messageDTO, 0, len(overview.LatestMessages))
	for _, item := range overview.LatestMessages {
		messages = append(messages, messageToDTO(item))
	}

	dto := teamOverviewDTO{
		Team:           teamToDTO(overview.Team),
		Stats:          teamStatsToDTO(overview.StatsSummary),
		LatestMessages: messages,
	}
	if overview.UpcomingEvent != nil {
		upcoming := eventToDTO(*overview.UpcomingEvent)
		dto.UpcomingEvent = &upcoming
	}
	return dto
}

func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamOverview")
	defer span.End()

	teamID := r.PathValue("teamID")
	overview, err := h.dashboardService.GetTeamOverview(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team overview failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamOverviewToDTO(overview))
}
