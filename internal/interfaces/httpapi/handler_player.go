package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type statsPayload struct {
	Goals         int `json:"goals" validate:"gte=0"`
	Assists       int `json:"assists" validate:"gte=0"`
	YellowCards   int `json:"yellowCards" validate:"gte=0"`
	RedCards      int `json:"redCards" validate:"gte=0"`
	MinutesPlayed int `json:"minutesPlayed" validate:"gte=0"`
	MatchesPlayed int `json:"matchesPlayed" validate:"gte=0"`
}

// statsPatchPayload carries only the counters the caller wants to
// change. Absent counters keep their stored values.
type statsPatchPayload struct {
	Goals         *int `json:"goals" validate:"omitempty,gte=0"`
	Assists       *int `json:"assists" validate:"omitempty,gte=0"`
	YellowCards   *int `json:"yellowCards" validate:"omitempty,gte=0"`
	RedCards      *int `json:"redCards" validate:"omitempty,gte=0"`
	MinutesPlayed *int `json:"minutesPlayed" validate:"omitempty,gte=0"`
	MatchesPlayed *int `json:"matchesPlayed" validate:"omitempty,gte=0"`
}

type createPlayerRequest struct {
	TeamID    string        `json:"teamId" validate:"required"`
	Name      string        `json:"name" validate:"required,max=120"`
	Position  string        `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	Number    *int          `json:"number" validate:"omitempty,gte=0,lte=99"`
	Status    string        `json:"status" validate:"omitempty,oneof=Active Injured Suspended"`
	Stats     *statsPayload `json:"stats"`
	IsCaptain bool          `json:"isCaptain"`
	AvatarURL string        `json:"avatarUrl" validate:"omitempty,url"`
}

type updatePlayerRequest struct {
	TeamID    *string            `json:"teamId" validate:"omitempty,min=1"`
	Name      *string            `json:"name" validate:"omitempty,min=1,max=120"`
	Position  *string            `json:"position" validate:"omitempty,oneof=GK DEF MID FWD"`
	Number    *int               `json:"number" validate:"omitempty,gte=0,lte=99"`
	Status    *string            `json:"status" validate:"omitempty,oneof=Active Injured Suspended"`
	Stats     *statsPatchPayload `json:"stats"`
	IsCaptain *bool              `json:"isCaptain"`
	AvatarURL *string            `json:"avatarUrl" validate:"omitempty,url"`
}

type playerDTO struct {
	ID        string       `json:"id"`
	TeamID    string       `json:"teamId"`
	Name      string       `json:"name"`
	Position  string       `json:"position"`
	Number    *int         `json:"number,omitempty"`
	Status    string       `json:"status"`
	Stats     statsPayload `json:"stats"`
	IsCaptain bool         `json:"isCaptain"`
	AvatarURL string       `json:"avatarUrl,omitempty"`
}

type teamStatsDTO struct {
	PlayerCount    int            `json:"playerCount"`
	Totals         statsPayload   `json:"totals"`
	TopScorer      *playerDTO     `json:"topScorer,omitempty"`
	Captain        *playerDTO     `json:"captain,omitempty"`
	CountsByStatus map[string]int `json:"countsByStatus"`
}

func statsToPayload(s player.Stats) statsPayload {
	return statsPayload{
		Goals:         s.Goals,
		Assists:       s.Assists,
		YellowCards:   s.YellowCards,
		RedCards:      s.RedCards,
		MinutesPlayed: s.MinutesPlayed,
		MatchesPlayed: s.MatchesPlayed,
	}
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Name:      item.Name,
		Position:  string(item.Position),
		Number:    item.Number,
		Status:    string(item.Status),
		Stats:     statsToPayload(item.Stats),
		IsCaptain: item.IsCaptain,
		AvatarURL: item.AvatarURL,
	}
}

func playerToDTOPtr(item *player.Player) *playerDTO {
	if item == nil {
		return nil
	}
	dto := playerToDTO(*item)
	return &dto
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.rosterService.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	input := usecase.CreatePlayerInput{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Position:  player.Position(req.Position),
		Number:    req.Number,
		Status:    player.Status(req.Status),
		IsCaptain: req.IsCaptain,
		AvatarURL: req.AvatarURL,
	}
	if req.Stats != nil {
		input.Stats = &player.Stats{
			Goals:         req.Stats.Goals,
			Assists:       req.Stats.Assists,
			YellowCards:   req.Stats.YellowCards,
			RedCards:      req.Stats.RedCards,
			MinutesPlayed: req.Stats.MinutesPlayed,
			MatchesPlayed: req.Stats.MatchesPlayed,
		}
	}

	item, err := h.rosterService.CreatePlayer(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req updatePlayerRequest
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

	input := usecase.UpdatePlayerInput{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Number:    req.Number,
		IsCaptain: req.IsCaptain,
		AvatarURL: req.AvatarURL,
	}
	if req.Position != nil {
		position := player.Position(*req.Position)
		input.Position = &position
	}
	if req.Status != nil {
		status := player.Status(*req.Status)
		input.Status = &status
	}
	if req.Stats != nil {
		input.Stats = player.StatsPatch{
			Goals:         req.Stats.Goals,
			Assists:       req.Stats.Assists,
			YellowCards:   req.Stats.YellowCards,
			RedCards:      req.Stats.RedCards,
			MinutesPlayed: req.Stats.MinutesPlayed,
			MatchesPlayed: req.Stats.MatchesPlayed,
		}
	}

	item, err := h.rosterService.UpdatePlayer(ctx, playerID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.rosterService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamID := r.PathValue("teamID")
	summary, err := h.rosterService.GetTeamStatsSummary(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamStatsToDTO(summary))
}

func teamStatsToDTO(summary usecase.StatsSummary) teamStatsDTO {
	counts := make(map[string]int, len(summary.CountsByStatus))
	for status, n := range summary.CountsByStatus {
		counts[string(status)] = n
	}

	return teamStatsDTO{
		PlayerCount:    summary.PlayerCount,
		Totals:         statsToPayload(summary.Totals),
		TopScorer:      playerToDTOPtr(summary.TopScorer),
		Captain:        playerToDTOPtr(summary.Captain),
		CountsByStatus: counts,
	}
}
