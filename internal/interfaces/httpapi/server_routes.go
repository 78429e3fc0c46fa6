package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("POST /api/teams", handler.CreateTeam)
	mux.HandleFunc("GET /api/teams/{teamID}/stats", handler.GetTeamStats)
	mux.HandleFunc("GET /api/teams/{teamID}/overview", handler.GetTeamOverview)

	mux.HandleFunc("GET /api/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("PUT /api/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /api/teams/{teamID}/events", handler.ListEventsByTeam)
	mux.HandleFunc("POST /api/events", handler.CreateEvent)
	mux.HandleFunc("DELETE /api/events/{eventID}", handler.DeleteEvent)

	mux.HandleFunc("GET /api/events/{eventID}/attendance", handler.ListAttendanceForEvent)
	mux.HandleFunc("POST /api/attendance", handler.RecordAttendance)
	mux.HandleFunc("POST /api/attendance/bulk", handler.RecordAttendanceBulk)

	mux.HandleFunc("GET /api/teams/{teamID}/tactics", handler.ListTacticsByTeam)
	mux.HandleFunc("POST /api/tactics", handler.CreateTactic)

	mux.HandleFunc("GET /api/teams/{teamID}/messages", handler.ListMessagesByTeam)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	// Messages carry the author's identity, so posting needs a verified
	// principal; everything else stays open like the rest of the API.
	mux.Handle("POST /api/messages", RequireAuth(verifier, http.HandlerFunc(handler.PostMessage)))
}
