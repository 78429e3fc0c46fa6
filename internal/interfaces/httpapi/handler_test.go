package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/user"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
	"github.com/clubhq/clubmanager/internal/platform/id"
	"github.com/clubhq/clubmanager/internal/platform/logging"
	"github.com/clubhq/clubmanager/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	attendanceRepo := memory.NewAttendanceRepository()
	tacticRepo := memory.NewTacticRepository()
	messageRepo := memory.NewMessageRepository(memory.SeedMessages())
	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, idGen),
		usecase.NewRosterService(teamRepo, playerRepo, idGen),
		usecase.NewCalendarService(teamRepo, eventRepo, idGen),
		usecase.NewAttendanceService(attendanceRepo, eventRepo, playerRepo, 4),
		usecase.NewTacticService(teamRepo, tacticRepo, idGen, 0),
		usecase.NewMessageService(teamRepo, messageRepo, idGen),
		usecase.NewDashboardService(teamRepo, playerRepo, eventRepo, messageRepo),
		logger,
	)

	verifier := stubVerifier{principal: user.Principal{UserID: "usr-coach", Name: "Coach"}}
	return NewRouter(handler, verifier, logger, []string{"*"})
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var items []teamDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal teams: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded teams, got %d", len(items))
	}
}

func TestRouter_GetTeamNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/teams/missing-team", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if _, ok := body["message"]; !ok {
		t.Fatalf("expected message key in error body, got %v", body)
	}
}

func TestRouter_CreatePlayerRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"teamId":"` + memory.TeamIDFirst + `","name":"Neuer Spieler","position":"MID","unexpected":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_CreateAndDeletePlayer(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"teamId":"` + memory.TeamIDFirst + `","name":"Neuer Spieler","position":"MID"}`
	req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created playerDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created player: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected created player to carry an id")
	}
	if created.Status != "Active" {
		t.Fatalf("expected default status Active, got %q", created.Status)
	}
	if created.Stats.Goals != 0 {
		t.Fatalf("expected zeroed stats, got %+v", created.Stats)
	}

	del := httptest.NewRequest(http.MethodDelete, "/api/players/"+created.ID, nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, del)
	if delRec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", delRec.Code)
	}

	// Deletes are idempotent at the HTTP layer.
	delAgain := httptest.NewRequest(http.MethodDelete, "/api/players/"+created.ID, nil)
	delAgainRec := httptest.NewRecorder()
	router.ServeHTTP(delAgainRec, delAgain)
	if delAgainRec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 on repeat delete, got %d", delAgainRec.Code)
	}
}

func TestRouter_RecordAttendanceUpsert(t *testing.T) {
	router := newTestRouter(t)

	record := func(status string) *httptest.ResponseRecorder {
		payload := `{"eventId":"ev-training-01","playerId":"pl-keeper-01","status":"` + status + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/attendance", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := record("Present"); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := record("Late"); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on upsert, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-training-01/attendance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var items []attendanceDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal attendance: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one attendance row after upsert, got %d", len(items))
	}
	if items[0].Status != "Late" {
		t.Fatalf("expected last write to win, got %q", items[0].Status)
	}
}

func TestRouter_RecordAttendanceUnknownEvent(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"eventId":"ev-missing","playerId":"pl-keeper-01","status":"Present"}`
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_CreateTacticRejectsOutOfBoundsMarker(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"teamId":"` + memory.TeamIDFirst + `","name":"Pressing","markers":[{"id":"m1","x":1.5,"y":0.2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/tactics", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_PostMessageRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"teamId":"` + memory.TeamIDFirst + `","content":"Training fällt aus"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	authed := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(payload))
	authed.Header.Set("Authorization", "Bearer token-123")
	authedRec := httptest.NewRecorder()
	router.ServeHTTP(authedRec, authed)

	if authedRec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 with token, got %d: %s", authedRec.Code, authedRec.Body.String())
	}

	var created messageDTO
	if err := sonic.Unmarshal(authedRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created message: %v", err)
	}
	if created.UserID != "usr-coach" {
		t.Fatalf("expected author usr-coach, got %q", created.UserID)
	}
	if created.SenderName != "Coach" {
		t.Fatalf("expected sender name from principal, got %q", created.SenderName)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
