package app

import (
	"fmt"
	"net/http"

	"github.com/clubhq/clubmanager/internal/config"
	"github.com/clubhq/clubmanager/internal/domain/attendance"
	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/domain/message"
	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/domain/tactic"
	"github.com/clubhq/clubmanager/internal/domain/team"
	"github.com/clubhq/clubmanager/internal/infrastructure/account/passport"
	cachedrepo "github.com/clubhq/clubmanager/internal/infrastructure/repository/cache"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/postgres"
	"github.com/clubhq/clubmanager/internal/interfaces/httpapi"
	basecache "github.com/clubhq/clubmanager/internal/platform/cache"
	idgen "github.com/clubhq/clubmanager/internal/platform/id"
	"github.com/clubhq/clubmanager/internal/platform/logging"
	"github.com/clubhq/clubmanager/internal/platform/resilience"
	"github.com/clubhq/clubmanager/internal/usecase"
)

type repositories struct {
	team       team.Repository
	player     player.Repository
	event      event.Repository
	attendance attendance.Repository
	tactic     tactic.Repository
	message    message.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.team = cachedrepo.NewTeamRepository(repos.team, store)
		repos.player = cachedrepo.NewPlayerRepository(repos.player, store)
		repos.event = cachedrepo.NewEventRepository(repos.event, store)
	}

	gen := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.team, gen)
	rosterSvc := usecase.NewRosterService(repos.team, repos.player, gen)
	calendarSvc := usecase.NewCalendarService(repos.team, repos.event, gen)
	attendanceSvc := usecase.NewAttendanceService(repos.attendance, repos.event, repos.player, cfg.AttendanceBulkMaxWorkers)
	tacticSvc := usecase.NewTacticService(repos.team, repos.tactic, gen, cfg.DrawingDataMaxBytes)
	messageSvc := usecase.NewMessageService(repos.team, repos.message, gen)
	dashboardSvc := usecase.NewDashboardService(repos.team, repos.player, repos.event, repos.message)

	var breaker *resilience.CircuitBreaker
	if cfg.PassportCircuitEnabled {
		breakerCfg := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PassportCircuitHalfOpenMax,
		})
		breaker = resilience.NewCircuitBreaker(
			breakerCfg.FailureThreshold,
			breakerCfg.OpenTimeout,
			breakerCfg.HalfOpenMaxReq,
		)
	}
	verifier := passport.NewClient(
		&http.Client{Timeout: cfg.PassportTimeout},
		cfg.PassportBaseURL,
		cfg.PassportIntrospectPath,
		breaker,
		logger,
	)

	handler := httpapi.NewHandler(
		teamSvc,
		rosterSvc,
		calendarSvc,
		attendanceSvc,
		tacticSvc,
		messageSvc,
		dashboardSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("storage driver: seeded in-memory store", "reason", "DB_URL empty")
		return repositories{
			team:       memory.NewTeamRepository(memory.SeedTeams()),
			player:     memory.NewPlayerRepository(memory.SeedPlayers()),
			event:      memory.NewEventRepository(memory.SeedEvents()),
			attendance: memory.NewAttendanceRepository(),
			tactic:     memory.NewTacticRepository(),
			message:    memory.NewMessageRepository(memory.SeedMessages()),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}
	logger.Info("storage driver: postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		team:       postgres.NewTeamRepository(db),
		player:     postgres.NewPlayerRepository(db),
		event:      postgres.NewEventRepository(db),
		attendance: postgres.NewAttendanceRepository(db),
		tactic:     postgres.NewTacticRepository(db),
		message:    postgres.NewMessageRepository(db),
	}, nil
}
