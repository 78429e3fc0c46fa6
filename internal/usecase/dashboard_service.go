package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/domain/message"
	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/domain/team"
)

const overviewMessageLimit = 5

// TeamOverview is the aggregate the dashboard renders in one request.
type TeamOverview struct {
	Team           team.Team
	StatsSummary   StatsSummary
	UpcomingEvent  *event.Event
	LatestMessages []message.Message
}

type DashboardService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	eventRepo   event.Repository
	messageRepo message.Repository
	now         func() time.Time
}

func NewDashboardService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	eventRepo event.Repository,
	messageRepo message.Repository,
) *DashboardService {
	return &DashboardService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		eventRepo:   eventRepo,
		messageRepo: messageRepo,
		now:         time.Now,
	}
}

// GetTeamOverview fans out the roster, calendar and message reads
// concurrently and folds them into one snapshot.
func (s *DashboardService) GetTeamOverview(ctx context.Context, teamID string) (TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "DashboardService.GetTeamOverview")
	defer span.End()

	if teamID == "" {
		return TeamOverview{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return TeamOverview{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	var (
		players  []player.Player
		events   []event.Event
		messages []message.Message
	)

	group := pool.New().WithContext(ctx)
	group.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list players by team: %w", err)
		}
		players = items
		return nil
	})
	group.Go(func(ctx context.Context) error {
		items, err := s.eventRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list events by team: %w", err)
		}
		events = items
		return nil
	})
	group.Go(func(ctx context.Context) error {
		items, err := s.messageRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list messages by team: %w", err)
		}
		messages = items
		return nil
	})
	if err := group.Wait(); err != nil {
		return TeamOverview{}, err
	}

	if len(messages) > overviewMessageLimit {
		messages = messages[:overviewMessageLimit]
	}

	return TeamOverview{
		Team:           teamItem,
		StatsSummary:   SummarizeRoster(players),
		UpcomingEvent:  nextUpcomingEvent(events, s.now()),
		LatestMessages: messages,
	}, nil
}

// nextUpcomingEvent picks the earliest event not yet started. The input
// is ordered by start descending, so the last qualifying entry wins.
func nextUpcomingEvent(events []event.Event, now time.Time) *event.Event {
	var next *event.Event
	for i := range events {
		e := events[i]
		if e.Start.Before(now) {
			continue
		}
		if next == nil || e.Start.Before(next.Start) {
			next = &events[i]
		}
	}

	return next
}
