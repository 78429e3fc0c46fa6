package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/clubhq/clubmanager/internal/domain/attendance"
	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/domain/player"
)

const defaultBulkWorkers = 8

type RecordAttendanceInput struct {
	EventID  string
	PlayerID string
	Status   attendance.Status
	Reason   string
}

type BulkAttendanceInput struct {
	EventID   string
	PlayerIDs []string
	Status    attendance.Status
	Reason    string
}

type BulkFailure struct {
	PlayerID string
	Reason   string
}

type BulkAttendanceResult struct {
	Records  []attendance.Record
	Failures []BulkFailure
}

type AttendanceService struct {
	attendanceRepo attendance.Repository
	eventRepo      event.Repository
	playerRepo     player.Repository
	maxBulkWorkers int
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	eventRepo event.Repository,
	playerRepo player.Repository,
	maxBulkWorkers int,
) *AttendanceService {
	if maxBulkWorkers < 1 {
		maxBulkWorkers = defaultBulkWorkers
	}

	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		playerRepo:     playerRepo,
		maxBulkWorkers: maxBulkWorkers,
	}
}

// Record upserts the attendance row for (event, player). Two concurrent
// calls for the same pair leave one row, last committed write wins. The
// event and player must both exist; a write against a missing reference
// is rejected rather than creating an orphaned row.
func (s *AttendanceService) Record(ctx context.Context, input RecordAttendanceInput) (attendance.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "AttendanceService.Record")
	defer span.End()

	item := attendance.Record{
		EventID:  strings.TrimSpace(input.EventID),
		PlayerID: strings.TrimSpace(input.PlayerID),
		Status:   input.Status,
		Reason:   strings.TrimSpace(input.Reason),
	}
	if err := item.Validate(); err != nil {
		return attendance.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.requireEvent(ctx, item.EventID); err != nil {
		return attendance.Record{}, err
	}
	if err := s.requirePlayer(ctx, item.PlayerID); err != nil {
		return attendance.Record{}, err
	}

	saved, err := s.attendanceRepo.Upsert(ctx, item)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("upsert attendance: %w", err)
	}

	return saved, nil
}

func (s *AttendanceService) ListForEvent(ctx context.Context, eventID string) ([]attendance.Record, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}

	items, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by event: %w", err)
	}

	return items, nil
}

// RecordBulk applies one status to many players of the same event, one
// upsert per player over a bounded worker pool. Failures are reported
// per player; one bad player does not abort the rest.
func (s *AttendanceService) RecordBulk(ctx context.Context, input BulkAttendanceInput) (BulkAttendanceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "AttendanceService.RecordBulk")
	defer span.End()

	input.EventID = strings.TrimSpace(input.EventID)
	if input.EventID == "" {
		return BulkAttendanceResult{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if len(input.PlayerIDs) == 0 {
		return BulkAttendanceResult{}, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}
	if _, ok := attendance.AllStatuses[input.Status]; !ok {
		return BulkAttendanceResult{}, fmt.Errorf("%w: invalid attendance status: %s", ErrInvalidInput, input.Status)
	}

	if err := s.requireEvent(ctx, input.EventID); err != nil {
		return BulkAttendanceResult{}, err
	}

	workers := s.maxBulkWorkers
	if len(input.PlayerIDs) < workers {
		workers = len(input.PlayerIDs)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return BulkAttendanceResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result BulkAttendanceResult
	)
	for _, playerID := range input.PlayerIDs {
		playerID := strings.TrimSpace(playerID)
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			record, recErr := s.Record(ctx, RecordAttendanceInput{
				EventID:  input.EventID,
				PlayerID: playerID,
				Status:   input.Status,
				Reason:   input.Reason,
			})

			mu.Lock()
			defer mu.Unlock()
			if recErr != nil {
				result.Failures = append(result.Failures, BulkFailure{
					PlayerID: playerID,
					Reason:   recErr.Error(),
				})
				return
			}
			result.Records = append(result.Records, record)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			result.Failures = append(result.Failures, BulkFailure{
				PlayerID: playerID,
				Reason:   submitErr.Error(),
			})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.Slice(result.Records, func(i, j int) bool {
		return result.Records[i].PlayerID < result.Records[j].PlayerID
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].PlayerID < result.Failures[j].PlayerID
	})

	return result, nil
}

func (s *AttendanceService) requireEvent(ctx context.Context, eventID string) error {
	_, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return nil
}

func (s *AttendanceService) requirePlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}
