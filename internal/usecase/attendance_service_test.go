package usecase

import (
	"errors"
	"sync"
	"testing"

	"github.com/clubhq/clubmanager/internal/domain/attendance"
	"github.com/clubhq/clubmanager/internal/infrastructure/repository/memory"
)

func newAttendanceFixture() *AttendanceService {
	attendanceRepo := memory.NewAttendanceRepository()
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	return NewAttendanceService(attendanceRepo, eventRepo, playerRepo, 4)
}

func TestAttendanceService_RecordOverwritesExisting(t *testing.T) {
	svc := newAttendanceFixture()
	ctx := t.Context()

	first, err := svc.Record(ctx, RecordAttendanceInput{
		EventID:  "ev-training-01",
		PlayerID: "pl-keeper-01",
		Status:   attendance.StatusPresent,
	})
	if err != nil {
		t.Fatalf("first record: %v", err)
	}
	if first.Status != attendance.StatusPresent {
		t.Fatalf("unexpected status: %s", first.Status)
	}

	second, err := svc.Record(ctx, RecordAttendanceInput{
		EventID:  "ev-training-01",
		PlayerID: "pl-keeper-01",
		Status:   attendance.StatusLate,
		Reason:   "traffic",
	})
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if second.Status != attendance.StatusLate || second.Reason != "traffic" {
		t.Fatalf("unexpected record after overwrite: %+v", second)
	}

	items, err := svc.ListForEvent(ctx, "ev-training-01")
	if err != nil {
		t.Fatalf("list for event: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one row for the pair, got %d", len(items))
	}
	if items[0].Status != attendance.StatusLate {
		t.Fatalf("expected last write to win, got %s", items[0].Status)
	}
}

func TestAttendanceService_RecordRejectsMissingReferences(t *testing.T) {
	svc := newAttendanceFixture()
	ctx := t.Context()

	_, err := svc.Record(ctx, RecordAttendanceInput{
		EventID:  "ev-unknown",
		PlayerID: "pl-keeper-01",
		Status:   attendance.StatusPresent,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown event, got %v", err)
	}

	_, err = svc.Record(ctx, RecordAttendanceInput{
		EventID:  "ev-training-01",
		PlayerID: "pl-unknown",
		Status:   attendance.StatusPresent,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	items, err := svc.ListForEvent(ctx, "ev-training-01")
	if err != nil {
		t.Fatalf("list for event: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rejected writes must not leave rows, got %d", len(items))
	}
}

func TestAttendanceService_RecordRejectsInvalidStatus(t *testing.T) {
	svc := newAttendanceFixture()

	_, err := svc.Record(t.Context(), RecordAttendanceInput{
		EventID:  "ev-training-01",
		PlayerID: "pl-keeper-01",
		Status:   attendance.Status("Maybe"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAttendanceService_RecordBulkReportsPerPlayerFailures(t *testing.T) {
	svc := newAttendanceFixture()
	ctx := t.Context()

	result, err := svc.RecordBulk(ctx, BulkAttendanceInput{
		EventID:   "ev-match-01",
		PlayerIDs: []string{"pl-keeper-01", "pl-unknown", "pl-mid-01", "pl-def-01"},
		Status:    attendance.StatusPresent,
	})
	if err != nil {
		t.Fatalf("record bulk: %v", err)
	}

	if len(result.Records) != 3 {
		t.Fatalf("expected 3 successful records, got %d", len(result.Records))
	}
	wantOrder := []string{"pl-def-01", "pl-keeper-01", "pl-mid-01"}
	for i, want := range wantOrder {
		if result.Records[i].PlayerID != want {
			t.Fatalf("records not sorted by player id: got %s at %d", result.Records[i].PlayerID, i)
		}
	}

	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}
	if result.Failures[0].PlayerID != "pl-unknown" {
		t.Fatalf("unexpected failing player: %s", result.Failures[0].PlayerID)
	}

	items, err := svc.ListForEvent(ctx, "ev-match-01")
	if err != nil {
		t.Fatalf("list for event: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 stored rows, got %d", len(items))
	}
}

func TestAttendanceService_RecordBulkRequiresKnownEvent(t *testing.T) {
	svc := newAttendanceFixture()

	_, err := svc.RecordBulk(t.Context(), BulkAttendanceInput{
		EventID:   "ev-unknown",
		PlayerIDs: []string{"pl-keeper-01"},
		Status:    attendance.StatusPresent,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAttendanceService_ConcurrentRecordsForSamePairKeepOneRow(t *testing.T) {
	svc := newAttendanceFixture()
	ctx := t.Context()

	statuses := []attendance.Status{
		attendance.StatusPresent,
		attendance.StatusAbsent,
		attendance.StatusLate,
		attendance.StatusExcused,
		attendance.StatusPending,
	}

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		status := statuses[i%len(statuses)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Record(ctx, RecordAttendanceInput{
				EventID:  "ev-training-01",
				PlayerID: "pl-mid-01",
				Status:   status,
			}); err != nil {
				t.Errorf("record: %v", err)
			}
		}()
	}
	wg.Wait()

	items, err := svc.ListForEvent(ctx, "ev-training-01")
	if err != nil {
		t.Fatalf("list for event: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one row after concurrent writes, got %d", len(items))
	}
	if _, ok := attendance.AllStatuses[items[0].Status]; !ok {
		t.Fatalf("stored status is not one of the written values: %s", items[0].Status)
	}
}
