package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubhq/clubmanager/internal/domain/attendance"
	qb "github.com/clubhq/clubmanager/internal/platform/querybuilder"
)

// AttendanceRepository leans on the table's UNIQUE (event_id, player_id)
// constraint: the upsert is one INSERT ... ON CONFLICT statement, so the
// database serializes concurrent writes for the same pair.
type AttendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Upsert(ctx context.Context, item attendance.Record) (attendance.Record, error) {
	query, args, err := qb.InsertModel("attendance", attendanceToRow(item), `ON CONFLICT (event_id, player_id)
DO UPDATE SET
    status = EXCLUDED.status,
    reason = EXCLUDED.reason
RETURNING event_id, player_id, status, reason`)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("build attendance upsert query: %w", err)
	}

	var row attendanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return attendance.Record{}, fmt.Errorf("upsert attendance: %w", err)
	}

	return attendanceFromRow(row), nil
}

func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]attendance.Record, error) {
	query, args, err := qb.Select("event_id", "player_id", "status", "reason").
		From("attendance").
		Where(qb.Eq("event_id", eventID)).
		OrderBy("player_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendance query: %w", err)
	}

	var rows []attendanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance by event: %w", err)
	}

	out := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, attendanceFromRow(row))
	}
	return out, nil
}
