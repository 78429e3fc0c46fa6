package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubhq/clubmanager/internal/domain/event"
	qb "github.com/clubhq/clubmanager/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	query, args, err := eventBaseSelectBuilder().
		Where(qb.Eq("team_id", teamID)).
		OrderBy("start_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events by team: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := eventBaseSelectBuilder().
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	return eventFromRow(row), true, nil
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	query, args, err := qb.InsertModel("events", eventToRow(item), "")
	if err != nil {
		return fmt.Errorf("build create event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create event: duplicate id %s", item.ID)
		}
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	query, args, err := qb.DeleteFrom("events").
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

func eventBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id", "team_id", "type", "title", "description",
		"start_at", "end_at", "location", "opponent", "is_home",
	).From("events")
}
