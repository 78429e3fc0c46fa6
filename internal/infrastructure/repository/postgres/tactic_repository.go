package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubhq/clubmanager/internal/domain/tactic"
	qb "github.com/clubhq/clubmanager/internal/platform/querybuilder"
)

type TacticRepository struct {
	db *sqlx.DB
}

func NewTacticRepository(db *sqlx.DB) *TacticRepository {
	return &TacticRepository{db: db}
}

func (r *TacticRepository) ListByTeam(ctx context.Context, teamID string) ([]tactic.Tactic, error) {
	query, args, err := qb.Select("id", "team_id", "name", "formation", "markers", "drawing_data").
		From("tactics").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tactics query: %w", err)
	}

	var rows []tacticTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tactics by team: %w", err)
	}

	out := make([]tactic.Tactic, 0, len(rows))
	for _, row := range rows {
		item, err := tacticFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TacticRepository) Create(ctx context.Context, item tactic.Tactic) error {
	row, err := tacticToRow(item)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("tactics", row, "")
	if err != nil {
		return fmt.Errorf("build create tactic query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create tactic: duplicate id %s", item.ID)
		}
		return fmt.Errorf("create tactic: %w", err)
	}

	return nil
}
