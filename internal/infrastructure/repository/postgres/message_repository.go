package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubhq/clubmanager/internal/domain/message"
	qb "github.com/clubhq/clubmanager/internal/platform/querybuilder"
)

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) ListByTeam(ctx context.Context, teamID string) ([]message.Message, error) {
	query, args, err := qb.Select("id", "team_id", "user_id", "sender_name", "content", "created_at").
		From("messages").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list messages query: %w", err)
	}

	var rows []messageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list messages by team: %w", err)
	}

	out := make([]message.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, messageFromRow(row))
	}
	return out, nil
}

func (r *MessageRepository) Create(ctx context.Context, item message.Message) error {
	query, args, err := qb.InsertModel("messages", messageToRow(item), "")
	if err != nil {
		return fmt.Errorf("build create message query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create message: duplicate id %s", item.ID)
		}
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}
