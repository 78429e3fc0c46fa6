package postgres

import (
	"time"

	"github.com/clubhq/clubmanager/internal/domain/message"
)

type messageTableModel struct {
	ID         string    `db:"id"`
	TeamID     string    `db:"team_id"`
	UserID     string    `db:"user_id"`
	SenderName string    `db:"sender_name"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

func messageFromRow(row messageTableModel) message.Message {
	return message.Message{
		ID:         row.ID,
		TeamID:     row.TeamID,
		UserID:     row.UserID,
		SenderName: row.SenderName,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
	}
}

func messageToRow(item message.Message) messageTableModel {
	return messageTableModel{
		ID:         item.ID,
		TeamID:     item.TeamID,
		UserID:     item.UserID,
		SenderName: item.SenderName,
		Content:    item.Content,
		CreatedAt:  item.CreatedAt,
	}
}
