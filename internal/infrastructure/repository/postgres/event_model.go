package postgres

import (
	"time"

	"github.com/clubhq/clubmanager/internal/domain/event"
)

type eventTableModel struct {
	ID          string    `db:"id"`
	TeamID      string    `db:"team_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	StartAt     time.Time `db:"start_at"`
	EndAt       time.Time `db:"end_at"`
	Location    string    `db:"location"`
	Opponent    string    `db:"opponent"`
	IsHome      *bool     `db:"is_home"`
}

func eventFromRow(row eventTableModel) event.Event {
	return event.Event{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Type:        event.Type(row.Type),
		Title:       row.Title,
		Description: row.Description,
		Start:       row.StartAt,
		End:         row.EndAt,
		Location:    row.Location,
		Opponent:    row.Opponent,
		IsHome:      row.IsHome,
	}
}

func eventToRow(item event.Event) eventTableModel {
	return eventTableModel{
		ID:          item.ID,
		TeamID:      item.TeamID,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		StartAt:     item.Start,
		EndAt:       item.End,
		Location:    item.Location,
		Opponent:    item.Opponent,
		IsHome:      item.IsHome,
	}
}
