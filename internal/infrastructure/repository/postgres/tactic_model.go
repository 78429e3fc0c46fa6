package postgres

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/clubhq/clubmanager/internal/domain/tactic"
)

type tacticTableModel struct {
	ID          string `db:"id"`
	TeamID      string `db:"team_id"`
	Name        string `db:"name"`
	Formation   string `db:"formation"`
	Markers     []byte `db:"markers"`
	DrawingData string `db:"drawing_data"`
}

type tacticMarkerJSON struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Number int     `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
}

func tacticFromRow(row tacticTableModel) (tactic.Tactic, error) {
	var markers []tacticMarkerJSON
	if len(row.Markers) > 0 {
		if err := sonic.Unmarshal(row.Markers, &markers); err != nil {
			return tactic.Tactic{}, fmt.Errorf("decode tactic markers: %w", err)
		}
	}

	out := tactic.Tactic{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		Formation:   row.Formation,
		Markers:     make([]tactic.Marker, 0, len(markers)),
		DrawingData: row.DrawingData,
	}
	for _, m := range markers {
		out.Markers = append(out.Markers, tactic.Marker{
			ID:     m.ID,
			Name:   m.Name,
			Number: m.Number,
			X:      m.X,
			Y:      m.Y,
			Color:  m.Color,
		})
	}
	return out, nil
}

func tacticToRow(item tactic.Tactic) (tacticTableModel, error) {
	markers := make([]tacticMarkerJSON, 0, len(item.Markers))
	for _, m := range item.Markers {
		markers = append(markers, tacticMarkerJSON{
			ID:     m.ID,
			Name:   m.Name,
			Number: m.Number,
			X:      m.X,
			Y:      m.Y,
			Color:  m.Color,
		})
	}

	encoded, err := sonic.Marshal(markers)
	if err != nil {
		return tacticTableModel{}, fmt.Errorf("encode tactic markers: %w", err)
	}

	return tacticTableModel{
		ID:          item.ID,
		TeamID:      item.TeamID,
		Name:        item.Name,
		Formation:   item.Formation,
		Markers:     encoded,
		DrawingData: item.DrawingData,
	}, nil
}
