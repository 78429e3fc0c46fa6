package postgres

import "github.com/clubhq/clubmanager/internal/domain/attendance"

type attendanceTableModel struct {
	EventID  string `db:"event_id"`
	PlayerID string `db:"player_id"`
	Status   string `db:"status"`
	Reason   string `db:"reason"`
}

func attendanceFromRow(row attendanceTableModel) attendance.Record {
	return attendance.Record{
		EventID:  row.EventID,
		PlayerID: row.PlayerID,
		Status:   attendance.Status(row.Status),
		Reason:   row.Reason,
	}
}

func attendanceToRow(item attendance.Record) attendanceTableModel {
	return attendanceTableModel{
		EventID:  item.EventID,
		PlayerID: item.PlayerID,
		Status:   string(item.Status),
		Reason:   item.Reason,
	}
}
