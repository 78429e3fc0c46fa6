package postgres

import "github.com/clubhq/clubmanager/internal/domain/player"

type playerTableModel struct {
	ID            string `db:"id"`
	TeamID        string `db:"team_id"`
	Name          string `db:"name"`
	Position      string `db:"position"`
	Number        *int   `db:"number"`
	Status        string `db:"status"`
	Goals         int    `db:"goals"`
	Assists       int    `db:"assists"`
	YellowCards   int    `db:"yellow_cards"`
	RedCards      int    `db:"red_cards"`
	MinutesPlayed int    `db:"minutes_played"`
	MatchesPlayed int    `db:"matches_played"`
	IsCaptain     bool   `db:"is_captain"`
	AvatarURL     string `db:"avatar_url"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		TeamID:   row.TeamID,
		Name:     row.Name,
		Position: player.Position(row.Position),
		Number:   row.Number,
		Status:   player.Status(row.Status),
		Stats: player.Stats{
			Goals:         row.Goals,
			Assists:       row.Assists,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			MinutesPlayed: row.MinutesPlayed,
			MatchesPlayed: row.MatchesPlayed,
		},
		IsCaptain: row.IsCaptain,
		AvatarURL: row.AvatarURL,
	}
}

func playerToRow(item player.Player) playerTableModel {
	return playerTableModel{
		ID:            item.ID,
		TeamID:        item.TeamID,
		Name:          item.Name,
		Position:      string(item.Position),
		Number:        item.Number,
		Status:        string(item.Status),
		Goals:         item.Stats.Goals,
		Assists:       item.Stats.Assists,
		YellowCards:   item.Stats.YellowCards,
		RedCards:      item.Stats.RedCards,
		MinutesPlayed: item.Stats.MinutesPlayed,
		MatchesPlayed: item.Stats.MatchesPlayed,
		IsCaptain:     item.IsCaptain,
		AvatarURL:     item.AvatarURL,
	}
}
