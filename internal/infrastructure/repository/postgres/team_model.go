package postgres

import "github.com/clubhq/clubmanager/internal/domain/team"

type teamTableModel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Color   string `db:"color"`
	LogoURL string `db:"logo_url"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:      row.ID,
		Name:    row.Name,
		Color:   row.Color,
		LogoURL: row.LogoURL,
	}
}

func teamToRow(item team.Team) teamTableModel {
	return teamTableModel{
		ID:      item.ID,
		Name:    item.Name,
		Color:   item.Color,
		LogoURL: item.LogoURL,
	}
}
