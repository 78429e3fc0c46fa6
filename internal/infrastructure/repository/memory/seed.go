package memory

import (
	"time"

	"github.com/clubhq/clubmanager/internal/domain/event"
	"github.com/clubhq/clubmanager/internal/domain/message"
	"github.com/clubhq/clubmanager/internal/domain/player"
	"github.com/clubhq/clubmanager/internal/domain/team"
)

const (
	TeamIDFirst  = "team-first-squad"
	TeamIDSecond = "team-second-squad"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDFirst, Name: "1. Mannschaft", Color: "#1d4ed8"},
		{ID: TeamIDSecond, Name: "2. Mannschaft", Color: "#16a34a"},
	}
}

func SeedPlayers() []player.Player {
	one := func(n int) *int { return &n }

	return []player.Player{
		{
			ID: "pl-keeper-01", TeamID: TeamIDFirst, Name: "Max Mustermann",
			Position: player.PositionGoalkeeper, Number: one(1), Status: player.StatusActive,
			Stats: player.Stats{MinutesPlayed: 990, MatchesPlayed: 11},
		},
		{
			ID: "pl-def-01", TeamID: TeamIDFirst, Name: "Jonas Weber",
			Position: player.PositionDefender, Number: one(4), Status: player.StatusActive,
			Stats: player.Stats{Goals: 1, YellowCards: 3, MinutesPlayed: 870, MatchesPlayed: 10},
		},
		{
			ID: "pl-mid-01", TeamID: TeamIDFirst, Name: "Lukas Schneider",
			Position: player.PositionMidfielder, Number: one(8), Status: player.StatusActive, IsCaptain: true,
			Stats: player.Stats{Goals: 4, Assists: 6, YellowCards: 2, MinutesPlayed: 920, MatchesPlayed: 11},
		},
		{
			ID: "pl-fwd-01", TeamID: TeamIDFirst, Name: "Erik Hoffmann",
			Position: player.PositionForward, Number: one(9), Status: player.StatusInjured,
			Stats: player.Stats{Goals: 9, Assists: 2, MinutesPlayed: 780, MatchesPlayed: 9},
		},
		{
			ID: "pl-mid-02", TeamID: TeamIDSecond, Name: "Felix Brandt",
			Position: player.PositionMidfielder, Number: one(10), Status: player.StatusActive,
			Stats: player.Stats{Goals: 2, Assists: 3, MinutesPlayed: 640, MatchesPlayed: 8},
		},
	}
}

func SeedEvents() []event.Event {
	home := true

	return []event.Event{
		{
			ID: "ev-training-01", TeamID: TeamIDFirst, Type: event.TypeTraining,
			Title: "Dienstagstraining", Location: "Sportplatz Nord",
			Start: time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			ID: "ev-match-01", TeamID: TeamIDFirst, Type: event.TypeMatch,
			Title: "Punktspiel", Location: "Stadion am Park",
			Opponent: "SV Eintracht", IsHome: &home,
			Start: time.Date(2026, 9, 6, 15, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 6, 17, 0, 0, 0, time.UTC),
		},
	}
}

func SeedMessages() []message.Message {
	return []message.Message{
		{
			ID: "msg-001", TeamID: TeamIDFirst, UserID: "usr-coach",
			SenderName: "Trainer", Content: "Treffpunkt Samstag 13:30 am Vereinsheim.",
			CreatedAt: time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC),
		},
	}
}
