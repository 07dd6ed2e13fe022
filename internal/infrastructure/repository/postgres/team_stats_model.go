package postgres

import "github.com/riskibarqy/hockey-stats/internal/domain/teamstats"

type teamStatTableModel struct {
	ID                int64 `db:"id,readonly"`
	GameID            int64 `db:"game_id"`
	TeamID            int64 `db:"team_id"`
	Goals             int   `db:"goals"`
	Shots             int   `db:"shots"`
	PPGoals           int   `db:"pp_goals"`
	PPAttempts        int   `db:"pp_attempts"`
	PKGoalsAgainst    int   `db:"pk_goals_against"`
	PKAttemptsAgainst int   `db:"pk_attempts_against"`
	FaceoffWins       int   `db:"fow"`
	FaceoffLosses     int   `db:"fol"`
	Saves             int   `db:"saves"`
	ShotsAgainst      int   `db:"shots_against"`
}

func teamStatToRow(item teamstats.TeamStat) teamStatTableModel {
	return teamStatTableModel(item)
}

func (row teamStatTableModel) toDomain() teamstats.TeamStat {
	return teamstats.TeamStat(row)
}
