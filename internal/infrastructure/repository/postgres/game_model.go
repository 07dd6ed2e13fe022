package postgres

import (
	"time"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
)

type gameTableModel struct {
	ID             int64     `db:"id,readonly"`
	Date           time.Time `db:"game_date"`
	HomeTeamID     int64     `db:"home_team_id"`
	AwayTeamID     int64     `db:"away_team_id"`
	HomeScore      int       `db:"home_score"`
	AwayScore      int       `db:"away_score"`
	Round          string    `db:"round"`
	ScreenshotPath string    `db:"screenshot_path"`
	Status         string    `db:"status"`
}

func gameToRow(item game.Game) gameTableModel {
	return gameTableModel{
		Date:           item.Date,
		HomeTeamID:     item.HomeTeamID,
		AwayTeamID:     item.AwayTeamID,
		HomeScore:      item.HomeScore,
		AwayScore:      item.AwayScore,
		Round:          item.Round,
		ScreenshotPath: item.ScreenshotPath,
		Status:         game.NormalizeStatus(item.Status),
	}
}

func (row gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:             row.ID,
		Date:           row.Date,
		HomeTeamID:     row.HomeTeamID,
		AwayTeamID:     row.AwayTeamID,
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		Round:          row.Round,
		ScreenshotPath: row.ScreenshotPath,
		Status:         row.Status,
	}
}
