package game

import (
	"fmt"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusFinal     = "FINAL"
)

// Game is one scheduled or played match. Scores default to zero, so an
// unplayed game looks like a 0-0 tie unless Status is consulted.
type Game struct {
	ID             int64
	Date           time.Time
	HomeTeamID     int64
	AwayTeamID     int64
	HomeScore      int
	AwayScore      int
	Round          string
	ScreenshotPath string
	Status         string
}

func (g Game) Validate() error {
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.HomeTeamID <= 0 || g.AwayTeamID <= 0 {
		return fmt.Errorf("home and away team ids are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("home and away team must differ")
	}

	return nil
}

func (g Game) Involves(teamID int64) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

func NormalizeStatus(status string) string {
	if status == StatusFinal {
		return StatusFinal
	}
	return StatusScheduled
}
