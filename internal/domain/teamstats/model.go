package teamstats

// TeamStat holds team-level totals for one game.
type TeamStat struct {
	ID                int64
	GameID            int64
	TeamID            int64
	Goals             int
	Shots             int
	PPGoals           int
	PPAttempts        int
	PKGoalsAgainst    int
	PKAttemptsAgainst int
	FaceoffWins       int
	FaceoffLosses     int
	Saves             int
	ShotsAgainst      int
}

// Filter narrows team stat scans by team and/or game.
type Filter struct {
	TeamID *int64
	GameID *int64
}

func (f Filter) Match(teamID, gameID int64) bool {
	if f.TeamID != nil && *f.TeamID != teamID {
		return false
	}
	if f.GameID != nil && *f.GameID != gameID {
		return false
	}
	return true
}
