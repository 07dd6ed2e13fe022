package playerstats

// SkaterStat is one skater's stat line for one game.
type SkaterStat struct {
	ID            int64
	GameID        int64
	PlayerID      int64
	Goals         int
	Assists       int
	Shots         int
	PPG           int
	PPA           int
	SHG           int
	SHA           int
	GWG           int
	OTG           int
	PlusMinus     int
	Hits          int
	Blocked       int
	Giveaways     int
	Takeaways     int
	FaceoffWins   int
	FaceoffLosses int
	TOISeconds    int
	PPTOISeconds  int
	PKTOISeconds  int
	PIM           int
	Majors        int
	Misconducts   int
}

func (s SkaterStat) Points() int {
	return s.Goals + s.Assists
}

// GoalieStat is one goalie's record for one game.
type GoalieStat struct {
	ID           int64
	GameID       int64
	PlayerID     int64
	GP           int
	Wins         int
	Losses       int
	OT           int
	ShotsAgainst int
	Saves        int
	GoalsAgainst int
	Shutout      int
	TOISeconds   int
}

// Filter narrows stat scans by player and/or game. Nil fields are ignored.
type Filter struct {
	PlayerID *int64
	GameID   *int64
}

func (f Filter) Match(playerID, gameID int64) bool {
	if f.PlayerID != nil && *f.PlayerID != playerID {
		return false
	}
	if f.GameID != nil && *f.GameID != gameID {
		return false
	}
	return true
}
