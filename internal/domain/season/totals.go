package season

import (
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
)

// SkaterTotals are season sums over a player's skater rows.
type SkaterTotals struct {
	Games      int
	Goals      int
	Assists    int
	Points     int
	Shots      int
	PlusMinus  int
	PPG        int
	SHG        int
	GWG        int
	Hits       int
	Blocked    int
	PIM        int
	TOISeconds int
}

// GoalieTotals are season sums over a player's goalie rows.
type GoalieTotals struct {
	GP           int
	Wins         int
	Losses       int
	OT           int
	ShotsAgainst int
	Saves        int
	GoalsAgainst int
	Shutouts     int
	TOISeconds   int
}

// PlayerTotals is the season record of one player. Players without any
// stat rows carry all-zero totals.
type PlayerTotals struct {
	PlayerID int64
	Handle   string
	Position player.Position
	TeamID   *int64
	Skater   SkaterTotals
	Goalie   GoalieTotals
}

// Snapshot is the raw store content the engine works on.
type Snapshot struct {
	Players     []player.Player
	SkaterStats []playerstats.SkaterStat
	GoalieStats []playerstats.GoalieStat
}

// Aggregate rolls every stat row up into its player's season totals in a
// single pass. Output follows the order of snapshot.Players; rows pointing at
// unknown players are dropped.
func Aggregate(snapshot Snapshot) []PlayerTotals {
	out := make([]PlayerTotals, len(snapshot.Players))
	indexByPlayer := make(map[int64]int, len(snapshot.Players))
	for i, p := range snapshot.Players {
		out[i] = PlayerTotals{
			PlayerID: p.ID,
			Handle:   p.Handle,
			Position: p.Position,
			TeamID:   copyID(p.TeamID),
		}
		indexByPlayer[p.ID] = i
	}

	for _, row := range snapshot.SkaterStats {
		idx, ok := indexByPlayer[row.PlayerID]
		if !ok {
			continue
		}
		sk := &out[idx].Skater
		sk.Games++
		sk.Goals += row.Goals
		sk.Assists += row.Assists
		sk.Points += row.Points()
		sk.Shots += row.Shots
		sk.PlusMinus += row.PlusMinus
		sk.PPG += row.PPG
		sk.SHG += row.SHG
		sk.GWG += row.GWG
		sk.Hits += row.Hits
		sk.Blocked += row.Blocked
		sk.PIM += row.PIM
		sk.TOISeconds += row.TOISeconds
	}

	for _, row := range snapshot.GoalieStats {
		idx, ok := indexByPlayer[row.PlayerID]
		if !ok {
			continue
		}
		gl := &out[idx].Goalie
		gl.GP += row.GP
		gl.Wins += row.Wins
		gl.Losses += row.Losses
		gl.OT += row.OT
		gl.ShotsAgainst += row.ShotsAgainst
		gl.Saves += row.Saves
		gl.GoalsAgainst += row.GoalsAgainst
		gl.Shutouts += row.Shutout
		gl.TOISeconds += row.TOISeconds
	}

	return out
}

// SavePct is saves / (saves + goals against), or 0 without any decisions.
func SavePct(saves, goalsAgainst int) float64 {
	total := saves + goalsAgainst
	if total <= 0 {
		return 0
	}
	return float64(saves) / float64(total)
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
