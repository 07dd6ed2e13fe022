package season

import (
	"sort"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
)

// Standing is one team's row in the league table.
type Standing struct {
	TeamID int64
	Team   string
	Wins   int
	Losses int
	OT     int
	GF     int
	// GA sums TeamStat.ShotsAgainst, not goals against. Consumers rely on
	// this column as published, so it is kept as is.
	GA int
}

// Points is two per win plus one per tied (OT) game.
func (s Standing) Points() int {
	return s.Wins*2 + s.OT
}

type StandingsOptions struct {
	// ExcludeUnplayed skips games that never had a final score recorded.
	// Off by default, where a 0-0 unplayed game counts as OT for both teams.
	ExcludeUnplayed bool
}

// Standings derives the league table from game results and team stat rows,
// ordered by points descending. Equal points keep team list order.
func Standings(teams []team.Team, games []game.Game, stats []teamstats.TeamStat, opts StandingsOptions) []Standing {
	rows := make([]Standing, len(teams))
	index := make(map[int64]*Standing, len(teams))
	for i, t := range teams {
		rows[i] = Standing{TeamID: t.ID, Team: t.Name}
		index[t.ID] = &rows[i]
	}

	for _, ts := range stats {
		row, ok := index[ts.TeamID]
		if !ok {
			continue
		}
		row.GF += ts.Goals
		row.GA += ts.ShotsAgainst
	}

	for _, g := range games {
		if opts.ExcludeUnplayed && !g.IsFinal() {
			continue
		}
		// self-matches are rejected on create
		if g.HomeTeamID == g.AwayTeamID {
			continue
		}
		home, away := index[g.HomeTeamID], index[g.AwayTeamID]
		switch {
		case g.HomeScore == g.AwayScore:
			bump(home, func(s *Standing) { s.OT++ })
			bump(away, func(s *Standing) { s.OT++ })
		case g.HomeScore > g.AwayScore:
			bump(home, func(s *Standing) { s.Wins++ })
			bump(away, func(s *Standing) { s.Losses++ })
		default:
			bump(away, func(s *Standing) { s.Wins++ })
			bump(home, func(s *Standing) { s.Losses++ })
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points() > rows[j].Points()
	})
	return rows
}

func bump(row *Standing, fn func(*Standing)) {
	if row != nil {
		fn(row)
	}
}
