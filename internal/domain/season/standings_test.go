package season

import (
	"testing"
	"time"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTeams = []team.Team{
	{ID: 1, Name: "Harbor Hawks", Short: "HAW"},
	{ID: 2, Name: "Ridge Wolves", Short: "RDG"},
}

func TestStandings_HomeWin(t *testing.T) {
	games := []game.Game{
		{ID: 1, Date: time.Now(), HomeTeamID: 1, AwayTeamID: 2, HomeScore: 3, AwayScore: 2, Status: game.StatusFinal},
	}

	got := Standings(testTeams, games, nil, StandingsOptions{})
	require.Len(t, got, 2)

	assert.Equal(t, Standing{TeamID: 1, Team: "Harbor Hawks", Wins: 1}, got[0])
	assert.Equal(t, Standing{TeamID: 2, Team: "Ridge Wolves", Losses: 1}, got[1])
}

func TestStandings_AwayWinRanksFirst(t *testing.T) {
	games := []game.Game{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 1, AwayScore: 4, Status: game.StatusFinal},
	}

	got := Standings(testTeams, games, nil, StandingsOptions{})
	assert.Equal(t, int64(2), got[0].TeamID)
	assert.Equal(t, 1, got[0].Wins)
	assert.Equal(t, 2, got[0].Points())
	assert.Equal(t, 1, got[1].Losses)
}

func TestStandings_UnplayedGameCountsAsOT(t *testing.T) {
	games := []game.Game{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, Status: game.StatusScheduled},
	}

	got := Standings(testTeams, games, nil, StandingsOptions{})
	for _, row := range got {
		assert.Equal(t, 1, row.OT, "team %d", row.TeamID)
		assert.Zero(t, row.Wins)
		assert.Zero(t, row.Losses)
	}

	excluded := Standings(testTeams, games, nil, StandingsOptions{ExcludeUnplayed: true})
	for _, row := range excluded {
		assert.Zero(t, row.OT, "team %d", row.TeamID)
	}
}

func TestStandings_GoalsForAndShotsAgainstColumn(t *testing.T) {
	stats := []teamstats.TeamStat{
		{GameID: 1, TeamID: 1, Goals: 3, ShotsAgainst: 25},
		{GameID: 2, TeamID: 1, Goals: 2, ShotsAgainst: 31},
		{GameID: 1, TeamID: 2, Goals: 2, ShotsAgainst: 40},
		{GameID: 1, TeamID: 9, Goals: 9, ShotsAgainst: 9},
	}

	got := Standings(testTeams, nil, stats, StandingsOptions{})
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].GF)
	assert.Equal(t, 56, got[0].GA)
	assert.Equal(t, 2, got[1].GF)
	assert.Equal(t, 40, got[1].GA)
}

func TestStandings_SortedByPointsStable(t *testing.T) {
	teams := append([]team.Team{}, testTeams...)
	teams = append(teams, team.Team{ID: 3, Name: "Valley Owls", Short: "VAL"})
	games := []game.Game{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 3, HomeScore: 0, AwayScore: 2, Status: game.StatusFinal},
		{ID: 2, HomeTeamID: 2, AwayTeamID: 1, HomeScore: 2, AwayScore: 2, Status: game.StatusFinal},
		{ID: 3, HomeTeamID: 2, AwayTeamID: 3, HomeScore: 1, AwayScore: 1, Status: game.StatusFinal},
		{ID: 4, HomeTeamID: 5, AwayTeamID: 6, HomeScore: 1, AwayScore: 0, Status: game.StatusFinal},
	}

	got := Standings(teams, games, nil, StandingsOptions{})
	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].TeamID)
	assert.Equal(t, 3, got[0].Points())
	assert.Equal(t, int64(2), got[1].TeamID)
	assert.Equal(t, 2, got[1].Points())
	assert.Equal(t, int64(1), got[2].TeamID)
	assert.Equal(t, 1, got[2].Points())
}

func TestStandings_NoTeams(t *testing.T) {
	got := Standings(nil, []game.Game{{HomeTeamID: 1, AwayTeamID: 2}}, nil, StandingsOptions{})
	assert.Empty(t, got)
}
