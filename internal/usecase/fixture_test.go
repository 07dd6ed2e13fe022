package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-stats/internal/domain/boxscore"
	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

type leagueFixture struct {
	teams     *memory.TeamRepository
	players   *memory.PlayerRepository
	games     *memory.GameRepository
	stats     *memory.PlayerStatsRepository
	teamStats *memory.TeamStatsRepository
}

// newLeagueFixture seeds two teams (1, 2), three players (1 skater and
// 2 skater on team 1, 3 goalie on team 2) and one scheduled game (1).
func newLeagueFixture(t *testing.T) leagueFixture {
	t.Helper()

	home, away := int64(1), int64(2)
	f := leagueFixture{
		teams: memory.NewTeamRepository([]team.Team{
			{ID: 1, Name: "Harbour Herons", Short: "HHR"},
			{ID: 2, Name: "Ridge Ravens", Short: "RRV"},
		}),
		players: memory.NewPlayerRepository([]player.Player{
			{ID: 1, Handle: "p1", Position: "C", TeamID: &home},
			{ID: 2, Handle: "p2", Position: "D", TeamID: &home},
			{ID: 3, Handle: "g1", Position: player.PositionGoalie, TeamID: &away},
		}),
		games:     memory.NewGameRepository(nil),
		stats:     memory.NewPlayerStatsRepository(),
		teamStats: memory.NewTeamStatsRepository(),
	}

	_, err := f.games.Create(context.Background(), game.Game{
		Date:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		HomeTeamID: 1,
		AwayTeamID: 2,
	})
	require.NoError(t, err)
	return f
}

func (f leagueFixture) statService() *StatService {
	return f.statServiceWithTx(memory.NewStatTxRunner(f.stats, f.teamStats))
}

func (f leagueFixture) statServiceWithTx(runner boxscore.TxRunner) *StatService {
	return NewStatService(f.teams, f.players, f.games, f.stats, f.teamStats, runner, 2)
}

func (f leagueFixture) seasonService(opts SeasonOptions, recorder SeasonQueryRecorder) *SeasonService {
	return NewSeasonService(f.teams, f.players, f.games, f.stats, f.teamStats, opts, recorder)
}
