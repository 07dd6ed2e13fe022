package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/season"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	mu    sync.Mutex
	kinds map[string]int
}

func (r *countingRecorder) ObserveSeasonQuery(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.kinds == nil {
		r.kinds = make(map[string]int)
	}
	r.kinds[kind]++
}

type failingStatsRepository struct {
	playerstats.Repository
	err error
}

func (r failingStatsRepository) ListSkaterStats(context.Context, playerstats.Filter) ([]playerstats.SkaterStat, error) {
	return nil, r.err
}

func (r failingStatsRepository) ListGoalieStats(context.Context, playerstats.Filter) ([]playerstats.GoalieStat, error) {
	return []playerstats.GoalieStat{{PlayerID: 3, GP: 1}}, nil
}

func seedSeason(t *testing.T, f leagueFixture) {
	t.Helper()
	ctx := context.Background()

	for _, row := range []playerstats.SkaterStat{
		{GameID: 1, PlayerID: 1, Goals: 1, Assists: 1, Shots: 4},
		{GameID: 1, PlayerID: 2, Goals: 2, Assists: 0, Shots: 3, PlusMinus: 2},
	} {
		_, err := f.stats.CreateSkaterStat(ctx, row)
		require.NoError(t, err)
	}
	_, err := f.stats.CreateGoalieStat(ctx, playerstats.GoalieStat{GameID: 1, PlayerID: 3, GP: 1, Wins: 1, ShotsAgainst: 30, Saves: 27, GoalsAgainst: 3})
	require.NoError(t, err)
}

func TestSeasonService_PlayerTotals(t *testing.T) {
	f := newLeagueFixture(t)
	seedSeason(t, f)
	recorder := &countingRecorder{}
	service := f.seasonService(SeasonOptions{}, recorder)

	totals, err := service.PlayerTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, 2, totals[0].Skater.Points)
	assert.Equal(t, 2, totals[1].Skater.Goals)
	assert.Equal(t, 27, totals[2].Goalie.Saves)
	assert.Equal(t, 1, recorder.kinds["totals"])
}

func TestSeasonService_Leaders(t *testing.T) {
	f := newLeagueFixture(t)
	seedSeason(t, f)
	service := f.seasonService(SeasonOptions{LeadersMaxLimit: 2}, nil)
	ctx := context.Background()

	leaders, err := service.Leaders(ctx, "goals", 0)
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	assert.Equal(t, int64(2), leaders[0].PlayerID)

	leaders, err = service.Leaders(ctx, " SavePct ", 5)
	require.NoError(t, err)
	require.Len(t, leaders, 1)
	require.NotNil(t, leaders[0].SavePct)
	assert.InDelta(t, 0.9, *leaders[0].SavePct, 1e-9)

	_, err = service.Leaders(ctx, "hits", 5)
	assert.ErrorIs(t, err, season.ErrUnknownMetric)
}

func TestSeasonService_StoreFailureReturnsNoPartialResult(t *testing.T) {
	f := newLeagueFixture(t)
	storeErr := errors.New("store offline")
	service := NewSeasonService(f.teams, f.players, f.games, failingStatsRepository{err: storeErr}, f.teamStats, SeasonOptions{}, nil)

	totals, err := service.PlayerTotals(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, totals)

	_, ok, err := service.AwardVezina(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, ok)
}

func TestSeasonService_Standings(t *testing.T) {
	f := newLeagueFixture(t)
	ctx := context.Background()
	_, err := f.games.RecordScore(ctx, 1, 3, 2)
	require.NoError(t, err)
	for _, row := range []teamstats.TeamStat{
		{GameID: 1, TeamID: 1, Goals: 3, ShotsAgainst: 28},
		{GameID: 1, TeamID: 2, Goals: 2, ShotsAgainst: 31},
	} {
		_, err := f.teamStats.Create(ctx, row)
		require.NoError(t, err)
	}

	rows, err := f.seasonService(SeasonOptions{}, nil).Standings(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].TeamID)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 2, rows[0].Points())
	assert.Equal(t, 3, rows[0].GF)
	assert.Equal(t, 28, rows[0].GA)
	assert.Equal(t, 1, rows[1].Losses)
}

func TestSeasonService_StandingsExcludeUnplayed(t *testing.T) {
	f := newLeagueFixture(t)
	ctx := context.Background()

	rows, err := f.seasonService(SeasonOptions{}, nil).Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].OT)
	assert.Equal(t, 1, rows[1].OT)

	rows, err = f.seasonService(SeasonOptions{Standings: season.StandingsOptions{ExcludeUnplayed: true}}, nil).Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, rows[0].OT)
	assert.Equal(t, 0, rows[1].OT)
}

func TestSeasonService_Awards(t *testing.T) {
	f := newLeagueFixture(t)
	ctx := context.Background()
	service := f.seasonService(SeasonOptions{Awards: season.AwardOptions{NorrisPlusMinusTiebreak: true}}, nil)

	empty := NewSeasonService(
		memory.NewTeamRepository(nil),
		memory.NewPlayerRepository(nil),
		memory.NewGameRepository(nil),
		memory.NewPlayerStatsRepository(),
		memory.NewTeamStatsRepository(),
		SeasonOptions{},
		nil,
	)
	_, ok, err := empty.AwardMVP(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = empty.AwardVezina(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	seedSeason(t, f)

	mvp, ok, err := service.AwardMVP(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), mvp.PlayerID)

	calder, ok, err := service.AwardCalder(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mvp.PlayerID, calder.PlayerID)

	norris, ok, err := service.AwardNorris(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), norris.PlayerID)

	vezina, ok, err := service.AwardVezina(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(3), vezina.PlayerID)
	assert.InDelta(t, 0.9, vezina.SavePct, 1e-9)
}

func TestSeasonService_PlayerSeason(t *testing.T) {
	f := newLeagueFixture(t)
	seedSeason(t, f)
	service := f.seasonService(SeasonOptions{}, nil)

	got, err := service.PlayerSeason(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "p2", got.Handle)
	assert.Equal(t, 2, got.Skater.Goals)
	assert.Equal(t, 2, got.Skater.PlusMinus)

	_, err = service.PlayerSeason(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
