package memory

import (
	"context"

	"github.com/riskibarqy/hockey-stats/internal/domain/boxscore"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
)

// StatTxRunner holds both stat locks for the duration of a transaction and
// truncates back to the starting point when the callback fails. Locks are
// always taken player stats first.
type StatTxRunner struct {
	stats     *PlayerStatsRepository
	teamStats *TeamStatsRepository
}

var _ boxscore.TxRunner = (*StatTxRunner)(nil)

func NewStatTxRunner(stats *PlayerStatsRepository, teamStats *TeamStatsRepository) *StatTxRunner {
	return &StatTxRunner{stats: stats, teamStats: teamStats}
}

type statMark struct {
	skaters      int
	goalies      int
	teamRows     int
	nextSkaterID int64
	nextGoalieID int64
	nextTeamID   int64
}

func (r *StatTxRunner) RunInTx(ctx context.Context, fn boxscore.TxFunc) error {
	r.stats.mu.Lock()
	defer r.stats.mu.Unlock()
	r.teamStats.mu.Lock()
	defer r.teamStats.mu.Unlock()

	mark := statMark{
		skaters:      len(r.stats.skaters),
		goalies:      len(r.stats.goalies),
		teamRows:     len(r.teamStats.rows),
		nextSkaterID: r.stats.nextSkaterID,
		nextGoalieID: r.stats.nextGoalieID,
		nextTeamID:   r.teamStats.nextID,
	}

	err := fn(ctx, playerStatsTx{repo: r.stats}, teamStatsTx{repo: r.teamStats})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		r.stats.skaters = r.stats.skaters[:mark.skaters]
		r.stats.goalies = r.stats.goalies[:mark.goalies]
		r.teamStats.rows = r.teamStats.rows[:mark.teamRows]
		r.stats.nextSkaterID = mark.nextSkaterID
		r.stats.nextGoalieID = mark.nextGoalieID
		r.teamStats.nextID = mark.nextTeamID
		return err
	}
	return nil
}

// playerStatsTx and teamStatsTx run with the runner's locks already held.
type playerStatsTx struct {
	repo *PlayerStatsRepository
}

func (t playerStatsTx) CreateSkaterStat(_ context.Context, stat playerstats.SkaterStat) (playerstats.SkaterStat, error) {
	return t.repo.createSkater(stat), nil
}

func (t playerStatsTx) CreateGoalieStat(_ context.Context, stat playerstats.GoalieStat) (playerstats.GoalieStat, error) {
	return t.repo.createGoalie(stat), nil
}

func (t playerStatsTx) ListSkaterStats(_ context.Context, filter playerstats.Filter) ([]playerstats.SkaterStat, error) {
	return t.repo.listSkaters(filter), nil
}

func (t playerStatsTx) ListGoalieStats(_ context.Context, filter playerstats.Filter) ([]playerstats.GoalieStat, error) {
	return t.repo.listGoalies(filter), nil
}

type teamStatsTx struct {
	repo *TeamStatsRepository
}

func (t teamStatsTx) Create(_ context.Context, stat teamstats.TeamStat) (teamstats.TeamStat, error) {
	return t.repo.create(stat), nil
}

func (t teamStatsTx) List(_ context.Context, filter teamstats.Filter) ([]teamstats.TeamStat, error) {
	return t.repo.list(filter), nil
}
