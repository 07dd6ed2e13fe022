package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu           sync.RWMutex
	nextSkaterID int64
	nextGoalieID int64
	skaters      []playerstats.SkaterStat
	goalies      []playerstats.GoalieStat
}

func NewPlayerStatsRepository() *PlayerStatsRepository {
	return &PlayerStatsRepository{}
}

func (r *PlayerStatsRepository) CreateSkaterStat(_ context.Context, stat playerstats.SkaterStat) (playerstats.SkaterStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createSkater(stat), nil
}

func (r *PlayerStatsRepository) createSkater(stat playerstats.SkaterStat) playerstats.SkaterStat {
	stat.ID = assignID(&r.nextSkaterID, stat.ID)
	r.skaters = append(r.skaters, stat)
	return stat
}

func (r *PlayerStatsRepository) CreateGoalieStat(_ context.Context, stat playerstats.GoalieStat) (playerstats.GoalieStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createGoalie(stat), nil
}

func (r *PlayerStatsRepository) createGoalie(stat playerstats.GoalieStat) playerstats.GoalieStat {
	stat.ID = assignID(&r.nextGoalieID, stat.ID)
	r.goalies = append(r.goalies, stat)
	return stat
}

func (r *PlayerStatsRepository) ListSkaterStats(_ context.Context, filter playerstats.Filter) ([]playerstats.SkaterStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listSkaters(filter), nil
}

func (r *PlayerStatsRepository) listSkaters(filter playerstats.Filter) []playerstats.SkaterStat {
	out := make([]playerstats.SkaterStat, 0, len(r.skaters))
	for _, item := range r.skaters {
		if filter.Match(item.PlayerID, item.GameID) {
			out = append(out, item)
		}
	}
	return out
}

func (r *PlayerStatsRepository) ListGoalieStats(_ context.Context, filter playerstats.Filter) ([]playerstats.GoalieStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listGoalies(filter), nil
}

func (r *PlayerStatsRepository) listGoalies(filter playerstats.Filter) []playerstats.GoalieStat {
	out := make([]playerstats.GoalieStat, 0, len(r.goalies))
	for _, item := range r.goalies {
		if filter.Match(item.PlayerID, item.GameID) {
			out = append(out, item)
		}
	}
	return out
}
