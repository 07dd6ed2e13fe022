package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []teamstats.TeamStat
}

func NewTeamStatsRepository() *TeamStatsRepository {
	return &TeamStatsRepository{}
}

func (r *TeamStatsRepository) Create(_ context.Context, stat teamstats.TeamStat) (teamstats.TeamStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.create(stat), nil
}

func (r *TeamStatsRepository) create(stat teamstats.TeamStat) teamstats.TeamStat {
	stat.ID = assignID(&r.nextID, stat.ID)
	r.rows = append(r.rows, stat)
	return stat
}

func (r *TeamStatsRepository) List(_ context.Context, filter teamstats.Filter) ([]teamstats.TeamStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(filter), nil
}

func (r *TeamStatsRepository) list(filter teamstats.Filter) []teamstats.TeamStat {
	out := make([]teamstats.TeamStat, 0, len(r.rows))
	for _, item := range r.rows {
		if filter.Match(item.TeamID, item.GameID) {
			out = append(out, item)
		}
	}
	return out
}
