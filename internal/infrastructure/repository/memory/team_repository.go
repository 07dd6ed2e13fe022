package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hockey-stats/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	teams  []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{}
	for _, item := range teams {
		r.insertLocked(item)
	}

	return r
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(item), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)
	return out, nil
}

func (r *TeamRepository) insertLocked(item team.Team) team.Team {
	item.ID = assignID(&r.nextID, item.ID)
	r.teams = append(r.teams, item)
	return item
}

// assignID hands out the next serial id, honouring an explicit id that is
// ahead of the counter (seed data).
func assignID(next *int64, requested int64) int64 {
	if requested > *next {
		*next = requested
		return requested
	}
	*next = *next + 1
	return *next
}
