package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hockey-stats/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{}
	for _, item := range players {
		r.insertLocked(item)
	}

	return r
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clonePlayer(r.insertLocked(item)), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players {
		if item.ID == playerID {
			return clonePlayer(item), true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if filter.TeamID != nil && (item.TeamID == nil || *item.TeamID != *filter.TeamID) {
			continue
		}
		out = append(out, clonePlayer(item))
	}

	return out, nil
}

func (r *PlayerRepository) insertLocked(item player.Player) player.Player {
	item = clonePlayer(item)
	item.ID = assignID(&r.nextID, item.ID)
	r.players = append(r.players, item)
	return item
}

// clonePlayer detaches the optional pointer fields so callers cannot mutate
// stored rows.
func clonePlayer(item player.Player) player.Player {
	if item.Number != nil {
		v := *item.Number
		item.Number = &v
	}
	if item.TeamID != nil {
		v := *item.TeamID
		item.TeamID = &v
	}
	return item
}
