package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	nextID int64
	games  []game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	r := &GameRepository{}
	for _, item := range games {
		r.insertLocked(item)
	}

	return r
}

func (r *GameRepository) Create(_ context.Context, item game.Game) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(item), nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexLocked(gameID)
	if idx < 0 {
		return game.Game{}, false, nil
	}
	return r.games[idx], true, nil
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	out = append(out, r.games...)
	return out, nil
}

func (r *GameRepository) RecordScore(_ context.Context, gameID int64, homeScore, awayScore int) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(gameID)
	if idx < 0 {
		return game.Game{}, fmt.Errorf("record score: game %d not found", gameID)
	}
	r.games[idx].HomeScore = homeScore
	r.games[idx].AwayScore = awayScore
	r.games[idx].Status = game.StatusFinal
	return r.games[idx], nil
}

func (r *GameRepository) SetScreenshot(_ context.Context, gameID int64, path string) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(gameID)
	if idx < 0 {
		return game.Game{}, fmt.Errorf("set screenshot: game %d not found", gameID)
	}
	r.games[idx].ScreenshotPath = path
	return r.games[idx], nil
}

func (r *GameRepository) insertLocked(item game.Game) game.Game {
	item.ID = assignID(&r.nextID, item.ID)
	item.Status = game.NormalizeStatus(item.Status)
	r.games = append(r.games, item)
	return item
}

func (r *GameRepository) indexLocked(gameID int64) int {
	for i := range r.games {
		if r.games[i].ID == gameID {
			return i
		}
	}
	return -1
}
