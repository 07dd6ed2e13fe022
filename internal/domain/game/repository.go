package game

import "context"

// Repository exposes game persistence operations.
type Repository interface {
	Create(ctx context.Context, item Game) (Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	List(ctx context.Context) ([]Game, error)
	RecordScore(ctx context.Context, gameID int64, homeScore, awayScore int) (Game, error)
	SetScreenshot(ctx context.Context, gameID int64, path string) (Game, error)
}
