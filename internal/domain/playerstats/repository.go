package playerstats

import "context"

// Repository stores per-game skater and goalie rows. Rows are append-only.
type Repository interface {
	CreateSkaterStat(ctx context.Context, stat SkaterStat) (SkaterStat, error)
	CreateGoalieStat(ctx context.Context, stat GoalieStat) (GoalieStat, error)
	ListSkaterStats(ctx context.Context, filter Filter) ([]SkaterStat, error)
	ListGoalieStats(ctx context.Context, filter Filter) ([]GoalieStat, error)
}
