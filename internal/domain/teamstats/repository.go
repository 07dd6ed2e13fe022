package teamstats

import "context"

type Repository interface {
	Create(ctx context.Context, stat TeamStat) (TeamStat, error)
	List(ctx context.Context, filter Filter) ([]TeamStat, error)
}
