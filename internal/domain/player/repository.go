package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) (Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	List(ctx context.Context, filter Filter) ([]Player, error)
}
