package boxscore

import (
	"context"

	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
)

// TxFunc writes through the repositories it is handed. Rows it creates are
// committed only when it returns nil.
type TxFunc func(ctx context.Context, stats playerstats.Repository, teamStats teamstats.Repository) error

// TxRunner groups player and team stat writes for one game sheet.
type TxRunner interface {
	RunInTx(ctx context.Context, fn TxFunc) error
}
