package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-stats/internal/domain/boxscore"
)

// StatTxRunner runs stat inserts inside one database transaction.
type StatTxRunner struct {
	db *sqlx.DB
}

var _ boxscore.TxRunner = (*StatTxRunner)(nil)

func NewStatTxRunner(db *sqlx.DB) *StatTxRunner {
	return &StatTxRunner{db: db}
}

func (r *StatTxRunner) RunInTx(ctx context.Context, fn boxscore.TxFunc) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin stat tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, NewPlayerStatsRepository(tx), NewTeamStatsRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit stat tx: %w", err)
	}
	return nil
}
