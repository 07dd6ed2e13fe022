package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/seed"
)

// BootstrapSeed loads the demo roster into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range seed.Teams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name, short)
VALUES (:id, :name, :short)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":    t.ID,
			"name":  t.Name,
			"short": t.Short,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %d query: %w", t.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
	}

	for _, p := range seed.Players() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, handle, position, number, team_id)
VALUES (:id, :handle, :position, :number, :team_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":       p.ID,
			"handle":   p.Handle,
			"position": string(p.Position),
			"number":   intPtrToNull(p.Number),
			"team_id":  int64PtrToNull(p.TeamID),
		})
		if err != nil {
			return fmt.Errorf("bind seed player %d query: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed player %d: %w", p.ID, err)
		}
	}

	for _, table := range []string{"teams", "players"} {
		stmt := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))`, table)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("advance %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
