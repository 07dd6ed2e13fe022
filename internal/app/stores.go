package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-stats/internal/config"
	"github.com/riskibarqy/hockey-stats/internal/domain/boxscore"
	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/seed"
	"github.com/riskibarqy/hockey-stats/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
)

// stores bundles the repositories handed to the use cases.
type stores struct {
	teams     team.Repository
	players   player.Repository
	games     game.Repository
	stats     playerstats.Repository
	teamStats teamstats.Repository
	statTx    boxscore.TxRunner
	close     func() error
}

func openStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgresStores(ctx, cfg, logger)
	default:
		return newMemoryStores(cfg, logger), nil
	}
}

func newMemoryStores(cfg config.Config, logger *logging.Logger) stores {
	var (
		teams   []team.Team
		players []player.Player
	)
	if cfg.SeedDemo {
		teams = seed.Teams()
		players = seed.Players()
	}
	logger.Info("using in-memory store", "seed_demo", cfg.SeedDemo, "teams", len(teams), "players", len(players))

	stats := memory.NewPlayerStatsRepository()
	teamStats := memory.NewTeamStatsRepository()
	return stores{
		teams:     memory.NewTeamRepository(teams),
		players:   memory.NewPlayerRepository(players),
		games:     memory.NewGameRepository(nil),
		stats:     stats,
		teamStats: teamStats,
		statTx:    memory.NewStatTxRunner(stats, teamStats),
		close:     func() error { return nil },
	}
}

func openPostgresStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (stores, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return stores{}, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return stores{}, fmt.Errorf("ping postgres: %w", err)
	}
	if cfg.SeedDemo {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return stores{}, fmt.Errorf("seed postgres: %w", err)
		}
	}
	logger.Info("using postgres store", "db", dbNameFromURL(dbURL), "max_open_conns", cfg.DBMaxOpenConns, "seed_demo", cfg.SeedDemo)

	return postgresStores(db), nil
}

func postgresStores(db *sqlx.DB) stores {
	return stores{
		teams:     postgres.NewTeamRepository(db),
		players:   postgres.NewPlayerRepository(db),
		games:     postgres.NewGameRepository(db),
		stats:     postgres.NewPlayerStatsRepository(db),
		teamStats: postgres.NewTeamStatsRepository(db),
		statTx:    postgres.NewStatTxRunner(db),
		close:     db.Close,
	}
}
