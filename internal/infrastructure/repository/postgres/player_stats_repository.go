package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	qb "github.com/riskibarqy/hockey-stats/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db sqlx.ExtContext
}

func NewPlayerStatsRepository(db sqlx.ExtContext) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) CreateSkaterStat(ctx context.Context, stat playerstats.SkaterStat) (playerstats.SkaterStat, error) {
	query, args, err := qb.InsertModel("skater_stats", skaterStatToRow(stat), "id")
	if err != nil {
		return playerstats.SkaterStat{}, fmt.Errorf("build insert skater stat query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &stat.ID, query, args...); err != nil {
		return playerstats.SkaterStat{}, fmt.Errorf("insert skater stat: %w", err)
	}
	return stat, nil
}

func (r *PlayerStatsRepository) CreateGoalieStat(ctx context.Context, stat playerstats.GoalieStat) (playerstats.GoalieStat, error) {
	query, args, err := qb.InsertModel("goalie_stats", goalieStatToRow(stat), "id")
	if err != nil {
		return playerstats.GoalieStat{}, fmt.Errorf("build insert goalie stat query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &stat.ID, query, args...); err != nil {
		return playerstats.GoalieStat{}, fmt.Errorf("insert goalie stat: %w", err)
	}
	return stat, nil
}

func (r *PlayerStatsRepository) ListSkaterStats(ctx context.Context, filter playerstats.Filter) ([]playerstats.SkaterStat, error) {
	query, args, err := qb.Select(qb.Columns(skaterStatTableModel{})...).From("skater_stats").
		Where(
			qb.EqIfSet("player_id", filter.PlayerID),
			qb.EqIfSet("game_id", filter.GameID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list skater stats query: %w", err)
	}

	var rows []skaterStatTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select skater stats: %w", err)
	}

	out := make([]playerstats.SkaterStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListGoalieStats(ctx context.Context, filter playerstats.Filter) ([]playerstats.GoalieStat, error) {
	query, args, err := qb.Select(qb.Columns(goalieStatTableModel{})...).From("goalie_stats").
		Where(
			qb.EqIfSet("player_id", filter.PlayerID),
			qb.EqIfSet("game_id", filter.GameID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goalie stats query: %w", err)
	}

	var rows []goalieStatTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goalie stats: %w", err)
	}

	out := make([]playerstats.GoalieStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
