package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	qb "github.com/riskibarqy/hockey-stats/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) (game.Game, error) {
	row := gameToRow(item)
	query, args, err := qb.InsertModel("games", row, "id")
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	if err := r.db.GetContext(ctx, &row.ID, query, args...); err != nil {
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	return row.toDomain(), nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, args, err := qb.Select(qb.Columns(gameTableModel{})...).From("games").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game %d: %w", gameID, err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query, args, err := qb.Select(qb.Columns(gameTableModel{})...).From("games").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) RecordScore(ctx context.Context, gameID int64, homeScore, awayScore int) (game.Game, error) {
	query, args, err := qb.Update("games").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Set("status", game.StatusFinal).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", gameID)).
		Returning(qb.Columns(gameTableModel{})...).
		ToSQL()
	if err != nil {
		return game.Game{}, fmt.Errorf("build record score query: %w", err)
	}

	return r.updateReturning(ctx, gameID, query, args)
}

func (r *GameRepository) SetScreenshot(ctx context.Context, gameID int64, path string) (game.Game, error) {
	query, args, err := qb.Update("games").
		Set("screenshot_path", path).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", gameID)).
		Returning(qb.Columns(gameTableModel{})...).
		ToSQL()
	if err != nil {
		return game.Game{}, fmt.Errorf("build set screenshot query: %w", err)
	}

	return r.updateReturning(ctx, gameID, query, args)
}

func (r *GameRepository) updateReturning(ctx context.Context, gameID int64, query string, args []any) (game.Game, error) {
	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, fmt.Errorf("update game %d: not found", gameID)
		}
		return game.Game{}, fmt.Errorf("update game %d: %w", gameID, err)
	}
	return row.toDomain(), nil
}
