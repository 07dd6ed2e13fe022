package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
	qb "github.com/riskibarqy/hockey-stats/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db sqlx.ExtContext
}

func NewTeamStatsRepository(db sqlx.ExtContext) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) Create(ctx context.Context, stat teamstats.TeamStat) (teamstats.TeamStat, error) {
	query, args, err := qb.InsertModel("team_stats", teamStatToRow(stat), "id")
	if err != nil {
		return teamstats.TeamStat{}, fmt.Errorf("build insert team stat query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &stat.ID, query, args...); err != nil {
		return teamstats.TeamStat{}, fmt.Errorf("insert team stat: %w", err)
	}
	return stat, nil
}

func (r *TeamStatsRepository) List(ctx context.Context, filter teamstats.Filter) ([]teamstats.TeamStat, error) {
	query, args, err := qb.Select(qb.Columns(teamStatTableModel{})...).From("team_stats").
		Where(
			qb.EqIfSet("team_id", filter.TeamID),
			qb.EqIfSet("game_id", filter.GameID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team stats query: %w", err)
	}

	var rows []teamStatTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team stats: %w", err)
	}

	out := make([]teamstats.TeamStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
