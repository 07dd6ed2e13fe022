package postgres

import "github.com/riskibarqy/hockey-stats/internal/domain/team"

type teamTableModel struct {
	ID    int64  `db:"id,readonly"`
	Name  string `db:"name"`
	Short string `db:"short"`
}

func teamToRow(item team.Team) teamTableModel {
	return teamTableModel{Name: item.Name, Short: item.Short}
}

func (row teamTableModel) toDomain() team.Team {
	return team.Team{ID: row.ID, Name: row.Name, Short: row.Short}
}
