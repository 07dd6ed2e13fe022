package postgres

import (
	"database/sql"

	"github.com/riskibarqy/hockey-stats/internal/domain/player"
)

type playerTableModel struct {
	ID       int64         `db:"id,readonly"`
	Handle   string        `db:"handle"`
	Position string        `db:"position"`
	Number   sql.NullInt32 `db:"number"`
	TeamID   sql.NullInt64 `db:"team_id"`
}

func playerToRow(item player.Player) playerTableModel {
	return playerTableModel{
		Handle:   item.Handle,
		Position: string(item.Position),
		Number:   intPtrToNull(item.Number),
		TeamID:   int64PtrToNull(item.TeamID),
	}
}

func (row playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:       row.ID,
		Handle:   row.Handle,
		Position: player.Position(row.Position),
		Number:   nullInt32ToPtr(row.Number),
		TeamID:   nullInt64ToPtr(row.TeamID),
	}
}
