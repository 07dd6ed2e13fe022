package seed

import (
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
)

// Teams is the demo roster loaded when SEED_DEMO is enabled. Both store
// implementations load the same rows, ids included.
func Teams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Harbour Herons", Short: "HHR"},
		{ID: 2, Name: "Northside Narwhals", Short: "NSN"},
		{ID: 3, Name: "Lakeview Lynx", Short: "LVL"},
		{ID: 4, Name: "Ridge Ravens", Short: "RRV"},
	}
}

func Players() []player.Player {
	return []player.Player{
		{ID: 1, Handle: "herons_c1", Position: "C", Number: intPtr(19), TeamID: int64Ptr(1)},
		{ID: 2, Handle: "herons_d1", Position: "D", Number: intPtr(4), TeamID: int64Ptr(1)},
		{ID: 3, Handle: "herons_g1", Position: player.PositionGoalie, Number: intPtr(31), TeamID: int64Ptr(1)},
		{ID: 4, Handle: "narwhals_lw", Position: "LW", Number: intPtr(11), TeamID: int64Ptr(2)},
		{ID: 5, Handle: "narwhals_d", Position: "D", Number: intPtr(44), TeamID: int64Ptr(2)},
		{ID: 6, Handle: "narwhals_g", Position: player.PositionGoalie, Number: intPtr(30), TeamID: int64Ptr(2)},
		{ID: 7, Handle: "lynx_rw", Position: "RW", Number: intPtr(88), TeamID: int64Ptr(3)},
		{ID: 8, Handle: "lynx_g", Position: player.PositionGoalie, Number: intPtr(1), TeamID: int64Ptr(3)},
		{ID: 9, Handle: "ravens_c", Position: "C", Number: intPtr(9), TeamID: int64Ptr(4)},
		{ID: 10, Handle: "ravens_g", Position: player.PositionGoalie, Number: intPtr(35), TeamID: int64Ptr(4)},
		{ID: 11, Handle: "free_agent", Position: "D"},
	}
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
