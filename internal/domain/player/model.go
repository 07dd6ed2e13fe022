package player

import (
	"fmt"
	"strings"
)

// Position is the free-form roster position of a player ("C", "LW", "D", "G", ...).
type Position string

const PositionGoalie Position = "G"

func (p Position) IsGoalie() bool {
	switch strings.ToUpper(strings.TrimSpace(string(p))) {
	case "G", "GK", "GOALIE", "GOALTENDER":
		return true
	default:
		return false
	}
}

// Player is a rostered skater or goalie. TeamID is nil for unassigned players.
type Player struct {
	ID       int64
	Handle   string
	Position Position
	Number   *int
	TeamID   *int64
}

func (p Player) Validate() error {
	if p.Handle == "" {
		return fmt.Errorf("player handle is required")
	}
	if p.Position == "" {
		return fmt.Errorf("player position is required")
	}
	if p.Number != nil && *p.Number < 0 {
		return fmt.Errorf("player number must be >= 0")
	}

	return nil
}

// Filter narrows List results. A nil field means no restriction.
type Filter struct {
	TeamID *int64
}
