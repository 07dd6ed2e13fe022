package team

import "fmt"

// Team is a club competing in the league.
type Team struct {
	ID    int64
	Name  string
	Short string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Short == "" {
		return fmt.Errorf("team short code is required")
	}

	return nil
}
