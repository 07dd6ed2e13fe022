package season

// AwardOptions toggles award selection rules.
type AwardOptions struct {
	// NorrisPlusMinusTiebreak breaks Norris ties on season plus-minus. When
	// false, Norris ranks on points alone.
	NorrisPlusMinusTiebreak bool
}

// VezinaCandidate is a goalie eligible for the Vezina.
type VezinaCandidate struct {
	PlayerID int64
	Handle   string
	TeamID   *int64
	SavePct  float64
	Wins     int
}

// MVP is the points leader.
func MVP(totals []PlayerTotals) (PlayerTotals, bool) {
	return top(totals, func(a, b PlayerTotals) bool {
		return a.Skater.Points > b.Skater.Points
	})
}

// Calder uses the same selection as MVP; no rookie filter is applied.
func Calder(totals []PlayerTotals) (PlayerTotals, bool) {
	return MVP(totals)
}

func Norris(totals []PlayerTotals, opts AwardOptions) (PlayerTotals, bool) {
	if !opts.NorrisPlusMinusTiebreak {
		return MVP(totals)
	}
	return top(totals, func(a, b PlayerTotals) bool {
		if a.Skater.Points != b.Skater.Points {
			return a.Skater.Points > b.Skater.Points
		}
		return a.Skater.PlusMinus > b.Skater.PlusMinus
	})
}

// Vezina picks the best save percentage among goalies that faced shots and
// played, breaking ties on wins.
func Vezina(totals []PlayerTotals) (VezinaCandidate, bool) {
	var (
		best  VezinaCandidate
		found bool
	)
	for _, t := range totals {
		g := t.Goalie
		if g.ShotsAgainst <= 0 || g.GP <= 0 {
			continue
		}
		c := VezinaCandidate{
			PlayerID: t.PlayerID,
			Handle:   t.Handle,
			TeamID:   t.TeamID,
			SavePct:  SavePct(g.Saves, g.GoalsAgainst),
			Wins:     g.Wins,
		}
		if !found || c.SavePct > best.SavePct || (c.SavePct == best.SavePct && c.Wins > best.Wins) {
			best = c
			found = true
		}
	}
	return best, found
}

// top returns the first element no other element beats.
func top(totals []PlayerTotals, better func(a, b PlayerTotals) bool) (PlayerTotals, bool) {
	if len(totals) == 0 {
		return PlayerTotals{}, false
	}
	best := totals[0]
	for _, t := range totals[1:] {
		if better(t, best) {
			best = t
		}
	}
	return best, true
}
