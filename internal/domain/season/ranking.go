package season

import (
	"sort"

	crerr "github.com/cockroachdb/errors"
)

var ErrUnknownMetric = crerr.New("unknown metric")

const DefaultLeadersLimit = 20

// Metric is a leaderboard sort key.
type Metric int

const (
	MetricGoals Metric = iota + 1
	MetricPoints
	MetricShots
	MetricSavePct
)

var metricByName = map[string]Metric{
	"goals":   MetricGoals,
	"points":  MetricPoints,
	"shots":   MetricShots,
	"savepct": MetricSavePct,
}

func ParseMetric(name string) (Metric, error) {
	m, ok := metricByName[name]
	if !ok {
		return 0, crerr.Wrapf(ErrUnknownMetric, "%q (supported: goals, points, shots, savepct)", name)
	}
	return m, nil
}

func (m Metric) String() string {
	switch m {
	case MetricGoals:
		return "goals"
	case MetricPoints:
		return "points"
	case MetricShots:
		return "shots"
	case MetricSavePct:
		return "savepct"
	default:
		return "unknown"
	}
}

// Leader is one leaderboard row. SavePct is only set for the savepct board.
type Leader struct {
	PlayerTotals
	SavePct *float64
}

// Leaders ranks totals by metric, descending. Ties keep aggregation order.
func Leaders(totals []PlayerTotals, metric Metric, limit int) ([]Leader, error) {
	if limit <= 0 {
		limit = DefaultLeadersLimit
	}

	var (
		rows  []Leader
		value func(Leader) float64
	)
	switch metric {
	case MetricGoals:
		rows = allLeaders(totals)
		value = func(l Leader) float64 { return float64(l.Skater.Goals) }
	case MetricPoints:
		rows = allLeaders(totals)
		value = func(l Leader) float64 { return float64(l.Skater.Points) }
	case MetricShots:
		rows = allLeaders(totals)
		value = func(l Leader) float64 { return float64(l.Skater.Shots) }
	case MetricSavePct:
		rows = make([]Leader, 0, len(totals))
		for _, t := range totals {
			if t.Goalie.ShotsAgainst <= 0 {
				continue
			}
			pct := SavePct(t.Goalie.Saves, t.Goalie.GoalsAgainst)
			rows = append(rows, Leader{PlayerTotals: t, SavePct: &pct})
		}
		value = func(l Leader) float64 { return *l.SavePct }
	default:
		return nil, crerr.Wrapf(ErrUnknownMetric, "metric=%d", int(metric))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return value(rows[i]) > value(rows[j])
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func allLeaders(totals []PlayerTotals) []Leader {
	out := make([]Leader, 0, len(totals))
	for _, t := range totals {
		out = append(out, Leader{PlayerTotals: t})
	}
	return out
}
