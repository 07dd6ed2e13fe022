package season

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Metric
		wantErr bool
	}{
		{name: "goals", input: "goals", want: MetricGoals},
		{name: "points", input: "points", want: MetricPoints},
		{name: "shots", input: "shots", want: MetricShots},
		{name: "savepct", input: "savepct", want: MetricSavePct},
		{name: "upper case", input: "GOALS", wantErr: true},
		{name: "padded", input: " points ", wantErr: true},
		{name: "unknown", input: "unknown_metric", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMetric(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownMetric))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.String(), metricNameFor(got))
		})
	}
}

func metricNameFor(m Metric) string {
	for name, v := range metricByName {
		if v == m {
			return name
		}
	}
	return ""
}

func TestLeaders_GoalsDescending(t *testing.T) {
	totals := []PlayerTotals{
		{PlayerID: 1, Handle: "p1", Skater: SkaterTotals{Goals: 5}},
		{PlayerID: 2, Handle: "p2", Skater: SkaterTotals{Goals: 9}},
	}

	got, err := Leaders(totals, MetricGoals, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].PlayerID)
	assert.Nil(t, got[0].SavePct)
}

func TestLeaders_StableTieBreak(t *testing.T) {
	totals := []PlayerTotals{
		{PlayerID: 1, Skater: SkaterTotals{Points: 3, Shots: 1}},
		{PlayerID: 2, Skater: SkaterTotals{Points: 5, Shots: 1}},
		{PlayerID: 3, Skater: SkaterTotals{Points: 3, Shots: 1}},
		{PlayerID: 4, Skater: SkaterTotals{Points: 5, Shots: 1}},
	}

	got, err := Leaders(totals, MetricPoints, 10)
	require.NoError(t, err)
	ids := leaderIDs(got)
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)

	got, err = Leaders(totals, MetricShots, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, leaderIDs(got))
}

func TestLeaders_DefaultLimit(t *testing.T) {
	totals := make([]PlayerTotals, 0, 30)
	for i := 0; i < 30; i++ {
		totals = append(totals, PlayerTotals{PlayerID: int64(i + 1)})
	}

	got, err := Leaders(totals, MetricGoals, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLeadersLimit)
}

func TestLeaders_SavePctExcludesGoaliesWithoutShotsAgainst(t *testing.T) {
	totals := []PlayerTotals{
		{PlayerID: 1, Handle: "skater", Skater: SkaterTotals{Goals: 4}},
		{PlayerID: 2, Handle: "backup", Goalie: GoalieTotals{GP: 3, Wins: 3}},
		{PlayerID: 3, Handle: "starter", Goalie: GoalieTotals{GP: 1, ShotsAgainst: 30, Saves: 27, GoalsAgainst: 3}},
		{PlayerID: 4, Handle: "hot", Goalie: GoalieTotals{GP: 1, ShotsAgainst: 20, Saves: 19, GoalsAgainst: 1}},
	}

	got, err := Leaders(totals, MetricSavePct, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int64{4, 3}, leaderIDs(got))
	require.NotNil(t, got[1].SavePct)
	assert.InDelta(t, 0.9, *got[1].SavePct, 1e-9)
	assert.InDelta(t, 0.95, *got[0].SavePct, 1e-9)
}

func TestLeaders_UnknownMetric(t *testing.T) {
	_, err := Leaders(nil, Metric(42), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestLeaders_EmptyTotals(t *testing.T) {
	got, err := Leaders(nil, MetricPoints, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func leaderIDs(rows []Leader) []int64 {
	out := make([]int64, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.PlayerID)
	}
	return out
}
