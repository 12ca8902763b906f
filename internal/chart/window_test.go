package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// yearlySeries builds one point per year from start to end inclusive.
func yearlySeries(startYear, endYear int) []models.HistoricalPoint {
	var out []models.HistoricalPoint
	for y := startYear; y <= endYear; y++ {
		out = append(out, models.HistoricalPoint{
			Date:  models.NewDate(y, time.June, 15),
			Close: float64(y),
			Price: float64(y),
		})
	}
	return out
}

func TestFilterWindow_AllIsIdentity(t *testing.T) {
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	series := yearlySeries(2005, 2025)

	got := FilterWindow(series, models.WindowAll, now)
	assert.Equal(t, series, got)
}

func TestFilterWindow_Cutoffs(t *testing.T) {
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	series := yearlySeries(2005, 2025)

	cases := []struct {
		name      string
		window    models.Window
		wantFirst int // first year kept
	}{
		{"one year", models.WindowOneYear, 2025},
		{"five years", models.WindowFiveYear, 2021},
		{"ten years", models.WindowTenYear, 2016},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterWindow(series, tc.window, now)
			require.NotEmpty(t, got)
			assert.Equal(t, float64(tc.wantFirst), got[0].Close)
			assert.Equal(t, float64(2025), got[len(got)-1].Close)

			// Result must be a contiguous suffix of the input.
			assert.Equal(t, series[len(series)-len(got):], got)
		})
	}
}

func TestFilterWindow_CutoffIsInclusive(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	series := yearlySeries(2020, 2025)

	// A point dated exactly one year before now stays in the one-year view.
	got := FilterWindow(series, models.WindowOneYear, now)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-06-15", got[0].Date.String())
}

func TestFilterWindow_Empty(t *testing.T) {
	now := time.Now()
	assert.Empty(t, FilterWindow(nil, models.WindowOneYear, now))
	assert.Empty(t, FilterWindow([]models.HistoricalPoint{}, models.WindowAll, now))
}

func TestFilterWindow_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	series := yearlySeries(2010, 2025)
	snapshot := append([]models.HistoricalPoint(nil), series...)

	_ = FilterWindow(series, models.WindowFiveYear, now)
	assert.Equal(t, snapshot, series)
}
