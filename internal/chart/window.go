// Package chart turns fetched price series into renderable chart state:
// windowing of the historical series and composition of the combined
// history + forecast axis. Everything in this package is pure.
package chart

import (
	"sort"
	"time"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// FilterWindow returns the subsequence of series visible under the given
// window selector, evaluated at time now.
//
// Behavior:
//   - WindowAll returns the input unchanged.
//   - Bounded windows keep every point with date >= now minus N calendar
//     years, preserving order. Since series is ordered ascending by date,
//     the result is a contiguous suffix.
//   - Empty input yields empty output.
//
// The input slice is never mutated; the result shares its backing array.
func FilterWindow(series []models.HistoricalPoint, w models.Window, now time.Time) []models.HistoricalPoint {
	if w == models.WindowAll || len(series) == 0 {
		return series
	}

	cutoff := now.AddDate(-w.Years(), 0, 0)
	first := sort.Search(len(series), func(i int) bool {
		return !series[i].Date.Before(cutoff)
	})
	return series[first:]
}
