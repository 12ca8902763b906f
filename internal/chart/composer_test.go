package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

func samplePrediction() *models.PredictionSeries {
	return &models.PredictionSeries{
		Dates: []models.Date{
			models.NewDate(2025, time.September, 1),
			models.NewDate(2025, time.September, 2),
			models.NewDate(2025, time.September, 3),
		},
		Predictions:    []float64{101, 102, 103},
		UpperBound:     []float64{111, 112, 113},
		LowerBound:     []float64{91, 92, 93},
		LastActual:     100,
		LastActualDate: models.NewDate(2025, time.August, 29),
	}
}

func TestCompose_HistoryOnly(t *testing.T) {
	history := yearlySeries(2023, 2025)

	got := Compose(history, nil)

	require.Len(t, got.Datasets, 1)
	assert.Len(t, got.Labels, len(history))
	assert.Len(t, got.Datasets[0].Values, len(history))
	assert.Equal(t, "Jun 15, 2023", got.Labels[0])
	for i, v := range got.Datasets[0].Values {
		require.NotNil(t, v)
		assert.Equal(t, history[i].Price, *v)
	}
}

func TestCompose_WithPrediction(t *testing.T) {
	history := yearlySeries(2023, 2025)
	pred := samplePrediction()

	got := Compose(history, pred)

	wantAxis := len(history) + len(pred.Dates)
	assert.Len(t, got.Labels, wantAxis)
	require.Len(t, got.Datasets, 4)

	// Historical dataset covers only the history segment.
	assert.Len(t, got.Datasets[0].Values, len(history))

	// Forecast datasets span the full axis, left-padded with nils so the
	// forecast starts after the history segment.
	for _, ds := range got.Datasets[1:] {
		require.Len(t, ds.Values, wantAxis)
		for i := 0; i < len(history); i++ {
			assert.Nil(t, ds.Values[i], "dataset %s index %d", ds.Name, i)
		}
		for i := len(history); i < wantAxis; i++ {
			assert.NotNil(t, ds.Values[i], "dataset %s index %d", ds.Name, i)
		}
	}

	require.NotNil(t, got.Datasets[1].Values[len(history)])
	assert.Equal(t, 101.0, *got.Datasets[1].Values[len(history)])
	assert.Equal(t, 111.0, *got.Datasets[2].Values[len(history)])
	assert.Equal(t, 91.0, *got.Datasets[3].Values[len(history)])

	// Prediction labels follow the history labels.
	assert.Equal(t, "Sep 1, 2025", got.Labels[len(history)])
}

func TestCompose_EmptyHistoryWithPrediction(t *testing.T) {
	pred := samplePrediction()

	got := Compose(nil, pred)

	assert.Len(t, got.Labels, len(pred.Dates))
	require.Len(t, got.Datasets, 4)
	assert.Empty(t, got.Datasets[0].Values)
	for _, ds := range got.Datasets[1:] {
		assert.Len(t, ds.Values, len(pred.Dates))
	}
}

func TestCompose_DoesNotMutateInputs(t *testing.T) {
	history := yearlySeries(2024, 2025)
	historySnapshot := append([]models.HistoricalPoint(nil), history...)
	pred := samplePrediction()
	predsSnapshot := append([]float64(nil), pred.Predictions...)

	out := Compose(history, pred)

	// Writing through the output must not reach back into the inputs.
	*out.Datasets[0].Values[0] = -1
	*out.Datasets[1].Values[len(history)] = -1

	assert.Equal(t, historySnapshot, history)
	assert.Equal(t, predsSnapshot, pred.Predictions)
}
