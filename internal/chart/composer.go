package chart

import "github.com/guttosm/tickerboard/internal/domain/models"

// Dataset names and style tags understood by the renderer.
const (
	historicalName = "Historical Price"
	predictedName  = "Predicted Price"
	upperName      = "Upper Bound"
	lowerName      = "Lower Bound"

	historicalStyle = "historical"
	predictedStyle  = "predicted"
	boundStyle      = "bound"
)

// Compose merges the (already windowed) historical series and an optional
// prediction into a single aligned ChartSeries.
//
// Behavior:
//   - Labels are the history dates followed by the prediction dates.
//   - The historical dataset has exactly len(history) values.
//   - When prediction is non-nil, three forecast datasets (predicted,
//     upper bound, lower bound) are appended, each left-padded with
//     len(history) nil values so the forecast segment starts where the
//     history ends rather than at the chart origin.
//   - When prediction is nil the output has exactly one dataset.
//
// Neither input is mutated.
func Compose(history []models.HistoricalPoint, prediction *models.PredictionSeries) models.ChartSeries {
	labelCount := len(history)
	if prediction != nil {
		labelCount += len(prediction.Dates)
	}

	labels := make([]string, 0, labelCount)
	historical := make([]*float64, 0, len(history))
	for _, p := range history {
		labels = append(labels, p.Date.Display())
		v := p.Price
		historical = append(historical, &v)
	}

	out := models.ChartSeries{
		Labels: labels,
		Datasets: []models.Dataset{
			{Name: historicalName, Values: historical, Style: historicalStyle},
		},
	}

	if prediction == nil {
		return out
	}

	for _, d := range prediction.Dates {
		out.Labels = append(out.Labels, d.Display())
	}

	out.Datasets = append(out.Datasets,
		models.Dataset{Name: predictedName, Values: padded(len(history), prediction.Predictions), Style: predictedStyle},
		models.Dataset{Name: upperName, Values: padded(len(history), prediction.UpperBound), Style: boundStyle},
		models.Dataset{Name: lowerName, Values: padded(len(history), prediction.LowerBound), Style: boundStyle},
	)
	return out
}

// padded prefixes values with pad nil entries so the series aligns with
// the combined label axis.
func padded(pad int, values []float64) []*float64 {
	out := make([]*float64, pad, pad+len(values))
	for _, v := range values {
		v := v
		out = append(out, &v)
	}
	return out
}
