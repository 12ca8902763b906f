package models

// Dataset is one drawable series on the chart. Values are nullable so
// that forecast datasets can be left-padded to align with the combined
// label axis; a nil entry renders as "no value".
type Dataset struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
	Style  string     `json:"style"`
}

// ChartSeries is the derived, ephemeral chart state handed to the
// renderer: one shared label axis plus one dataset per drawable series.
// It is recomputed on every state change and never persisted.
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Summary holds the qualitative forecast analysis shown next to the
// chart. Confidence is reported unclamped; extreme forecasts can push it
// below 0 or above 100 and callers display it as-is.
type Summary struct {
	Sentiment  string  `json:"sentiment"`
	Trend      string  `json:"trend"`
	Volatility string  `json:"volatility"`
	Confidence float64 `json:"confidence"`
}
