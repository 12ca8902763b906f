package models

// HistoricalPoint is a single daily candle in a symbol's price history.
//
// Points arrive from the upstream API ordered ascending by date, with
// unique dates within a series. Price is the display price and typically
// equals Close.
type HistoricalPoint struct {
	Date   Date    `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
	Price  float64 `json:"price"`
}

// PredictionSeries is a point forecast with a confidence band, as
// returned by GET /stock/{symbol}/predict.
//
// Invariant (produced upstream, not re-verified here):
// len(Dates) == len(Predictions) == len(UpperBound) == len(LowerBound),
// and UpperBound[i] >= Predictions[i] >= LowerBound[i].
type PredictionSeries struct {
	Dates          []Date    `json:"dates"`
	Predictions    []float64 `json:"predictions"`
	UpperBound     []float64 `json:"upper_bound"`
	LowerBound     []float64 `json:"lower_bound"`
	LastActual     float64   `json:"last_actual"`
	LastActualDate Date      `json:"last_actual_date"`
}

// SuggestionItem is one autocomplete result for a ticker search.
// Duplicates may appear if the upstream returns them; no uniqueness is
// enforced on this side.
type SuggestionItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// NewsItem is a single related-news entry for a symbol.
type NewsItem struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Link        string `json:"link"`
	PublishedAt int64  `json:"published_at"`
	Type        string `json:"type"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Quote holds the current-quote panel fields for a symbol, as returned
// by GET /stock/{symbol}.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
}

// LivePrice is a lightweight price tick from GET /stock/{symbol}/live,
// used to refresh the quote panel between full fetches.
type LivePrice struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"`
}
