// Package dashboard owns the dashboard's mutable state and orchestrates
// the upstream fetches that feed it: debounced symbol search, the
// per-symbol news/history/prediction/quote fetches, and the gesture and
// window events that reshape the visible chart.
//
// All state lives in a single Store guarded by one mutex, so state
// transitions are serialized even though gin handlers run concurrently.
// Fetches run on their own goroutines and each writes only its own slot
// when it resolves; a fetch is never cancelled once issued, and
// completions are last-resolved-wins (see DESIGN.md on the out-of-order
// response race).
package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tickerboard/internal/analysis"
	"github.com/guttosm/tickerboard/internal/chart"
	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/gesture"
	"github.com/guttosm/tickerboard/internal/logger"
	"github.com/guttosm/tickerboard/internal/search"
	"github.com/guttosm/tickerboard/internal/upstream"
)

// Slot tracks the independent loading/error state of one dashboard
// panel. A failed fetch leaves its message here and never blocks the
// other panels.
type Slot struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Snapshot is the derived, render-ready view of the dashboard state.
// History is already windowed, Chart is composed from it plus the
// forecast, and Summary is present only when the forecast admits one.
type Snapshot struct {
	Query       string                   `json:"query"`
	Suggestions []models.SuggestionItem  `json:"suggestions"`
	Symbol      string                   `json:"symbol"`
	Window      models.Window            `json:"window"`
	Quote       *models.Quote            `json:"quote,omitempty"`
	News        []models.NewsItem        `json:"news"`
	History     []models.HistoricalPoint `json:"history"`
	Prediction  *models.PredictionSeries `json:"prediction,omitempty"`
	Summary     *models.Summary          `json:"summary,omitempty"`
	Chart       models.ChartSeries       `json:"chart"`

	SuggestionStatus Slot `json:"suggestionStatus"`
	QuoteStatus      Slot `json:"quoteStatus"`
	NewsStatus       Slot `json:"newsStatus"`
	HistoryStatus    Slot `json:"historyStatus"`
	PredictionStatus Slot `json:"predictionStatus"`
}

// Options tunes a Store. Zero values fall back to the package defaults.
type Options struct {
	Debounce      time.Duration    // search quiet period (default 150ms)
	ZoomThreshold float64          // gesture step threshold (default 50)
	FetchTimeout  time.Duration    // per-fetch upstream timeout (default 15s)
	Now           func() time.Time // clock override for tests
}

// Store is the single state container behind the dashboard API.
type Store struct {
	api       upstream.StockAPI
	debouncer *Debouncer
	zoom      *gesture.Controller
	now       func() time.Time
	timeout   time.Duration

	mu               sync.Mutex
	query            string
	suggestions      []models.SuggestionItem
	symbol           string
	quote            *models.Quote
	news             []models.NewsItem
	history          []models.HistoricalPoint
	prediction       *models.PredictionSeries
	suggestionStatus Slot
	quoteStatus      Slot
	newsStatus       Slot
	historyStatus    Slot
	predictionStatus Slot
}

// NewStore constructs a Store around the given upstream client.
func NewStore(api upstream.StockAPI, opts Options) *Store {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 15 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		api:       api,
		debouncer: NewDebouncer(opts.Debounce),
		zoom:      gesture.NewController(models.DefaultWindow, opts.ZoomThreshold),
		now:       opts.Now,
		timeout:   opts.FetchTimeout,
	}
}

// Close cancels any pending debounced fetch. In-flight fetches are not
// cancellable once issued and are left to resolve.
func (s *Store) Close() {
	s.debouncer.Stop()
}

// Input records a search keystroke. The suggestion fetch is debounced:
// it fires only after the quiet period, and a newer keystroke cancels a
// pending one before it is issued. A blank query clears the suggestion
// panel without issuing a fetch.
func (s *Store) Input(query string) {
	s.mu.Lock()
	s.query = query
	if query == "" {
		s.suggestions = nil
		s.suggestionStatus = Slot{}
		s.mu.Unlock()
		s.debouncer.Stop()
		return
	}
	s.suggestionStatus = Slot{Loading: true}
	s.mu.Unlock()

	s.debouncer.Trigger(func() { s.fetchSuggestions(query) })
}

func (s *Store) fetchSuggestions(query string) {
	id := uuid.NewString()
	logger.L().Debug().Str("fetch_id", id).Str("query", query).Msg("suggestion fetch")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	results, err := s.api.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.L().Warn().Str("fetch_id", id).Err(err).Msg("suggestion fetch failed")
		s.suggestions = nil
		s.suggestionStatus = Slot{Error: displayError(err)}
		return
	}
	s.suggestions = search.Rank(results, query)
	s.suggestionStatus = Slot{}
}

// Select makes symbol the active dashboard symbol. The window selector
// resets to the default span, previous panel content is cleared, and the
// news, history, prediction and quote fetches are issued concurrently.
// Each fetch owns its slot; a failure in one never blocks the others.
func (s *Store) Select(symbol string) {
	s.mu.Lock()
	s.symbol = symbol
	s.zoom.SetWindow(models.DefaultWindow)
	s.quote = nil
	s.news = nil
	s.history = nil
	s.prediction = nil
	s.quoteStatus = Slot{Loading: true}
	s.newsStatus = Slot{Loading: true}
	s.historyStatus = Slot{Loading: true}
	s.predictionStatus = Slot{Loading: true}
	period := s.zoom.Window().Period()
	s.mu.Unlock()

	go s.fetchAll(symbol, period)
}

// fetchAll runs the four per-symbol fetches concurrently. The group is
// used for structure only: every branch reports into its own slot and
// returns nil, so siblings are never cancelled.
func (s *Store) fetchAll(symbol, period string) {
	id := uuid.NewString()
	logger.L().Debug().Str("fetch_id", id).Str("symbol", symbol).Msg("symbol fetch")

	g := new(errgroup.Group)
	g.Go(func() error { s.fetchNews(id, symbol); return nil })
	g.Go(func() error { s.fetchHistory(id, symbol, period); return nil })
	g.Go(func() error { s.fetchPrediction(id, symbol); return nil })
	g.Go(func() error { s.fetchQuote(id, symbol); return nil })
	_ = g.Wait()

	logger.L().Debug().Str("fetch_id", id).Str("symbol", symbol).Msg("symbol fetch done")
}

func (s *Store) fetchNews(id, symbol string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	news, err := s.api.News(ctx, symbol)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.L().Warn().Str("fetch_id", id).Err(err).Msg("news fetch failed")
		s.newsStatus = Slot{Error: displayError(err)}
		return
	}
	s.news = news
	s.newsStatus = Slot{}
}

func (s *Store) fetchHistory(id, symbol, period string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	history, err := s.api.History(ctx, symbol, period)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.L().Warn().Str("fetch_id", id).Err(err).Msg("history fetch failed")
		s.historyStatus = Slot{Error: displayError(err)}
		return
	}
	s.history = history
	s.historyStatus = Slot{}
}

func (s *Store) fetchPrediction(id, symbol string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	prediction, err := s.api.Predict(ctx, symbol)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.L().Warn().Str("fetch_id", id).Err(err).Msg("prediction fetch failed")
		s.predictionStatus = Slot{Error: displayError(err)}
		return
	}
	s.prediction = prediction
	s.predictionStatus = Slot{}
}

func (s *Store) fetchQuote(id, symbol string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	quote, err := s.api.Quote(ctx, symbol)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.L().Warn().Str("fetch_id", id).Err(err).Msg("quote fetch failed")
		s.quoteStatus = Slot{Error: displayError(err)}
		return
	}
	s.quote = quote
	s.quoteStatus = Slot{}
}

// SetWindow selects a window span. Only the history fetch is re-issued;
// news, prediction and quote are untouched. Selecting the current span
// still refreshes the history.
func (s *Store) SetWindow(w models.Window) {
	s.mu.Lock()
	s.zoom.SetWindow(w)
	symbol := s.symbol
	if symbol == "" {
		s.mu.Unlock()
		return
	}
	s.historyStatus = Slot{Loading: true}
	s.mu.Unlock()

	id := uuid.NewString()
	go s.fetchHistory(id, symbol, w.Period())
}

// Gesture phases accepted by ApplyGesture.
const (
	GestureStart = "start"
	GestureMove  = "move"
	GestureEnd   = "end"
)

// ApplyGesture feeds one touch event into the zoom state machine. A move
// that crosses the pinch threshold steps the window selector and, when a
// symbol is active, re-issues the history fetch for the new span.
//
// Returns the current window and whether this event changed it.
func (s *Store) ApplyGesture(phase string, points []gesture.Point) (models.Window, bool) {
	s.mu.Lock()
	var changed bool
	switch phase {
	case GestureStart:
		s.zoom.Begin(points)
	case GestureMove:
		_, changed = s.zoom.Move(points)
	case GestureEnd:
		s.zoom.End(points)
	}
	w := s.zoom.Window()
	symbol := s.symbol
	if changed && symbol != "" {
		s.historyStatus = Slot{Loading: true}
	}
	s.mu.Unlock()

	if changed && symbol != "" {
		id := uuid.NewString()
		go s.fetchHistory(id, symbol, w.Period())
	}
	return w, changed
}

// RefreshLive updates the active quote's displayed price from the
// lightweight live endpoint. No-op without an active symbol or quote;
// errors are logged and otherwise ignored since the next tick retries
// naturally.
func (s *Store) RefreshLive() {
	s.mu.Lock()
	symbol := s.symbol
	s.mu.Unlock()
	if symbol == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	lp, err := s.api.Live(ctx, symbol)
	if err != nil {
		logger.L().Warn().Str("symbol", symbol).Err(err).Msg("live refresh failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.symbol == symbol && s.quote != nil && lp.Price > 0 {
		s.quote.Price = lp.Price
	}
}

// Window returns the current window selector.
func (s *Store) Window() models.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom.Window()
}

// Snapshot derives the render-ready view from the current state: the
// raw history is windowed, the chart is composed from the windowed
// history plus the forecast, and the analysis summary is computed when
// the forecast is non-empty with a non-zero last actual price (the
// caller-side guard the summarizer requires).
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.zoom.Window()
	filtered := chart.FilterWindow(s.history, w, s.now())

	snap := Snapshot{
		Query:            s.query,
		Suggestions:      s.suggestions,
		Symbol:           s.symbol,
		Window:           w,
		Quote:            s.quote,
		News:             s.news,
		History:          filtered,
		Prediction:       s.prediction,
		Chart:            chart.Compose(filtered, s.prediction),
		SuggestionStatus: s.suggestionStatus,
		QuoteStatus:      s.quoteStatus,
		NewsStatus:       s.newsStatus,
		HistoryStatus:    s.historyStatus,
		PredictionStatus: s.predictionStatus,
	}

	if p := s.prediction; p != nil && len(p.Predictions) > 0 && p.LastActual != 0 {
		summary := analysis.Summarize(p.Predictions, p.LastActual)
		snap.Summary = &summary
	}
	return snap
}

// displayError converts a fetch failure into the user-visible message
// shown in place of the affected panel's content.
func displayError(err error) string {
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	if errors.Is(err, upstream.ErrMalformed) {
		return "Received an unexpected response from the data service. Please try again."
	}
	return "Failed to reach the data service. Please try again."
}
