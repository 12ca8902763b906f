package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/gesture"
	"github.com/guttosm/tickerboard/internal/upstream"
)

// stubAPI is a controllable upstream.StockAPI. Per-symbol history delays
// let tests order fetch completions deliberately.
type stubAPI struct {
	mu           sync.Mutex
	searchCalls  []string
	historyCalls []string // "SYMBOL/period"
	newsCalls    int
	predictCalls int
	quoteCalls   int
	liveCalls    int

	historyDelay map[string]time.Duration
	newsErr      error
	historyErr   error

	livePrice float64
}

func (a *stubAPI) Search(_ context.Context, query string) ([]models.SuggestionItem, error) {
	a.mu.Lock()
	a.searchCalls = append(a.searchCalls, query)
	a.mu.Unlock()
	return []models.SuggestionItem{
		{Symbol: "X" + query, Name: "Other"},
		{Symbol: query, Name: "Exact"},
	}, nil
}

func (a *stubAPI) Quote(_ context.Context, symbol string) (*models.Quote, error) {
	a.mu.Lock()
	a.quoteCalls++
	a.mu.Unlock()
	return &models.Quote{Symbol: symbol, Price: 100}, nil
}

func (a *stubAPI) History(_ context.Context, symbol, period string) ([]models.HistoricalPoint, error) {
	a.mu.Lock()
	delay := a.historyDelay[symbol]
	err := a.historyErr
	a.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	a.mu.Lock()
	a.historyCalls = append(a.historyCalls, symbol+"/"+period)
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return []models.HistoricalPoint{
		{Date: models.NewDate(2025, time.January, 2), Price: priceFor(symbol)},
	}, nil
}

func (a *stubAPI) News(_ context.Context, symbol string) ([]models.NewsItem, error) {
	a.mu.Lock()
	a.newsCalls++
	err := a.newsErr
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return []models.NewsItem{{Title: symbol + " headline"}}, nil
}

func (a *stubAPI) Predict(_ context.Context, symbol string) (*models.PredictionSeries, error) {
	a.mu.Lock()
	a.predictCalls++
	a.mu.Unlock()
	return &models.PredictionSeries{
		Dates:       []models.Date{models.NewDate(2025, time.September, 1)},
		Predictions: []float64{110},
		UpperBound:  []float64{120},
		LowerBound:  []float64{100},
		LastActual:  100,
	}, nil
}

func (a *stubAPI) Live(_ context.Context, symbol string) (*models.LivePrice, error) {
	a.mu.Lock()
	a.liveCalls++
	price := a.livePrice
	a.mu.Unlock()
	return &models.LivePrice{Symbol: symbol, Price: price}, nil
}

func (a *stubAPI) Ping(context.Context) error { return nil }

var _ upstream.StockAPI = (*stubAPI)(nil)

// priceFor gives each stub symbol a recognizable history price.
func priceFor(symbol string) float64 {
	return float64(10 * len(symbol))
}

func (a *stubAPI) searched() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.searchCalls...)
}

func (a *stubAPI) historied() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.historyCalls...)
}

func (a *stubAPI) counts() (news, predict, quote int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.newsCalls, a.predictCalls, a.quoteCalls
}

func (a *stubAPI) lives() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.liveCalls
}

func newTestStore(api *stubAPI) *Store {
	return NewStore(api, Options{Debounce: 20 * time.Millisecond, FetchTimeout: time.Second})
}

func settled(s *Store) func() bool {
	return func() bool {
		snap := s.Snapshot()
		return !snap.NewsStatus.Loading && !snap.HistoryStatus.Loading &&
			!snap.PredictionStatus.Loading && !snap.QuoteStatus.Loading
	}
}

func TestStore_DebounceCollapsesKeystrokes(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.Input("A")
	s.Input("AA")
	s.Input("AAPL")

	require.Eventually(t, func() bool {
		return len(api.searched()) > 0
	}, time.Second, 5*time.Millisecond)

	// Only the latest keystroke's fetch was issued; stale timers were
	// cancelled before firing.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"AAPL"}, api.searched())

	snap := s.Snapshot()
	require.Len(t, snap.Suggestions, 2)
	assert.Equal(t, "AAPL", snap.Suggestions[0].Symbol, "exact match ranks first")
}

func TestStore_BlankInputClearsSuggestions(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.Input("AAPL")
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Suggestions) > 0
	}, time.Second, 5*time.Millisecond)

	s.Input("")
	snap := s.Snapshot()
	assert.Empty(t, snap.Suggestions)
	assert.Equal(t, Slot{}, snap.SuggestionStatus)
	assert.Empty(t, api.searched()[1:], "blank input must not issue a fetch")
}

func TestStore_SelectFetchesAllPanels(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	news, predict, quote := api.counts()
	assert.Equal(t, 1, news)
	assert.Equal(t, 1, predict)
	assert.Equal(t, 1, quote)
	assert.Equal(t, []string{"AAPL/max"}, api.historied(), "initial history uses the default window period")

	snap := s.Snapshot()
	assert.Equal(t, "AAPL", snap.Symbol)
	require.NotNil(t, snap.Quote)
	require.Len(t, snap.News, 1)
	require.Len(t, snap.History, 1)
	require.NotNil(t, snap.Prediction)
	require.NotNil(t, snap.Summary)
	assert.Len(t, snap.Chart.Datasets, 4)
}

func TestStore_FailedPanelIsIsolated(t *testing.T) {
	api := &stubAPI{newsErr: &upstream.StatusError{StatusCode: 503, Message: "Service temporarily unavailable"}}
	s := newTestStore(api)
	defer s.Close()

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, "Service temporarily unavailable", snap.NewsStatus.Error)
	assert.Empty(t, snap.News)

	// The failing panel does not block the others.
	assert.Empty(t, snap.HistoryStatus.Error)
	require.Len(t, snap.History, 1)
	assert.Empty(t, snap.PredictionStatus.Error)
	assert.Empty(t, snap.QuoteStatus.Error)
}

func TestStore_GenericErrorGetsDisplayMessage(t *testing.T) {
	api := &stubAPI{historyErr: errors.New("connection refused")}
	s := newTestStore(api)
	defer s.Close()

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, "Failed to reach the data service. Please try again.", snap.HistoryStatus.Error)
}

func TestStore_SetWindowRefetchesHistoryOnly(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	s.SetWindow(models.WindowOneYear)
	require.Eventually(t, func() bool {
		return len(api.historied()) == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"AAPL/max", "AAPL/1y"}, api.historied())
	news, predict, quote := api.counts()
	assert.Equal(t, 1, news, "window change must not refetch news")
	assert.Equal(t, 1, predict, "window change must not refetch prediction")
	assert.Equal(t, 1, quote, "window change must not refetch quote")
}

func TestStore_SetWindowWithoutSymbolOnlySetsSelector(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.SetWindow(models.WindowFiveYear)
	assert.Equal(t, models.WindowFiveYear, s.Window())
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, api.historied())
}

func TestStore_SelectResetsWindow(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)
	s.SetWindow(models.WindowOneYear)
	require.Eventually(t, func() bool { return len(api.historied()) == 2 }, time.Second, 5*time.Millisecond)

	s.Select("MSFT")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)
	assert.Equal(t, models.DefaultWindow, s.Window(), "switching symbols resets the selector")
}

func TestStore_GestureStepsWindowAndRefetches(t *testing.T) {
	api := &stubAPI{}
	s := newTestStore(api)
	defer s.Close()

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	pts := func(d float64) []gesture.Point { return []gesture.Point{{X: 0, Y: 0}, {X: d, Y: 0}} }

	w, changed := s.ApplyGesture(GestureStart, pts(100))
	assert.False(t, changed)
	assert.Equal(t, models.WindowAll, w)

	// Pinch out past the threshold narrows ALL -> TEN_YEAR.
	w, changed = s.ApplyGesture(GestureMove, pts(160))
	assert.True(t, changed)
	assert.Equal(t, models.WindowTenYear, w)

	require.Eventually(t, func() bool {
		return len(api.historied()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "AAPL/10y", api.historied()[1])

	_, _ = s.ApplyGesture(GestureEnd, nil)
	news, predict, quote := api.counts()
	assert.Equal(t, 1, news)
	assert.Equal(t, 1, predict)
	assert.Equal(t, 1, quote)
}

func TestStore_LateResponseWins(t *testing.T) {
	// Documented race (last-resolved-wins): a prior symbol's in-flight
	// history fetch is not discarded when it resolves after a newer
	// symbol's fetch. This asserts current behavior, not correctness.
	api := &stubAPI{historyDelay: map[string]time.Duration{"SLOW": 120 * time.Millisecond}}
	s := newTestStore(api)
	defer s.Close()

	s.Select("SLOW")
	time.Sleep(10 * time.Millisecond)
	s.Select("FAST")

	require.Eventually(t, func() bool {
		snap := s.Snapshot()
		return len(snap.History) == 1 && snap.History[0].Price == priceFor("FAST")
	}, time.Second, 5*time.Millisecond)

	// Once SLOW's fetch resolves, its data overwrites FAST's.
	require.Eventually(t, func() bool {
		snap := s.Snapshot()
		return len(snap.History) == 1 && snap.History[0].Price == priceFor("SLOW")
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "FAST", s.Snapshot().Symbol)
}

func TestStore_RefreshLive(t *testing.T) {
	api := &stubAPI{livePrice: 123.45}
	s := newTestStore(api)
	defer s.Close()

	// Without a symbol, nothing happens.
	s.RefreshLive()
	assert.Equal(t, 0, api.lives())

	s.Select("AAPL")
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	s.RefreshLive()
	snap := s.Snapshot()
	require.NotNil(t, snap.Quote)
	assert.Equal(t, 123.45, snap.Quote.Price)
}

func TestStore_SnapshotWithoutData(t *testing.T) {
	s := newTestStore(&stubAPI{})
	defer s.Close()

	snap := s.Snapshot()
	assert.Empty(t, snap.Symbol)
	assert.Equal(t, models.DefaultWindow, snap.Window)
	assert.Nil(t, snap.Summary)
	require.Len(t, snap.Chart.Datasets, 1)
	assert.Empty(t, snap.Chart.Datasets[0].Values)
}

func TestNewLiveRefresher_RejectsTinyInterval(t *testing.T) {
	s := newTestStore(&stubAPI{})
	defer s.Close()

	_, err := NewLiveRefresher(s, 10*time.Millisecond)
	assert.Error(t, err)

	r, err := NewLiveRefresher(s, time.Second)
	require.NoError(t, err)
	r.Start()
	r.Stop()
}
