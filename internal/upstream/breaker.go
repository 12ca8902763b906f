package upstream

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/logger"
)

// BreakerClient decorates a StockAPI with a shared circuit breaker so a
// flapping upstream fails fast instead of tying up dashboard fetches.
// It changes failure latency, not failure semantics: there is still no
// retry, and open-circuit calls surface as ordinary errors in the same
// per-panel error slots. Disabled by default via config (BREAKER_ENABLED).
type BreakerClient struct {
	api StockAPI
	cb  *gobreaker.CircuitBreaker
}

// NewBreakerClient wraps api in a circuit breaker.
//
// Settings: trips after 5 consecutive failures, stays open for 30s, then
// allows up to 3 probe requests while half-open.
func NewBreakerClient(api StockAPI) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        "stock-upstream",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.L().Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("upstream breaker state change")
		},
	}
	return &BreakerClient{api: api, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerClient) Search(ctx context.Context, query string) ([]models.SuggestionItem, error) {
	out, err := b.cb.Execute(func() (any, error) { return b.api.Search(ctx, query) })
	if err != nil {
		return nil, err
	}
	return out.([]models.SuggestionItem), nil
}

func (b *BreakerClient) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	out, err := b.cb.Execute(func() (any, error) { return b.api.Quote(ctx, symbol) })
	if err != nil {
		return nil, err
	}
	return out.(*models.Quote), nil
}

func (b *BreakerClient) History(ctx context.Context, symbol, period string) ([]models.HistoricalPoint, error) {
	out, err := b.cb.Execute(func() (any, error) { return b.api.History(ctx, symbol, period) })
	if err != nil {
		return nil, err
	}
	return out.([]models.HistoricalPoint), nil
}

func (b *BreakerClient) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	out, err := b.cb.Execute(func() (any, error) { return b.api.News(ctx, symbol) })
	if err != nil {
		return nil, err
	}
	return out.([]models.NewsItem), nil
}

func (b *BreakerClient) Predict(ctx context.Context, symbol string) (*models.PredictionSeries, error) {
	out, err := b.cb.Execute(func() (any, error) { return b.api.Predict(ctx, symbol) })
	if err != nil {
		return nil, err
	}
	return out.(*models.PredictionSeries), nil
}

func (b *BreakerClient) Live(ctx context.Context, symbol string) (*models.LivePrice, error) {
	out, err := b.cb.Execute(func() (any, error) { return b.api.Live(ctx, symbol) })
	if err != nil {
		return nil, err
	}
	return out.(*models.LivePrice), nil
}

func (b *BreakerClient) Ping(ctx context.Context) error {
	_, err := b.cb.Execute(func() (any, error) { return nil, b.api.Ping(ctx) })
	return err
}

var _ StockAPI = (*BreakerClient)(nil)
