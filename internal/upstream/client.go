// Package upstream is the HTTP client for the external stock API that
// backs the dashboard: symbol search, quotes, price history, news and
// price forecasts. The API itself is an external collaborator; this
// package only maps its wire shapes onto domain models and its failures
// onto display-string errors. No retry is performed at this layer.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// StockAPI defines the contract consumed by the dashboard orchestrator.
// Implemented by Client and by the circuit-breaker decorator.
type StockAPI interface {
	Search(ctx context.Context, query string) ([]models.SuggestionItem, error)
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	History(ctx context.Context, symbol, period string) ([]models.HistoricalPoint, error)
	News(ctx context.Context, symbol string) ([]models.NewsItem, error)
	Predict(ctx context.Context, symbol string) (*models.PredictionSeries, error)
	Live(ctx context.Context, symbol string) (*models.LivePrice, error)
	Ping(ctx context.Context) error
}

// Client is the plain HTTP implementation of StockAPI.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the given upstream base URL.
//
// Parameters:
//   - baseURL (string): e.g. "http://localhost:8000". A trailing slash is trimmed.
//   - timeout (time.Duration): per-request timeout; 0 means no client timeout
//     (the request context still applies).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Search calls GET /search/{query} and returns the raw, unranked
// suggestion list.
func (c *Client) Search(ctx context.Context, query string) ([]models.SuggestionItem, error) {
	var payload struct {
		Suggestions []models.SuggestionItem `json:"suggestions"`
		Error       string                  `json:"error"`
	}
	if err := c.getJSON(ctx, "/search/"+url.PathEscape(query), &payload); err != nil {
		return nil, err
	}
	// The upstream reports rate-limit style failures inside a 200 body.
	if payload.Error != "" {
		return nil, &StatusError{StatusCode: http.StatusOK, Message: payload.Error}
	}
	if payload.Suggestions == nil {
		return nil, fmt.Errorf("%w: missing suggestions field", ErrMalformed)
	}
	return payload.Suggestions, nil
}

// Quote calls GET /stock/{symbol} and returns the current quote fields.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var q models.Quote
	if err := c.getJSON(ctx, "/stock/"+url.PathEscape(symbol), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// History calls GET /stock/{symbol}/history?period={period} and returns
// the historical series, ordered ascending by date as the upstream
// guarantees.
func (c *Client) History(ctx context.Context, symbol, period string) ([]models.HistoricalPoint, error) {
	var payload struct {
		History []models.HistoricalPoint `json:"history"`
	}
	path := "/stock/" + url.PathEscape(symbol) + "/history?period=" + url.QueryEscape(period)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	if payload.History == nil {
		return nil, fmt.Errorf("%w: missing history field", ErrMalformed)
	}
	return payload.History, nil
}

// News calls GET /stock/{symbol}/news.
func (c *Client) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	var payload struct {
		News []models.NewsItem `json:"news"`
	}
	if err := c.getJSON(ctx, "/stock/"+url.PathEscape(symbol)+"/news", &payload); err != nil {
		return nil, err
	}
	if payload.News == nil {
		return nil, fmt.Errorf("%w: missing news field", ErrMalformed)
	}
	return payload.News, nil
}

// Predict calls GET /stock/{symbol}/predict and returns the forecast
// with its confidence band.
func (c *Client) Predict(ctx context.Context, symbol string) (*models.PredictionSeries, error) {
	var p models.PredictionSeries
	if err := c.getJSON(ctx, "/stock/"+url.PathEscape(symbol)+"/predict", &p); err != nil {
		return nil, err
	}
	if p.Dates == nil || p.Predictions == nil {
		return nil, fmt.Errorf("%w: missing prediction fields", ErrMalformed)
	}
	return &p, nil
}

// Live calls GET /stock/{symbol}/live for a lightweight price tick.
func (c *Client) Live(ctx context.Context, symbol string) (*models.LivePrice, error) {
	var lp models.LivePrice
	if err := c.getJSON(ctx, "/stock/"+url.PathEscape(symbol)+"/live", &lp); err != nil {
		return nil, err
	}
	return &lp, nil
}

// Ping checks upstream reachability by requesting the API root. Used by
// the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var payload struct {
		Message string `json:"message"`
	}
	return c.getJSON(ctx, "/", &payload)
}

// getJSON performs a GET against path and decodes the JSON body into out.
//
// Non-2xx responses become a *StatusError carrying the body's
// detail/error message (or the HTTP status text). Undecodable bodies on
// 2xx responses are reported as ErrMalformed.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read response %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		msg := eb.message()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
