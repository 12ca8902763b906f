package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerboard/config"
	"github.com/guttosm/tickerboard/internal/api"
	"github.com/guttosm/tickerboard/internal/dashboard"
	"github.com/guttosm/tickerboard/internal/upstream"
)

// stockAPIBuilder constructs the upstream client from config.
// Indirection for unit testing.
var stockAPIBuilder = buildStockAPI

// buildStockAPI creates the upstream client, optionally wrapped in a
// circuit breaker when BREAKER_ENABLED is set.
func buildStockAPI(cfg config.Config) upstream.StockAPI {
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	if cfg.Upstream.BreakerEnabled {
		return upstream.NewBreakerClient(client)
	}
	return client
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream stock API client (with optional circuit breaker).
//   - Creates the dashboard store that owns all mutable state.
//   - Schedules the live price refresher (when LIVE_REFRESH_SECONDS >= 1).
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to stop background work on shutdown.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Build the upstream client
	// indirection for unit testing
	stockAPI := stockAPIBuilder(cfg)

	// Initialize the dashboard state container
	store := dashboard.NewStore(stockAPI, dashboard.Options{
		Debounce:      cfg.Dashboard.SearchDebounce,
		ZoomThreshold: cfg.Dashboard.ZoomThreshold,
		FetchTimeout:  cfg.Upstream.Timeout,
	})

	// Schedule the live price refresher, if enabled
	var refresher *dashboard.LiveRefresher
	if cfg.Dashboard.LiveRefresh >= time.Second {
		r, err := dashboard.NewLiveRefresher(store, cfg.Dashboard.LiveRefresh)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		refresher = r
		refresher.Start()
	}

	// Initialize HTTP handler layer (state container to HTTP mapping)
	handler := api.NewHandler(store, stockAPI)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return stockAPI.Ping(ctx)
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if refresher != nil {
			refresher.Stop()
		}
		store.Close()
	}

	return router, cleanup, nil
}
