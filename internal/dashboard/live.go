package dashboard

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/guttosm/tickerboard/internal/logger"
)

// LiveRefresher periodically refreshes the active symbol's displayed
// price from the upstream live endpoint.
type LiveRefresher struct {
	cron  *cron.Cron
	store *Store
}

// NewLiveRefresher schedules store.RefreshLive every interval.
//
// Parameters:
//   - store (*Store): the dashboard state to refresh.
//   - every (time.Duration): refresh interval; must be at least one second.
//
// Returns:
//   - *LiveRefresher: the scheduled (not yet started) refresher.
//   - error: if the schedule could not be registered.
func NewLiveRefresher(store *Store, every time.Duration) (*LiveRefresher, error) {
	if every < time.Second {
		return nil, fmt.Errorf("live refresh interval too small: %s", every)
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", every), store.RefreshLive); err != nil {
		return nil, fmt.Errorf("schedule live refresh: %w", err)
	}
	return &LiveRefresher{cron: c, store: store}, nil
}

// Start begins the refresh schedule.
func (r *LiveRefresher) Start() {
	r.cron.Start()
	logger.L().Info().Msg("live price refresher started")
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *LiveRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	logger.L().Info().Msg("live price refresher stopped")
}
