package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultStaleOrderAge is how long an order may sit in PENDING before the
// watchdog starts flagging it.
const DefaultStaleOrderAge = 15 * time.Minute

// maxReportedOrderIDs caps the number of ids named in a single warning.
const maxReportedOrderIDs = 5

// StaleOrderWatchdog periodically checks for orders stuck in PENDING and logs
// a warning when it finds any. It is strictly read-only: confirming or
// cancelling a stale order remains a staff decision.
type StaleOrderWatchdog struct {
	orders   ports.OrderRepository
	staleAge time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderWatchdog creates a watchdog flagging orders pending longer
// than staleAge. A non-positive staleAge falls back to DefaultStaleOrderAge.
func NewStaleOrderWatchdog(orders ports.OrderRepository, staleAge time.Duration, logger *slog.Logger) *StaleOrderWatchdog {
	if staleAge <= 0 {
		staleAge = DefaultStaleOrderAge
	}

	return &StaleOrderWatchdog{
		orders:   orders,
		staleAge: staleAge,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_watchdog"),
	}
}

// Start schedules the watchdog to run every minute.
func (j *StaleOrderWatchdog) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watchdog started (running every minute)",
		"staleAge", j.staleAge.String())
	return nil
}

// Stop stops the watchdog.
func (j *StaleOrderWatchdog) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watchdog stopped")
}

func (j *StaleOrderWatchdog) run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.staleAge)

	stale, err := j.orders.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order check failed", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Orders stuck in pending state",
		"count", len(stale),
		"oldestOrderIds", oldestIDs(stale),
		"staleAge", j.staleAge.String())
}

// oldestIDs names the longest-waiting orders, oldest first.
func oldestIDs(stale []*order.Order) []string {
	sorted := make([]*order.Order, len(stale))
	copy(sorted, stale)
	for i := 1; i < len(sorted); i++ {
		for k := i; k > 0 && sorted[k].CreatedAt().Before(sorted[k-1].CreatedAt()); k-- {
			sorted[k], sorted[k-1] = sorted[k-1], sorted[k]
		}
	}

	limit := len(sorted)
	if limit > maxReportedOrderIDs {
		limit = maxReportedOrderIDs
	}

	ids := make([]string, 0, limit)
	for _, stuck := range sorted[:limit] {
		ids = append(ids, stuck.ID().String())
	}
	return ids
}
