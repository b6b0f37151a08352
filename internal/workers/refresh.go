package workers

import (
	"context"
	"time"

	"github.com/arjun-sureshh/beestore-client/internal/service"
)

// WishlistRefreshWorker adapts the service-layer refresh job to the Worker
// lifecycle, carrying the configured sync interval with it.
type WishlistRefreshWorker struct {
	job      service.RefreshJob
	interval time.Duration
}

func NewWishlistRefreshWorker(job service.RefreshJob, interval time.Duration) *WishlistRefreshWorker {
	return &WishlistRefreshWorker{job: job, interval: interval}
}

func (w *WishlistRefreshWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *WishlistRefreshWorker) Stop() {
	w.job.Stop()
}
