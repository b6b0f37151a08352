package service

import (
	"context"
	"sync"
	"time"
)

type refreshJob struct {
	sessionService  SessionService
	wishlistService WishlistService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that re-syncs the wishlist on a ticker.
// The job is idle until Start is called. Each tick syncs for whatever
// identity is current at that moment; with no identity the tick is a cheap
// no-op that leaves the collection empty.
func NewRefreshJob(sessionService SessionService, wishlistService WishlistService) RefreshJob {
	return &refreshJob{sessionService: sessionService, wishlistService: wishlistService}
}

// Start implements [RefreshJob]. It stops any previously running job, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.wishlistService.Sync(jobCtx, j.sessionService.Identity())
			}
		}
	}()
}

// Stop implements [RefreshJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
