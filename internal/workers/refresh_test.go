package workers

import (
	"context"
	"testing"
	"time"
)

type spyRefreshJob struct {
	startedWith time.Duration
	stops       int
}

func (s *spyRefreshJob) Start(ctx context.Context, interval time.Duration) {
	s.startedWith = interval
}

func (s *spyRefreshJob) Stop() {
	s.stops++
}

func TestWishlistRefreshWorker_PassesConfiguredInterval(t *testing.T) {
	job := &spyRefreshJob{}
	w := NewWishlistRefreshWorker(job, 2*time.Minute)

	w.Start(context.Background())
	w.Stop()

	if job.startedWith != 2*time.Minute {
		t.Errorf("expected interval 2m, got %v", job.startedWith)
	}
	if job.stops != 1 {
		t.Errorf("expected 1 stop, got %d", job.stops)
	}
}
