package app

import (
	"context"
	"log"
	"time"

	"github.com/Amii911/AlgoTrack/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that re-fetches the
// catalog at a fixed cadence, backing off while the API is unreachable.
// It returns immediately. Attempts are not polled; the coordinator
// reconciles them after every mutation.
func StartPoller(ctx context.Context, catalog *state.CatalogStore, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			if _, err := catalog.LoadAll(ctx); err != nil {
				log.Printf("catalog poll failed: %v", err)
			}
			timer.Reset(calculateBackoff(catalog.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

// calculateBackoff doubles the poll interval per consecutive failure,
// capped at maxBackoff. Zero failures polls at the base interval.
func calculateBackoff(failures int, baseInterval time.Duration) time.Duration {
	if failures <= 0 {
		return baseInterval
	}
	backoff := baseInterval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
