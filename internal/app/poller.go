package app

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that reloads the catalog into
// the store. The caller is expected to have done the first load. It waits
// interval between reloads, backing off while fetches
// fail, and reloads at once when wake fires. wake may be nil. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, fetcher catalog.Fetcher, interval time.Duration, wake <-chan struct{}) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			case <-wake:
				glog.V(2).Info("catalog changed on disk; reloading")
			}
			_ = refresh(ctx, store, fetcher)
		}
	}()
}

// calculateBackoff doubles interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func refresh(ctx context.Context, store *state.Store, fetcher catalog.Fetcher) error {
	items, err := fetcher.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(nil, err)
		glog.Warningf("catalog fetch failed: %v", err)
		return err
	}
	store.Update(items, nil)
	glog.V(2).Infof("catalog fetched items=%d revision=%d", len(items), store.Revision())
	return nil
}
