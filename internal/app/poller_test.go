package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fetchFunc func(ctx context.Context) ([]catalog.Item, error)

func (f fetchFunc) Fetch(ctx context.Context) ([]catalog.Item, error) { return f(ctx) }

func TestRefresh_RecordsResultInStore(t *testing.T) {
	store := &state.Store{}
	ok := fetchFunc(func(context.Context) ([]catalog.Item, error) {
		return []catalog.Item{{ID: 1, Title: "a"}}, nil
	})
	if err := refresh(context.Background(), store, ok); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if got := store.Snapshot(); len(got.Items) != 1 || got.Revision != 1 {
		t.Fatalf("snapshot = %+v, want one item at revision 1", got)
	}

	boom := errors.New("boom")
	failing := fetchFunc(func(context.Context) ([]catalog.Item, error) { return nil, boom })
	if err := refresh(context.Background(), store, failing); !errors.Is(err, boom) {
		t.Fatalf("refresh error = %v, want boom", err)
	}
	if got := store.Snapshot(); got.ConsecutiveFailures != 1 || len(got.Items) != 1 {
		t.Fatalf("snapshot = %+v, want previous items and one failure", got)
	}
}

func TestRefresh_CancelledContextIsNotAFailure(t *testing.T) {
	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := fetchFunc(func(ctx context.Context) ([]catalog.Item, error) { return nil, ctx.Err() })
	if err := refresh(ctx, store, fetcher); !errors.Is(err, context.Canceled) {
		t.Fatalf("refresh error = %v, want context.Canceled", err)
	}
	if got := store.Snapshot(); got.ConsecutiveFailures != 0 || got.LastError != nil {
		t.Fatalf("snapshot = %+v, want no recorded failure", got)
	}
}

func TestStartPoller_WakeTriggersReload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	calls := 0
	fetcher := fetchFunc(func(context.Context) ([]catalog.Item, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return []catalog.Item{{ID: int64(calls)}}, nil
	})

	store := &state.Store{}
	wake := make(chan struct{}, 1)
	StartPoller(ctx, store, fetcher, time.Hour, wake)
	wake <- struct{}{}

	deadline := time.After(2 * time.Second)
	for store.Revision() == 0 {
		select {
		case <-deadline:
			t.Fatal("poller did not reload after wake")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
