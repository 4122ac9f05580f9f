package backend

import (
	"context"
	"sync"
	"time"

	"github.com/typeflow/font-picker/internal/catalog"
)

// throttle ensures a minimum interval between successive operations.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		time.Sleep(wait)
	}
}

// throttledDownloader paces font downloads so rapid addFont calls do not
// fire retrieval bursts at the asset host.
type throttledDownloader struct {
	inner    catalog.Downloader
	throttle *throttle
}

// NewThrottledDownloader wraps inner with a minimum interval between
// downloads. A nil inner yields a no-op downloader (registration without
// retrieval).
func NewThrottledDownloader(inner catalog.Downloader, interval time.Duration) catalog.Downloader {
	return &throttledDownloader{inner: inner, throttle: newThrottle(interval)}
}

func (d *throttledDownloader) Download(ctx context.Context, font catalog.Font) error {
	if d.inner == nil {
		return nil
	}
	d.throttle.wait()
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.inner.Download(ctx, font)
}
