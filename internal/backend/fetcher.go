// Package backend runs the catalog's asynchronous work off the UI loop.
package backend

import (
	"context"
	"sync"

	"github.com/typeflow/font-picker/internal/catalog"
)

// Event conveys the outcome of the one-shot catalog fetch.
type Event struct {
	List *catalog.FontList
	Err  error
}

// Fetcher performs the catalog Init in a goroutine and publishes exactly one
// event. The fetch either resolves or fails once; there is no timeout and no
// retry.
type Fetcher struct {
	svc catalog.Service

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewFetcher starts the fetch immediately.
func NewFetcher(svc catalog.Service) *Fetcher {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Fetcher{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 1),
	}

	f.wg.Add(1)
	go f.fetch()

	go func() {
		f.wg.Wait()
		close(f.events)
	}()

	return f
}

// Events returns the event channel. It delivers one event, then closes.
func (f *Fetcher) Events() <-chan Event {
	return f.events
}

// Stop abandons the fetch at teardown. The in-flight Init observes the
// cancelled context; use Wait if a clean drain is required (e.g. in tests).
func (f *Fetcher) Stop() {
	f.cancel()
}

// Wait blocks until the fetch goroutine has exited and the events channel is
// closed.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}

func (f *Fetcher) fetch() {
	defer f.wg.Done()

	list, err := f.svc.Init(f.ctx)
	evt := Event{List: list, Err: err}
	select {
	case <-f.ctx.Done():
	case f.events <- evt:
	}
}
