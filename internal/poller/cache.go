// Package poller implements a keyed, time-boxed cache for backend fetches.
//
// Each remote resource gets one Entry. The view layer schedules refreshes
// on a fixed interval; the entry guarantees that overlapping refreshes for
// the same resource are coalesced and that a failed refresh keeps the last
// good value while exposing the error.
package poller

import (
	"context"
	"sync"
	"time"
)

// Entry caches the latest fetched value of one remote resource.
type Entry[T any] struct {
	mu        sync.Mutex
	name      string
	value     T
	err       error
	settled   bool // first fetch completed, successfully or not
	inFlight  bool
	gen       uint64
	updatedAt time.Time
}

// NewEntry creates an empty cache entry with a stable name.
func NewEntry[T any](name string) *Entry[T] {
	return &Entry[T]{name: name}
}

// Name returns the entry's cache key.
func (e *Entry[T]) Name() string { return e.name }

// Get returns the latest successfully fetched value, a loading flag that
// is true only until the first fetch settles, and the error of the most
// recent fetch.
func (e *Entry[T]) Get() (value T, loading bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value, !e.settled, e.err
}

// UpdatedAt returns when the value last changed. Zero until the first
// successful fetch.
func (e *Entry[T]) UpdatedAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.updatedAt
}

// Begin claims the entry for a refresh. It returns false when a fetch is
// already in flight; the caller must then skip this tick entirely.
func (e *Entry[T]) Begin() (gen uint64, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return 0, false
	}
	e.inFlight = true
	return e.gen, true
}

// Complete settles a refresh started with Begin. The result is discarded
// when the entry was invalidated in between, so a late completion can
// never overwrite data from a newer generation. On error the previous
// value is retained.
func (e *Entry[T]) Complete(gen uint64, value T, err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false
	if gen != e.gen {
		return false
	}
	e.settled = true
	e.err = err
	if err == nil {
		e.value = value
		e.updatedAt = time.Now()
	}
	return true
}

// Invalidate retires any in-flight fetch and clears the cached state.
// Used when the active subscription changes and late results must be
// ignored.
func (e *Entry[T]) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.inFlight = false
	var zero T
	e.value = zero
	e.err = nil
	e.settled = false
	e.updatedAt = time.Time{}
}

// Settle finishes a refresh claimed with Begin: invoke fn, retry exactly
// once on failure unless the context is already done, and complete the
// claimed generation. It returns false when the result was discarded as
// stale.
func (e *Entry[T]) Settle(ctx context.Context, gen uint64, fn func(context.Context) (T, error)) bool {
	value, err := fn(ctx)
	if err != nil && ctx.Err() == nil {
		value, err = fn(ctx)
	}
	return e.Complete(gen, value, err)
}
