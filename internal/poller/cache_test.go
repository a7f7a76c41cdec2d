package poller

import (
	"context"
	"errors"
	"testing"
)

func TestEntryLoadingUntilFirstSettle(t *testing.T) {
	e := NewEntry[int]("stats")

	_, loading, err := e.Get()
	if !loading {
		t.Errorf("fresh entry should be loading")
	}
	if err != nil {
		t.Errorf("fresh entry should carry no error, got %v", err)
	}

	gen, ok := e.Begin()
	if !ok {
		t.Fatalf("Begin on idle entry should succeed")
	}
	e.Complete(gen, 42, nil)

	value, loading, err := e.Get()
	if loading {
		t.Errorf("settled entry should not be loading")
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Errorf("value = %d, want 42", value)
	}
}

func TestEntryCoalescesOverlappingFetches(t *testing.T) {
	e := NewEntry[int]("logs")

	gen, ok := e.Begin()
	if !ok {
		t.Fatalf("first Begin should succeed")
	}

	// A tick firing mid-fetch is skipped, not queued.
	if _, ok := e.Begin(); ok {
		t.Errorf("second Begin while in flight should fail")
	}

	e.Complete(gen, 1, nil)

	if _, ok := e.Begin(); !ok {
		t.Errorf("Begin after Complete should succeed again")
	}
}

func TestEntryRetainsStaleValueOnError(t *testing.T) {
	e := NewEntry[string]("leads")

	gen, _ := e.Begin()
	e.Complete(gen, "good", nil)

	gen, _ = e.Begin()
	fetchErr := errors.New("backend down")
	e.Complete(gen, "", fetchErr)

	value, loading, err := e.Get()
	if loading {
		t.Errorf("entry should stay settled after a failed refresh")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("err = %v, want %v", err, fetchErr)
	}
	if value != "good" {
		t.Errorf("value = %q, want previous value retained", value)
	}
}

func TestEntryErrorClearsOnNextSuccess(t *testing.T) {
	e := NewEntry[int]("stats")

	gen, _ := e.Begin()
	e.Complete(gen, 0, errors.New("boom"))

	gen, _ = e.Begin()
	e.Complete(gen, 7, nil)

	value, _, err := e.Get()
	if err != nil {
		t.Errorf("err = %v, want nil after successful refresh", err)
	}
	if value != 7 {
		t.Errorf("value = %d, want 7", value)
	}
}

func TestEntryInvalidateDiscardsLateCompletion(t *testing.T) {
	e := NewEntry[int]("stats")

	gen, _ := e.Begin()
	e.Invalidate()

	if applied := e.Complete(gen, 99, nil); applied {
		t.Fatalf("completion from a retired generation must be discarded")
	}

	value, loading, _ := e.Get()
	if !loading {
		t.Errorf("invalidated entry should report loading")
	}
	if value != 0 {
		t.Errorf("value = %d, want zero after invalidation", value)
	}
}

func TestSettleRetriesExactlyOnce(t *testing.T) {
	e := NewEntry[int]("stats")
	gen, _ := e.Begin()

	calls := 0
	applied := e.Settle(context.Background(), gen, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("transient")
	})

	if !applied {
		t.Errorf("failed refresh should still settle the entry")
	}
	if calls != 2 {
		t.Errorf("fetch invoked %d times, want 2 (one retry)", calls)
	}
}

func TestSettleRetrySucceeds(t *testing.T) {
	e := NewEntry[int]("stats")
	gen, _ := e.Begin()

	calls := 0
	e.Settle(context.Background(), gen, func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 5, nil
	})

	value, _, err := e.Get()
	if err != nil {
		t.Errorf("err = %v, want nil after retry succeeded", err)
	}
	if value != 5 {
		t.Errorf("value = %d, want 5", value)
	}
}

func TestSettleDiscardsRetiredGeneration(t *testing.T) {
	e := NewEntry[int]("stats")
	gen, _ := e.Begin()
	e.Invalidate()

	applied := e.Settle(context.Background(), gen, func(context.Context) (int, error) {
		return 9, nil
	})

	if applied {
		t.Errorf("Settle on a retired generation should report discarded")
	}
}

func TestSettleNoRetryAfterContextCancel(t *testing.T) {
	e := NewEntry[int]("stats")
	gen, _ := e.Begin()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	e.Settle(ctx, gen, func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, context.Canceled
	})

	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1 (no retry after cancel)", calls)
	}
}
