package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

const testFetchValue = "hello"

func newCtx() context.Context {
	return WithRequestContext(context.Background(), New())
}

func TestGetOrFetch_CacheMiss(t *testing.T) {
	t.Parallel()
	ctx := newCtx()
	calls := 0

	val, err := GetOrFetch(ctx, "key", func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch() error = %v", err)
	}
	if val != testFetchValue {
		t.Errorf("GetOrFetch() = %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CacheHit(t *testing.T) {
	t.Parallel()
	ctx := newCtx()
	calls := 0
	fetch := func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	}

	for range 3 {
		if _, err := GetOrFetch(ctx, "key", fetch); err != nil {
			t.Fatalf("GetOrFetch() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	ctx := newCtx()
	errFetch := errors.New("fetch failed")
	calls := 0
	fetch := func(_ context.Context) (int, error) {
		calls++
		return 0, errFetch
	}

	for range 2 {
		if _, err := GetOrFetch(ctx, "key", fetch); !errors.Is(err, errFetch) {
			t.Fatalf("GetOrFetch() error = %v, want errFetch", err)
		}
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	ctx := newCtx()

	if _, err := GetOrFetch(ctx, "key", func(_ context.Context) (string, error) { return "x", nil }); err != nil {
		t.Fatalf("GetOrFetch() error = %v", err)
	}
	_, err := GetOrFetch(ctx, "key", func(_ context.Context) (int, error) { return 1, nil })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetOrFetch() error = %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_WithoutRequestContext(t *testing.T) {
	t.Parallel()
	calls := 0
	fetch := func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	}

	for range 2 {
		if _, err := GetOrFetch(context.Background(), "key", fetch); err != nil {
			t.Fatalf("GetOrFetch() error = %v", err)
		}
	}
	if calls != 2 {
		t.Errorf("fetchFn called %d times, want 2 without memoization", calls)
	}
}

func TestGetOrFetch_PassesCallerContext(t *testing.T) {
	t.Parallel()

	type marker struct{}
	ctx := context.WithValue(newCtx(), marker{}, "yes")

	_, err := GetOrFetch(ctx, "key", func(got context.Context) (string, error) {
		if got.Value(marker{}) != "yes" {
			t.Error("fetchFn did not receive the caller's context")
		}
		return "", nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch() error = %v", err)
	}
}

func TestGetOrFetch_ConcurrentUse(t *testing.T) {
	t.Parallel()
	ctx := newCtx()

	var calls atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = GetOrFetch(ctx, "key", func(_ context.Context) (int, error) {
				calls.Add(1)
				return 1, nil
			})
		}()
	}
	wg.Wait()

	if calls.Load() < 1 {
		t.Error("fetchFn never called")
	}
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	ctx := newCtx()
	calls := map[string]int{}
	fetch := func(key string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			calls[key]++
			return key, nil
		}
	}

	_, _ = GetOrFetch(ctx, "membership:1:2", fetch("membership:1:2"))
	_, _ = GetOrFetch(ctx, "membership:1:3", fetch("membership:1:3"))
	_, _ = GetOrFetch(ctx, "board:1", fetch("board:1"))

	Invalidate(ctx, "membership:1:")

	_, _ = GetOrFetch(ctx, "membership:1:2", fetch("membership:1:2"))
	_, _ = GetOrFetch(ctx, "board:1", fetch("board:1"))

	if calls["membership:1:2"] != 2 {
		t.Errorf("membership fetched %d times, want 2 after invalidation", calls["membership:1:2"])
	}
	if calls["board:1"] != 1 {
		t.Errorf("board fetched %d times, want 1 (not invalidated)", calls["board:1"])
	}

	// No-op without a RequestContext.
	Invalidate(context.Background(), "membership:")
}

func TestDataProvider_Memoizes(t *testing.T) {
	t.Parallel()
	ctx := newCtx()
	calls := 0

	p := NewDataProvider("answer", func(_ context.Context) (int, error) {
		calls++
		return 42, nil
	})

	for range 2 {
		v, err := p.Get(ctx)
		if err != nil || v != 42 {
			t.Fatalf("Get() = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("fetchFn called %d times, want 1", calls)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if FromContext(context.Background()) != nil {
		t.Error("FromContext(background) != nil")
	}
	rc := New()
	if FromContext(WithRequestContext(context.Background(), rc)) != rc {
		t.Error("FromContext() did not return the stored RequestContext")
	}
}
