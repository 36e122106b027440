package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sprintboard/internal/platform/health"
	"github.com/jsamuelsen11/sprintboard/mocks"
)

// checkFunc adapts a function to ports.HealthChecker.
type checkFunc struct {
	name string
	fn   func(context.Context) error
}

func (c checkFunc) Name() string                          { return c.name }
func (c checkFunc) HealthCheck(ctx context.Context) error { return c.fn(ctx) }

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("connection refused")

	tests := []struct {
		name     string
		checkers map[string]error
	}{
		{name: "empty", checkers: map[string]error{}},
		{name: "all healthy", checkers: map[string]error{"database": nil, "session-api": nil}},
		{name: "one failing", checkers: map[string]error{"database": nil, "session-api": errRefused}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New(time.Second)
			for name, result := range tt.checkers {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return(name)
				c.EXPECT().HealthCheck(mock.Anything).Return(result)
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil, want non-nil map")
			}
			if len(got) != len(tt.checkers) {
				t.Fatalf("len(CheckAll()) = %d, want %d", len(got), len(tt.checkers))
			}
			for name, want := range tt.checkers {
				if !errors.Is(got[name], want) || (want == nil && got[name] != nil) {
					t.Errorf("%s = %v, want %v", name, got[name], want)
				}
			}
		})
	}
}

func TestCheckAll_HungCheckTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	r := health.New(20 * time.Millisecond)
	r.Register(checkFunc{name: "session-api", fn: func(context.Context) error {
		<-release
		return nil
	}})
	r.Register(checkFunc{name: "database", fn: func(context.Context) error { return nil }})

	start := time.Now()
	got := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll() took %v, want it bounded by the check timeout", elapsed)
	}
	if !errors.Is(got["session-api"], context.DeadlineExceeded) {
		t.Errorf("session-api = %v, want DeadlineExceeded", got["session-api"])
	}
	if got["database"] != nil {
		t.Errorf("database = %v, want nil", got["database"])
	}
}

func TestCheckAll_ChecksRunConcurrently(t *testing.T) {
	t.Parallel()

	const n = 4
	var arrived sync.WaitGroup
	arrived.Add(n)

	r := health.New(time.Second)
	for i := range n {
		r.Register(checkFunc{name: string(rune('a' + i)), fn: func(ctx context.Context) error {
			arrived.Done()
			arrived.Wait()
			return ctx.Err()
		}})
	}

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s = %v, want every check to run at once", name, err)
		}
	}
}

func TestCheckAll_CanceledParent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := health.New(time.Second)
	r.Register(checkFunc{name: "database", fn: func(ctx context.Context) error { return ctx.Err() }})

	if got := r.CheckAll(ctx)["database"]; !errors.Is(got, context.Canceled) {
		t.Errorf("database = %v, want context.Canceled", got)
	}
}

func TestRegister_ReplacesSameName(t *testing.T) {
	t.Parallel()

	errSecond := errors.New("second failure")

	r := health.New(0)
	r.Register(checkFunc{name: "database", fn: func(context.Context) error { return nil }})
	r.Register(checkFunc{name: "database", fn: func(context.Context) error { return errSecond }})

	got := r.CheckAll(context.Background())
	if len(got) != 1 {
		t.Fatalf("len(CheckAll()) = %d, want 1", len(got))
	}
	if !errors.Is(got["database"], errSecond) {
		t.Errorf("database = %v, want the replacement's result", got["database"])
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New(time.Second)
	var wg sync.WaitGroup
	for i := range 40 {
		if i%2 == 0 {
			wg.Go(func() {
				r.Register(checkFunc{name: "database", fn: func(context.Context) error { return nil }})
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
