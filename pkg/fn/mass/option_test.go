package mass

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/fn/pkg/fn"
)

func settledOption[T any](o fn.Option[T]) <-chan fn.Option[T] {
	ch := make(chan fn.Option[T], 1)
	ch <- o
	close(ch)
	return ch
}

func TestAwaitOption_ClosedWithoutValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := make(chan fn.Option[int])
	close(ch)

	if o := AwaitOption(ctx, ch); o.IsSome() {
		t.Fatalf("expected none for a channel closed without a value")
	}
}

func TestMatchingOption(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := <-MatchingOption(ctx, settledOption(fn.Some(5)),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context) string { return "none" })
	if got != "5" {
		t.Fatalf("expected '5', got: %q", got)
	}

	got = <-MatchingOption(ctx, settledOption(fn.None[int]()),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context) string { return "none" })
	if got != "none" {
		t.Fatalf("expected 'none', got: %q", got)
	}
}

func TestMappingOption(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := <-MappingOption(ctx, settledOption(fn.Some(2)),
		func(_ context.Context, v int) int { return v * 4 })
	if out.IsNone() || out.OrElse(0) != 8 {
		t.Fatalf("expected some with 8")
	}

	called := false
	none := <-MappingOption(ctx, settledOption(fn.None[int]()),
		func(_ context.Context, v int) int {
			called = true
			return v
		})
	if none.IsSome() || called {
		t.Fatalf("expected none without invoking the continuation")
	}
}

func TestBindingOption(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := <-BindingOption(ctx, settledOption(fn.Some(9)),
		func(_ context.Context, v int) fn.Option[int] {
			if v < 0 {
				return fn.None[int]()
			}
			return fn.Some(v + 1)
		})
	if out.IsNone() || out.OrElse(0) != 10 {
		t.Fatalf("expected some with 10")
	}
}

func TestMatchingOption_CancelledAntecedentHitsNoneBranch(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := <-MatchingOption(ctx, make(chan fn.Option[int]),
		func(_ context.Context, v int) string { return "some" },
		func(_ context.Context) string { return "none" })
	if got != "none" {
		t.Fatalf("expected cancelled antecedent to settle as none, got: %q", got)
	}
}
