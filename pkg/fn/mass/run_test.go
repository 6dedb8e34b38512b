package mass

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/ib-77/fn/pkg/fn"
)

func TestRun_MapEngine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromChanMany(ctx,
		Run(ctx,
			ToChanManyResults(ctx, []int{1, 2, 3, 4}),
			MapEngine(func(_ context.Context, r int) int { return r * r }),
			2))

	if len(out) != 4 {
		t.Fatalf("expected 4 results, got: %d", len(out))
	}

	values := make([]int, 0, len(out))
	for _, r := range out {
		if !r.IsSuccess() {
			t.Fatalf("expected success, got: %v", r.Err())
		}
		values = append(values, r.Result())
	}
	sort.Ints(values)
	for i, want := range []int{1, 4, 9, 16} {
		if values[i] != want {
			t.Fatalf("expected squares, got: %v", values)
		}
	}
}

func TestTurnout_TryEngine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromChanMany(ctx,
		Turnout(ctx,
			ToChanManyResults(ctx, []string{"1", "bad", "3"}),
			TryEngine(func(_ context.Context, s string) (int, error) {
				return strconv.Atoi(s)
			}),
			2))

	failures := 0
	for _, r := range out {
		if r.IsFailure() {
			failures++
		}
	}
	if len(out) != 3 || failures != 1 {
		t.Fatalf("expected 3 results with 1 failure, got: %d results, %d failures", len(out), failures)
	}
}

func TestTurnout_ValidateThenBind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	validated := Run(ctx,
		ToChanManyResults(ctx, []string{"alpha", "", "beta"}),
		ValidateEngine(func(_ context.Context, s string) (bool, string) {
			if s == "" {
				return false, "empty input"
			}
			return true, ""
		}),
		1)

	out := FromChanMany(ctx,
		Turnout(ctx, validated,
			BindEngine(func(_ context.Context, s string) fn.Result[int] {
				return fn.Success(len(s))
			}),
			1))

	if len(out) != 3 {
		t.Fatalf("expected 3 results, got: %d", len(out))
	}

	failures := 0
	for _, r := range out {
		if r.IsFailure() {
			failures++
			if r.Err().Error() != "empty input" {
				t.Fatalf("expected validation error forwarded, got: %v", r.Err())
			}
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly 1 failure, got: %d", failures)
	}
}

func TestRecoverEngine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan fn.Result[int], 2)
	in <- fn.Fail[int](errors.New("transient"))
	in <- fn.Success(5)
	close(in)

	out := FromChanMany(ctx,
		Run(ctx, in,
			RecoverEngine(func(_ context.Context, err error) fn.Result[int] {
				return fn.Success(-1)
			}),
			1))

	if len(out) != 2 {
		t.Fatalf("expected 2 results, got: %d", len(out))
	}
	for _, r := range out {
		if r.IsFailure() {
			t.Fatalf("expected all failures recovered, got: %v", r.Err())
		}
	}
}

func TestFinalizing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan fn.Result[int], 3)
	in <- fn.Success(1)
	in <- fn.FailMsg[int]("bad")
	in <- fn.Success(3)
	close(in)

	out := FromChanMany(ctx,
		Finalizing(ctx, in,
			func(_ context.Context, r int) string { return "val:" + strconv.Itoa(r) },
			func(_ context.Context, err error) string { return "err" }))

	if len(out) != 3 {
		t.Fatalf("expected 3 values, got: %d", len(out))
	}
	if out[0] != "val:1" || out[1] != "err" || out[2] != "val:3" {
		t.Fatalf("expected finalized values in order, got: %v", out)
	}
}
