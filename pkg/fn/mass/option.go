package mass

import (
	"context"

	"github.com/ib-77/fn/pkg/fn"
)

// AwaitOption blocks until the pending option settles. Options carry no
// failure channel, so a faulted or cancelled antecedent settles as None and
// the some-continuation is never invoked for it.
func AwaitOption[T any](ctx context.Context, pending <-chan fn.Option[T]) fn.Option[T] {
	select {
	case o, ok := <-pending:
		if !ok {
			return fn.None[T]()
		}
		return o
	case <-ctx.Done():
		return fn.None[T]()
	}
}

func MatchingOption[T, R any](ctx context.Context, pending <-chan fn.Option[T],
	onSome func(ctx context.Context, v T) R,
	onNone func(ctx context.Context) R) <-chan R {

	out := make(chan R, 1)

	go func() {
		defer close(out)
		out <- fn.MatchOption(AwaitOption(ctx, pending),
			func(v T) R { return onSome(ctx, v) },
			func() R { return onNone(ctx) })
	}()

	return out
}

func MappingOption[T, R any](ctx context.Context, pending <-chan fn.Option[T],
	onSome func(ctx context.Context, v T) R) <-chan fn.Option[R] {

	out := make(chan fn.Option[R], 1)

	go func() {
		defer close(out)
		out <- fn.MapOption(AwaitOption(ctx, pending),
			func(v T) R { return onSome(ctx, v) })
	}()

	return out
}

func BindingOption[T, R any](ctx context.Context, pending <-chan fn.Option[T],
	onSome func(ctx context.Context, v T) fn.Option[R]) <-chan fn.Option[R] {

	out := make(chan fn.Option[R], 1)

	go func() {
		defer close(out)
		out <- fn.BindOption(AwaitOption(ctx, pending),
			func(v T) fn.Option[R] { return onSome(ctx, v) })
	}()

	return out
}
