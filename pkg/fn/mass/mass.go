package mass

import (
	"context"
	"sync"

	"github.com/ib-77/fn/pkg/fn"
	"github.com/ib-77/fn/pkg/fn/solo"
)

// Await blocks until the pending result settles. A channel closed without
// delivering a value is an antecedent fault, surfaced as a failure; context
// cancellation surfaces as a failure wrapping ctx.Err(). No continuation in
// this package ever runs against an unsettled antecedent.
func Await[T any](ctx context.Context, pending <-chan fn.Result[T]) fn.Result[T] {
	select {
	case r, ok := <-pending:
		if !ok {
			return fn.Fail[T](fn.FromMessage("pending result settled without a value"))
		}
		return r
	case <-ctx.Done():
		return fn.Fail[T](fn.FromFault(ctx.Err()))
	}
}

// Matching settles the pending result, then dispatches it through solo.Match.
// A faulted antecedent reaches onFailure as a fault-wrapping error.
func Matching[In, Out any](ctx context.Context, pending <-chan fn.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)
		out <- solo.Match(ctx, Await(ctx, pending), onSuccess, onFailure)
	}()

	return out
}

func Mapping[In, Out any](ctx context.Context, pending <-chan fn.Result[In],
	onSuccess func(ctx context.Context, r In) Out) <-chan fn.Result[Out] {

	out := make(chan fn.Result[Out], 1)

	go func() {
		defer close(out)
		out <- solo.Map(ctx, Await(ctx, pending), onSuccess)
	}()

	return out
}

func Binding[In, Out any](ctx context.Context, pending <-chan fn.Result[In],
	onSuccess func(ctx context.Context, r In) fn.Result[Out]) <-chan fn.Result[Out] {

	out := make(chan fn.Result[Out], 1)

	go func() {
		defer close(out)
		out <- solo.Bind(ctx, Await(ctx, pending), onSuccess)
	}()

	return out
}

func MapErroring[T any](ctx context.Context, pending <-chan fn.Result[T],
	onFailure func(ctx context.Context, err error) error) <-chan fn.Result[T] {

	out := make(chan fn.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.MapError(ctx, Await(ctx, pending), onFailure)
	}()

	return out
}

// Recovering is the asynchronous BindError: chaining over the failure channel.
func Recovering[T any](ctx context.Context, pending <-chan fn.Result[T],
	onFailure func(ctx context.Context, err error) fn.Result[T]) <-chan fn.Result[T] {

	out := make(chan fn.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.BindError(ctx, Await(ctx, pending), onFailure)
	}()

	return out
}

func Trying[In, Out any](ctx context.Context, pending <-chan fn.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan fn.Result[Out] {

	out := make(chan fn.Result[Out], 1)

	go func() {
		defer close(out)
		out <- solo.Try(ctx, Await(ctx, pending), onTryExecute)
	}()

	return out
}

// Unfolding waits for ALL pending results to settle before deciding the
// aggregate outcome. There is no short-circuit: a failure does not cancel its
// siblings, and the failure that wins is the first by sequence position, not
// by settlement time.
func Unfolding[T any](ctx context.Context, pending []<-chan fn.Result[T]) <-chan fn.Result[[]T] {
	out := make(chan fn.Result[[]T], 1)

	go func() {
		defer close(out)

		settled := make([]fn.Result[T], len(pending))
		wg := &sync.WaitGroup{}

		for i, ch := range pending {
			i, ch := i, ch
			wg.Add(1)
			go func() {
				defer wg.Done()
				settled[i] = Await(ctx, ch)
			}()
		}

		wg.Wait()
		out <- solo.Unfold(settled)
	}()

	return out
}
