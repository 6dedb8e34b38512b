package mass

import (
	"context"
	"sync"

	"github.com/ib-77/fn/pkg/fn"
	"github.com/ib-77/fn/pkg/fn/solo"
)

// Engine settles one result through a combinator and yields the outcome as a
// pending result.
type Engine[In, Out any] func(ctx context.Context, input fn.Result[In]) <-chan fn.Result[Out]

// Run pumps a stream of results through engine on the given number of worker
// lines, preserving the element type.
func Run[T any](ctx context.Context, inputCh <-chan fn.Result[T],
	engine Engine[T, T], lines int) <-chan fn.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout is Run for engines that change the element type.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan fn.Result[In],
	engine Engine[In, Out], lines int) <-chan fn.Result[Out] {

	out := make(chan fn.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func locomotive[In, Out any](ctx context.Context, inputCh <-chan fn.Result[In],
	outCh chan<- fn.Result[Out], engine Engine[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					return
				case outCh <- pr:
				}
			}
		}
	}
}

// Finalizing collapses a stream of results into a stream of plain values by
// dispatching each element through solo.Match.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan fn.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					return
				case out <- solo.Match(ctx, in, onSuccess, onFailure):
				}
			}
		}
	}()

	return out
}

// Engine adapters over the single-result combinators.

func MapEngine[In, Out any](onSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input fn.Result[In]) <-chan fn.Result[Out] {
		return Mapping(ctx, Settled(input), onSuccess)
	}
}

func BindEngine[In, Out any](onSuccess func(ctx context.Context, r In) fn.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input fn.Result[In]) <-chan fn.Result[Out] {
		return Binding(ctx, Settled(input), onSuccess)
	}
}

func TryEngine[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input fn.Result[In]) <-chan fn.Result[Out] {
		return Trying(ctx, Settled(input), onTryExecute)
	}
}

func ValidateEngine[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return func(ctx context.Context, input fn.Result[T]) <-chan fn.Result[T] {
		out := make(chan fn.Result[T], 1)
		go func() {
			defer close(out)
			out <- solo.AndValidate(ctx, input, validate)
		}()
		return out
	}
}

func RecoverEngine[T any](onFailure func(ctx context.Context, err error) fn.Result[T]) Engine[T, T] {
	return func(ctx context.Context, input fn.Result[T]) <-chan fn.Result[T] {
		return Recovering(ctx, Settled(input), onFailure)
	}
}
