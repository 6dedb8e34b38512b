package mass

import (
	"context"
	"sync"

	"github.com/ib-77/fn/pkg/fn"
	"github.com/ib-77/fn/pkg/fn/solo"
)

// Settled lifts an already-settled result into a pending one.
func Settled[T any](r fn.Result[T]) <-chan fn.Result[T] {
	out := make(chan fn.Result[T], 1)
	out <- r
	close(out)
	return out
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanMany(ctx, []T{value})
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResult lifts a single value into a pending successful result.
func ToChanResult[T any](ctx context.Context, value T) <-chan fn.Result[T] {
	return ToChanManyResults(ctx, []T{value})
}

// ToChanManyResults lifts values into a stream of successful results.
func ToChanManyResults[T any](ctx context.Context, values []T) <-chan fn.Result[T] {
	in := make(chan fn.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- solo.Succeed(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
