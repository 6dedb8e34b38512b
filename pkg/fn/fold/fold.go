package fold

import (
	"context"

	"github.com/ib-77/fn/pkg/fn"
	"github.com/ib-77/fn/pkg/fn/solo"
)

// Fold accumulates left to right, visiting every element exactly once in
// sequence order.
func Fold[T, R any](values []T, seed R, f func(v T, acc R) R) R {
	acc := seed
	for _, v := range values {
		acc = f(v, acc)
	}
	return acc
}

// FoldWithIndex is Fold with the zero-based element position passed to f.
func FoldWithIndex[T, R any](values []T, seed R, f func(i int, v T, acc R) R) R {
	acc := seed
	for i, v := range values {
		acc = f(i, v, acc)
	}
	return acc
}

// FoldResults unfolds the results first; the accumulation only runs when
// every element is a success.
func FoldResults[T, R any](ctx context.Context, results []fn.Result[T], seed R, f func(v T, acc R) R) fn.Result[R] {
	return solo.Bind(ctx, solo.Unfold(results),
		func(_ context.Context, values []T) fn.Result[R] {
			return fn.Success(Fold(values, seed, f))
		})
}

// Folding exhausts the source channel, then emits the single accumulated
// value. Cancellation stops consumption and emits the accumulation so far.
func Folding[T, R any](ctx context.Context, in <-chan T, seed R, f func(v T, acc R) R) <-chan R {
	out := make(chan R, 1)

	go func() {
		defer close(out)

		acc := seed
		for {
			select {
			case <-ctx.Done():
				out <- acc
				return
			case v, ok := <-in:
				if !ok {
					out <- acc
					return
				}
				acc = f(v, acc)
			}
		}
	}()

	return out
}

// FoldingWithIndex is Folding with the zero-based element position passed to f.
func FoldingWithIndex[T, R any](ctx context.Context, in <-chan T, seed R, f func(i int, v T, acc R) R) <-chan R {
	out := make(chan R, 1)

	go func() {
		defer close(out)

		acc := seed
		i := 0
		for {
			select {
			case <-ctx.Done():
				out <- acc
				return
			case v, ok := <-in:
				if !ok {
					out <- acc
					return
				}
				acc = f(i, v, acc)
				i++
			}
		}
	}()

	return out
}
