package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/fn/pkg/fn"
)

func Succeed[T any](input T) fn.Result[T] {
	return fn.Success(input)
}

func Fail[T any](err error) fn.Result[T] {
	return fn.Fail[T](err)
}

// Match is the universal dispatch primitive: exactly one of the two handlers
// runs, with the context threaded through. Every other combinator in this
// package routes through it.
func Match[In, Out any](ctx context.Context, input fn.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}

// Map transforms the success value. A failure passes through re-typed with
// its error, message and identity intact. A null-equivalent output of
// onSuccess collapses the mapped result to a failure, per fn.Success.
func Map[In, Out any](ctx context.Context, input fn.Result[In],
	onSuccess func(ctx context.Context, r In) Out) fn.Result[Out] {

	return Match(ctx, input,
		func(ctx context.Context, r In) fn.Result[Out] {
			return fn.Success(onSuccess(ctx, r))
		},
		func(_ context.Context, _ error) fn.Result[Out] {
			return fn.FailFrom[In, Out](input)
		})
}

// Bind chains a dependent fallible step. A failure short-circuits without
// invoking onSuccess and keeps its original error.
func Bind[In, Out any](ctx context.Context, input fn.Result[In],
	onSuccess func(ctx context.Context, r In) fn.Result[Out]) fn.Result[Out] {

	return Match(ctx, input, onSuccess,
		func(_ context.Context, _ error) fn.Result[Out] {
			return fn.FailFrom[In, Out](input)
		})
}

// MapError translates the failure channel between error taxonomies; a success
// passes through untouched.
func MapError[T any](ctx context.Context, input fn.Result[T],
	onFailure func(ctx context.Context, err error) error) fn.Result[T] {

	return Match(ctx, input,
		func(_ context.Context, _ T) fn.Result[T] {
			return input
		},
		func(ctx context.Context, err error) fn.Result[T] {
			return fn.Fail[T](onFailure(ctx, err))
		})
}

// BindError chains over the failure channel for recovery patterns; a success
// passes through untouched.
func BindError[T any](ctx context.Context, input fn.Result[T],
	onFailure func(ctx context.Context, err error) fn.Result[T]) fn.Result[T] {

	return Match(ctx, input,
		func(_ context.Context, _ T) fn.Result[T] {
			return input
		},
		onFailure)
}

// Try lifts Go's (value, error) idiom into the result channel.
func Try[In, Out any](ctx context.Context, input fn.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) fn.Result[Out] {

	return Bind(ctx, input, func(ctx context.Context, r In) fn.Result[Out] {
		out, err := onTryExecute(ctx, r)
		if err != nil {
			return fn.Fail[Out](err)
		}
		return fn.Success(out)
	})
}

// AsResult runs op exactly once, converting any panic into a failure wrapping
// the fault. This is the sole boundary between panics and the result channel;
// no retry or timeout policy lives here.
func AsResult[T any](ctx context.Context, op func(ctx context.Context) fn.Result[T]) (res fn.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = fn.Fail[T](fn.FromFault(asFault(r)))
		}
	}()
	return op(ctx)
}

// AsResultWith is AsResult with a caller-supplied fault translator.
func AsResultWith[T any](ctx context.Context, op func(ctx context.Context) fn.Result[T],
	onError func(fault error) error) (res fn.Result[T]) {

	defer func() {
		if r := recover(); r != nil {
			res = fn.Fail[T](onError(asFault(r)))
		}
	}()
	return op(ctx)
}

// AsResultOf runs a plain value-producing op under the same panic boundary.
func AsResultOf[T any](ctx context.Context, op func(ctx context.Context) T) fn.Result[T] {
	return AsResult(ctx, func(ctx context.Context) fn.Result[T] {
		return fn.Success(op(ctx))
	})
}

func asFault(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// Unfold folds a sequence of results into a result of a sequence. The first
// failure by sequence position wins; otherwise all data values are collected
// in their original order.
func Unfold[T any](results []fn.Result[T]) fn.Result[[]T] {
	data := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return fn.FailFrom[T, []T](r)
		}
		data = append(data, r.Result())
	}
	return fn.Success(data)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) fn.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input fn.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) fn.Result[T] {

	return Bind(ctx, input, func(ctx context.Context, in T) fn.Result[T] {
		if valid, errMsg := validate(ctx, in); !valid {
			return fn.Fail[T](fn.FromMessage(errMsg))
		}
		return input
	})
}

func Tee[T any](ctx context.Context, input fn.Result[T],
	onSuccess func(ctx context.Context, r fn.Result[T])) fn.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}
