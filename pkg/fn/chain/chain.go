package chain

import (
	"context"

	"github.com/ib-77/fn/pkg/fn"
	"github.com/ib-77/fn/pkg/fn/solo"
)

// Chain wraps a fn.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result fn.Result[T]
}

// Start creates a new chain from a fn.Result
func Start[T any](ctx context.Context, result fn.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: fn.Success(value),
	}
}

// Result returns the underlying fn.Result
func (c *Chain[T]) Result() fn.Result[T] {
	return c.result
}

// Then chains a function that returns fn.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) fn.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Bind(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapErr translates the error of a failed chain
func (c *Chain[T]) MapErr(onFailure func(context.Context, error) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.MapError(c.ctx, c.result, onFailure),
	}
}

// Recover chains over the failure channel, leaving a success untouched
func (c *Chain[T]) Recover(onFailure func(context.Context, error) fn.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.BindError(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result fn.Result[T]) {
				if result.IsSuccess() {
					onSuccess(ctx, result.Result())
				}
			}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
