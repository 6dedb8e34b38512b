// Package chain provides a fluent wrapper around fn.Result[T]
// for building synchronous pipelines using solo primitives.
//
// It composes functions like Bind, Map, Try, Tee, and Match behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a fn.Result[T] or value
// - Then: bind to a new fn.Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - MapErr/Recover: translate or recover the failure channel
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
