// Package solo contains single-value, synchronous primitives that operate on
// fn.Result[T] and form the building blocks for error-aware pipelines without
// channels.
//
// Highlights:
// - Succeed/Fail: construct fn.Result[T]
// - Match: dispatch to exactly one of two handlers; every other combinator routes through it
// - Map/MapError: transform the success value or translate the error
// - Bind/BindError: chain dependent steps over the success or failure channel
// - Try: call a function (Out, error) and convert error to failure
// - AsResult/AsResultWith/AsResultOf: run an operation under a panic boundary
// - Unfold: collapse a slice of results into a result of a slice
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Tee: side-effect helper
package solo
