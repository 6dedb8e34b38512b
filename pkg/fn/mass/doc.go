// Package mass implements channel-based counterparts of the solo primitives.
// A pending value is a one-shot receive channel; Await settles it before any
// continuation runs, so the asynchronous operators preserve exactly the
// synchronous semantics once their inputs have resolved.
//
// Unfolding waits for every pending result to settle (no short-circuit) and
// reports the first failure by sequence position. Run/Turnout/Finalizing pump
// whole streams of results through engines on worker lines.
package mass
