package fn

// Unit is the zero-information success payload for operations that produce
// nothing, e.g. deletes. It has exactly one value and compares equal to
// itself by default.
type Unit struct{}

var UnitValue = Unit{}

// Do runs an effectful operation and lifts its error into a Result[Unit].
func Do(op func() error) Result[Unit] {
	if err := op(); err != nil {
		return Fail[Unit](err)
	}
	return Success(UnitValue)
}

// Zero returns the zero value of T. Go's compile-time zero values replace the
// dynamic default-per-type dispatch some ports of this pattern need.
func Zero[T any]() T {
	var zero T
	return zero
}

// Coalesce returns def when v is null-equivalent, v otherwise.
func Coalesce[T any](v T, def T) T {
	if IsNil(v) {
		return def
	}
	return v
}
