package fn

// Identity is the trivial single-value container: no failure channel, no nil
// collapse. It is the degenerate baseline for the map pattern.
type Identity[T any] struct {
	value T
}

func ToIdentity[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

func (i Identity[T]) Value() T {
	return i.value
}

func (i Identity[T]) Map(f func(v T) T) Identity[T] {
	return ToIdentity(f(i.value))
}

func MapIdentity[In, Out any](i Identity[In], f func(v In) Out) Identity[Out] {
	return ToIdentity(f(i.value))
}
