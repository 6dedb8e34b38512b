package fn

// Option represents a value that may be absent.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some wraps v. A null-equivalent v collapses to None, so a Some can never
// hold an absent value.
func Some[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, isSome: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfPtr lifts a possibly-nil pointer into an Option over the pointed-to value.
func OfPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

func (o Option[T]) Value() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) OrElse(def T) T {
	if o.isSome {
		return o.value
	}
	return def
}

func (o Option[T]) Ptr() *T {
	if o.isSome {
		return &o.value
	}
	return nil
}

// MatchOption is the single dispatch point for Option; the other operators
// are defined in terms of it.
func MatchOption[T, R any](o Option[T], onSome func(v T) R, onNone func() R) R {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

func MapOption[T, R any](o Option[T], f func(v T) R) Option[R] {
	return MatchOption(o,
		func(v T) Option[R] { return Some(f(v)) },
		None[R])
}

func BindOption[T, R any](o Option[T], f func(v T) Option[R]) Option[R] {
	return MatchOption(o, f, None[R])
}
