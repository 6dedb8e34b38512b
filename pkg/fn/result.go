package fn

import (
	"time"

	"github.com/google/uuid"
)

// Result is a success-or-failure container. A success holds a data value, a
// failure holds an error; both carry a human-readable message. Values are
// immutable once constructed.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	message   string
	err       error
	isSuccess bool
}

// Success wraps r as a successful Result. A null-equivalent r is not a
// success: it collapses to a Failure with a synthesized default error, the
// same rule Some applies for Option.
func Success[T any](r T) Result[T] {
	return SuccessWithMessage(r, DefaultSuccessMessage)
}

func SuccessWithMessage[T any](r T, message string) Result[T] {
	if IsNil(r) {
		return Fail[T](FromMessage(DefaultFailureMessage))
	}
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Result[T]{
		data:      r,
		message:   message,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps err as a failed Result. A nil err is replaced with a logical
// error built from the default failure message.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = FromMessage(DefaultFailureMessage)
	}
	return FailWithMessage[T](err, err.Error())
}

func FailWithMessage[T any](err error, message string) Result[T] {
	if IsNil(err) {
		err = FromMessage(message)
	}
	if message == "" {
		message = DefaultFailureMessage
	}
	return Result[T]{
		err:       err,
		message:   message,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg fails with a logical error synthesized from message.
func FailMsg[T any](message string) Result[T] {
	return Fail[T](FromMessage(message))
}

// FailFrom re-types a failed Result, preserving its error, message, identity
// and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		message:   from.message,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Of lifts Go's (value, error) pair into a Result.
func Of[T any](r T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(r)
}

// FromOption converts an Option into a Result, failing with err when absent.
func FromOption[T any](o Option[T], err error) Result[T] {
	if o.IsSome() {
		return Success(o.value)
	}
	return Fail[T](err)
}

func (r Result[T]) Result() T {
	return r.data
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Message() string {
	return r.message
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) HasResult() bool {
	return r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// ToOption discards the failure channel.
func (r Result[T]) ToOption() Option[T] {
	if r.isSuccess {
		return Some(r.data)
	}
	return None[T]()
}

// Equal reports structural equality on data, message and error. Identity and
// creation time are diagnostics and do not participate.
func Equal[T comparable](a, b Result[T]) bool {
	if a.isSuccess != b.isSuccess || a.message != b.message || a.data != b.data {
		return false
	}
	return errorsEqual(a.err, b.err)
}

func errorsEqual(a, b error) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.Error() == b.Error()
}
