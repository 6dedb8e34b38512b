package fn

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is null-equivalent: nil itself, or a nil pointer,
// interface, map, slice, channel or function. Non-nilable kinds are never
// null-equivalent.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
