package algebra

import (
	"github.com/imdario/mergo"
	"reflect"
)

type (
	// Copyable is implemented by types that control their own
	// duplication.
	Copyable[T any] interface {
		Copy() T
	}

	// Equatable is implemented by types that control their own
	// equality.
	Equatable[T any] interface {
		Equal(T) bool
	}
)

// CopyOf duplicates a value.  Types implementing Copyable decide the
// result themselves.  Struct and map shaped values are duplicated
// field-wise; anything else is a plain value copy, so pointer-bearing
// types that need deeper treatment should implement Copyable.
func CopyOf[T any](v T) T {
	if c, ok := any(v).(Copyable[T]); ok {
		return c.Copy()
	}
	var out T
	if err := mergo.Merge(&out, v); err != nil {
		return v
	}
	return out
}

// EqualOf compares two values, deferring to Equatable when implemented
// and falling back to deep equality.
func EqualOf[T any](a, b T) bool {
	if e, ok := any(a).(Equatable[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
