package either

import (
	"fmt"
	"github.com/algebraic-go/algebra"
	"github.com/algebraic-go/algebra/internal"
)

type (
	// Either represents one of two values (left or right).  The case
	// is fixed at construction; operations never rewrite it, they
	// produce a new Either.  By convention the right case carries the
	// success value and the left case short-circuits.
	Either[L, R any] interface{}

	// right represents the right side of an Either.
	right[R any] struct {
		val R
	}

	// left represents the left side of an Either.
	left[L any] struct {
		val L
	}

	// AccessError signals case access on the wrong alternative.
	AccessError struct {
		Op   string
		Case string
		Val  any
	}
)

func (e *AccessError) Error() string {
	return fmt.Sprintf("either: %s on %s value %v", e.Op, e.Case, e.Val)
}

// Left returns a new Either with a left value.
func Left[L any](val L) left[L] {
	return left[L]{val}
}

// Right returns a new Either with a right value.
func Right[R any](val R) right[R] {
	return right[R]{val}
}

// Pure wraps a value in the success case (pure).
func Pure[R any](val R) right[R] {
	return right[R]{val}
}

// IsLeft reports whether e holds the left case.
func IsLeft[L, R any](e Either[L, R]) bool {
	_, ok := e.(left[L])
	return ok
}

// IsRight reports whether e holds the right case.
func IsRight[L, R any](e Either[L, R]) bool {
	_, ok := e.(right[R])
	return ok
}

// MustRight returns the right value.  Access on a left value is a
// programmer contract violation and panics with an *AccessError
// identifying the failed operation.
func MustRight[L, R any](e Either[L, R]) R {
	switch v := e.(type) {
	case right[R]:
		return v.val
	case left[L]:
		panic(&AccessError{"MustRight", "Left", v.val})
	default:
		panic(invalid[L, R](e))
	}
}

// MustLeft returns the left value, panicking on a right value.
func MustLeft[L, R any](e Either[L, R]) L {
	switch v := e.(type) {
	case left[L]:
		return v.val
	case right[R]:
		panic(&AccessError{"MustLeft", "Right", v.val})
	default:
		panic(invalid[L, R](e))
	}
}

// Seq (seq)
func Seq[L, R, R2 any](_ Either[L, R], e Either[L, R2]) Either[L, R2] {
	return e
}

// Map (map/fmap) transforms the right value and propagates a left
// value verbatim, never invoking f on it.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("fun cannot be nil")
	}
	if r, ok := e.(right[R]); ok {
		return right[R2]{f(r.val)}
	}
	return e
}

// MapLeft (mapLeft)
func MapLeft[L, L2, R any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("fun cannot be nil")
	}
	if l, ok := e.(left[L]); ok {
		return left[L2]{f(l.val)}
	}
	return e
}

// Apply (apply/<*>/ap) combines a wrapped function with a wrapped
// argument.  Any left operand short-circuits to the first left in
// evaluation order: a function-side left wins over an argument-side
// left.
func Apply[L, R, R2 any](e Either[L, func(R) R2], f Either[L, R]) Either[L, R2] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("f cannot be nil")
	}
	if r, ok := e.(right[func(R) R2]); ok {
		return Map[L, R, R2](f, r.val)
	}
	return e
}

// FlatMap (flatMap/bind/chain/liftM) sequences into f on a right
// value and propagates a left value untouched.
func FlatMap[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if e == nil {
		panic("e cannot be nil")
	}
	if f == nil {
		panic("fun cannot be nil")
	}
	if r, ok := e.(right[R]); ok {
		return f(r.val)
	}
	return e
}

// Join flattens one level of nesting.  An outer left propagates; an
// outer right yields its inner Either as-is, whichever case it holds.
func Join[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e == nil {
		panic("e cannot be nil")
	}
	if r, ok := e.(right[Either[L, R]]); ok {
		return r.val
	}
	return e
}

// Fold (fold/either)
func Fold[L, R, A any](e Either[L, R], l func(L) A, r func(R) A) A {
	if e == nil {
		panic("e cannot be nil")
	}
	var a A
	switch v := e.(type) {
	case left[L]:
		if l != nil {
			a = l(v.val)
		}
	case right[R]:
		if r != nil {
			a = r(v.val)
		}
	default:
		panic(invalid[L, R](e))
	}
	return a
}

// Match (fold/either)
func Match[L, R any](e Either[L, R], l func(L), r func(R)) {
	if e == nil {
		panic("e cannot be nil")
	}
	switch v := e.(type) {
	case left[L]:
		if l != nil {
			l(v.val)
		}
	case right[R]:
		if r != nil {
			r(v.val)
		}
	default:
		panic(invalid[L, R](e))
	}
}

type monoid[L, R any] struct {
	m algebra.Monoid[R]
}

// Monoid lifts a monoid on R to one on Either[L, R].  The identity is
// the success case of R's identity; any left operand short-circuits
// to the first left in argument order.
func Monoid[L, R any](m algebra.Monoid[R]) algebra.Monoid[Either[L, R]] {
	if m == nil {
		panic("nil monoid")
	}
	return monoid[L, R]{m}
}

func (l monoid[L, R]) Id() Either[L, R] {
	return right[R]{l.m.Id()}
}

func (l monoid[L, R]) Append(a, b Either[L, R]) Either[L, R] {
	ra, ok := a.(right[R])
	if !ok {
		return a
	}
	rb, ok := b.(right[R])
	if !ok {
		return b
	}
	return right[R]{l.m.Append(ra.val, rb.val)}
}

func invalid[L, R any](e any) string {
	return fmt.Sprintf("invalid Either[%s, %s]: %+v",
		internal.TypeName[L](), internal.TypeName[R](), e)
}
