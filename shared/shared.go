package shared

import (
	"fmt"
	"github.com/algebraic-go/algebra"
	"github.com/algebraic-go/algebra/internal"
)

type (
	// Ptr holds zero or one value of T under shared ownership.
	// Copying a Ptr is O(1) and yields a co-owner of the same storage:
	// every copy observes the same underlying value.
	Ptr[T any] struct {
		ref *T
	}
)

// New wraps a value in a newly allocated, non-empty owner (pure).
func New[T any](val T) Ptr[T] {
	return Ptr[T]{&val}
}

// Empty returns an owner holding nothing.
func Empty[T any]() Ptr[T] {
	return Ptr[T]{}
}

// Fail is the alternative-monoid failure value: an empty owner.
func Fail[T any]() Ptr[T] {
	return Ptr[T]{}
}

func (p Ptr[T]) IsEmpty() bool {
	return p.ref == nil
}

// Get returns the owned value and panics when the owner is empty.
// Emptiness is valid input to every instance operation; only direct
// access treats it as a contract violation.
func (p Ptr[T]) Get() T {
	if p.ref == nil {
		panic(fmt.Sprintf("shared: Get on empty Ptr[%s]", internal.TypeName[T]()))
	}
	return *p.ref
}

func (p Ptr[T]) TryGet() (T, bool) {
	if p.ref == nil {
		var zero T
		return zero, false
	}
	return *p.ref, true
}

// Shares reports whether two owners co-own the same storage.
func (p Ptr[T]) Shares(other Ptr[T]) bool {
	return p.ref != nil && p.ref == other.ref
}

// OrElse returns p when non-empty and other otherwise.  The chosen
// side is returned as-is (a reference, not a new value) and requires
// no capability of T.
func (p Ptr[T]) OrElse(other Ptr[T]) Ptr[T] {
	if p.ref != nil {
		return p
	}
	return other
}

// Equal compares presence and, when both are present, the owned
// values.
func (p Ptr[T]) Equal(other Ptr[T]) bool {
	if (p.ref == nil) != (other.ref == nil) {
		return false
	}
	if p.ref == nil {
		return true
	}
	return algebra.EqualOf(*p.ref, *other.ref)
}

type monoid[T any] struct {
	m algebra.Monoid[T]
}

// Monoid lifts a monoid on T to one on Ptr[T].  The absence of a
// Monoid[T] instance means no Monoid[Ptr[T]] can be built, so the
// lift is only available when T itself carries the capability.
func Monoid[T any](m algebra.Monoid[T]) algebra.Monoid[Ptr[T]] {
	if m == nil {
		panic("nil monoid")
	}
	return monoid[T]{m}
}

func (monoid[T]) Id() Ptr[T] {
	return Ptr[T]{}
}

// Append combines two owners under T's monoid.  When exactly one side
// is present that operand is returned verbatim; co-owners keep seeing
// the same storage.  Only the both-present case allocates.
func (l monoid[T]) Append(a, b Ptr[T]) Ptr[T] {
	if a.ref != nil {
		if b.ref != nil {
			return New(l.m.Append(*a.ref, *b.ref))
		}
		return a
	}
	return b
}

// Map returns a new owner holding f of the owned value, or an empty
// owner of the target type.
func Map[T, U any](p Ptr[T], f func(T) U) Ptr[U] {
	if f == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return Ptr[U]{}
	}
	return New(f(*p.ref))
}

// FlatMap is the primitive sequencing operation: the owner produced
// by f is returned directly, never re-wrapped.
func FlatMap[T, U any](p Ptr[T], f func(T) Ptr[U]) Ptr[U] {
	if f == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return Ptr[U]{}
	}
	return f(*p.ref)
}

// Join flattens one level of nesting.
func Join[T any](p Ptr[Ptr[T]]) Ptr[T] {
	return FlatMap(p, func(inner Ptr[T]) Ptr[T] {
		return inner
	})
}

// Apply applies an owned function to an owned argument, short
// circuiting to empty as soon as either side is empty.
func Apply[T, U any](pf Ptr[func(T) U], pa Ptr[T]) Ptr[U] {
	return FlatMap(pf, func(f func(T) U) Ptr[U] {
		return Map(pa, f)
	})
}

// FoldLeft reduces the owner to an accumulator; an empty owner yields
// the seed unchanged.
func FoldLeft[T, U any](p Ptr[T], seed U, fn func(U, T) U) U {
	if fn == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return seed
	}
	return fn(seed, *p.ref)
}

// FoldRight agrees with FoldLeft on any owner, which holds at most
// one element.
func FoldRight[T, U any](p Ptr[T], seed U, fn func(T, U) U) U {
	if fn == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return seed
	}
	return fn(*p.ref, seed)
}
