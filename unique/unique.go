package unique

import (
	"fmt"
	"github.com/algebraic-go/algebra"
	"github.com/algebraic-go/algebra/internal"
)

type (
	// Ptr holds zero or one value of T under exclusive ownership.
	// Ownership moves; it is never silently duplicated.  Operations
	// that may consume their operand take *Ptr so a move can empty
	// the source.  Copying a Ptr by value aliases the storage and
	// breaks the single-owner contract; pass pointers instead.
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

func (p *Ptr[T]) IsEmpty() bool {
	return p.ref == nil
}

// Get returns the owned value and panics when the owner is empty.
func (p *Ptr[T]) Get() T {
	if p.ref == nil {
		panic(fmt.Sprintf("unique: Get on empty Ptr[%s]", internal.TypeName[T]()))
	}
	return *p.ref
}

func (p *Ptr[T]) TryGet() (T, bool) {
	if p.ref == nil {
		var zero T
		return zero, false
	}
	return *p.ref, true
}

// Move transfers ownership to the result and empties the receiver.
func (p *Ptr[T]) Move() Ptr[T] {
	r := p.ref
	p.ref = nil
	return Ptr[T]{r}
}

// Clone duplicates the owned value into independent storage.  This is
// a real copy of the value (via algebra.CopyOf), not a second
// reference to the same storage.
func (p *Ptr[T]) Clone() Ptr[T] {
	if p.ref == nil {
		return Ptr[T]{}
	}
	return New(algebra.CopyOf(*p.ref))
}

// Release drops the owned value, ending its lifetime.
func (p *Ptr[T]) Release() {
	p.ref = nil
}

// OrElse returns an independently owned duplicate of p when non-empty
// and of other otherwise.  Neither input is consumed, so the chosen
// side must be cloned rather than shared.  Requires no capability of T.
func (p *Ptr[T]) OrElse(other *Ptr[T]) Ptr[T] {
	if p.ref != nil {
		return p.Clone()
	}
	return other.Clone()
}

// Equal compares presence and, when both are present, the owned
// values.
func (p *Ptr[T]) Equal(other *Ptr[T]) bool {
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

// Monoid lifts a monoid on T to one on Ptr[T].  Append treats both
// operands as borrowed: a lone survivor is cloned, and the
// both-present case allocates fresh storage.  Use AppendMove to reuse
// an operand's storage instead.
func Monoid[T any](m algebra.Monoid[T]) algebra.Monoid[Ptr[T]] {
	if m == nil {
		panic("nil monoid")
	}
	return monoid[T]{m}
}

func (monoid[T]) Id() Ptr[T] {
	return Ptr[T]{}
}

func (l monoid[T]) Append(a, b Ptr[T]) Ptr[T] {
	if a.ref != nil {
		if b.ref != nil {
			return New(l.m.Append(*a.ref, *b.ref))
		}
		return a.Clone()
	}
	if b.ref != nil {
		return b.Clone()
	}
	return Ptr[T]{}
}

// AppendMove combines two owners under T's monoid with explicit
// ownership transfer.  consumeA and consumeB mark which operands the
// result may cannibalize; a consumed present operand's storage is
// reused in place and the operand is emptied, while a borrowed
// survivor is cloned.  When both are consumed and both present, the
// left operand's storage accumulates the result and the right is
// emptied; two consumed empties yield empty.
func AppendMove[T any](m algebra.Monoid[T], a, b *Ptr[T], consumeA, consumeB bool) Ptr[T] {
	if m == nil {
		panic("nil monoid")
	}
	switch {
	case consumeA && consumeB:
		if a.ref != nil {
			if b.ref != nil {
				*a.ref = m.Append(*a.ref, *b.ref)
				b.ref = nil
			}
			return a.Move()
		}
		return b.Move()
	case consumeA:
		if b.ref != nil {
			if a.ref != nil {
				*a.ref = m.Append(*a.ref, *b.ref)
				return a.Move()
			}
			return b.Clone()
		}
		return a.Move()
	case consumeB:
		if a.ref != nil {
			if b.ref != nil {
				*b.ref = m.Append(*a.ref, *b.ref)
				return b.Move()
			}
			return a.Clone()
		}
		return b.Move()
	default:
		return monoid[T]{m}.Append(*a, *b)
	}
}

// Map returns a freshly allocated owner holding f of the owned value,
// or an empty owner of the target type.  The source is borrowed.
func Map[T, U any](p *Ptr[T], f func(T) U) Ptr[U] {
	if f == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return Ptr[U]{}
	}
	return New(f(*p.ref))
}

// MapInPlace is the endomorphic fast path: when the result type
// equals the input type the existing storage is reused and the source
// consumed.  Behavior is otherwise identical to Map.
func MapInPlace[T any](p *Ptr[T], f func(T) T) Ptr[T] {
	if f == nil {
		panic("nil fun")
	}
	if p.ref != nil {
		*p.ref = f(*p.ref)
	}
	return p.Move()
}

// FlatMap is the primitive sequencing operation: the owner produced
// by f is returned directly, never re-wrapped.
func FlatMap[T, U any](p *Ptr[T], f func(T) Ptr[U]) Ptr[U] {
	if f == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return Ptr[U]{}
	}
	return f(*p.ref)
}

// Join flattens one level of nesting, consuming the outer owner so
// the inner storage keeps a single owner.
func Join[T any](p *Ptr[Ptr[T]]) Ptr[T] {
	if p.ref == nil {
		return Ptr[T]{}
	}
	inner := p.ref.Move()
	p.ref = nil
	return inner
}

// Apply applies an owned function to an owned argument, short
// circuiting to empty as soon as either side is empty.
func Apply[T, U any](pf *Ptr[func(T) U], pa *Ptr[T]) Ptr[U] {
	return FlatMap(pf, func(f func(T) U) Ptr[U] {
		return Map(pa, f)
	})
}

// FoldLeft reduces the owner to an accumulator; an empty owner yields
// the seed unchanged.
func FoldLeft[T, U any](p *Ptr[T], seed U, fn func(U, T) U) U {
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
func FoldRight[T, U any](p *Ptr[T], seed U, fn func(T, U) U) U {
	if fn == nil {
		panic("nil fun")
	}
	if p.ref == nil {
		return seed
	}
	return fn(*p.ref, seed)
}
