// Package algebra provides concept instances for generic containers.
//
// An instance binds the operations of an algebraic structure (Monoid,
// Functor, Monad, Foldable) to a concrete shape.  The container shapes
// live in subpackages: shared and unique hold zero or one value under
// reference and exclusive ownership respectively, either holds exactly
// one of two alternatives, and slices covers ordinary Go slices.
//
// Capabilities compose conditionally.  A shared.Ptr[T] is only a monoid
// when T is, which in Go terms means a Monoid[Ptr[T]] can only be built
// from a Monoid[T].  Code without an instance for T has nothing to lift,
// so capability mismatches surface at compile time.
package algebra
