package algebra

type (
	// Monoid is an instance of the monoid structure for T: an identity
	// element and an associative combine.
	Monoid[T any] interface {
		Id() T
		Append(a, b T) T
	}

	// Number covers the built-in numeric types.
	Number interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
			~float32 | ~float64
	}
)

type sum[N Number] struct{}

func (sum[N]) Id() N {
	var zero N
	return zero
}

func (sum[N]) Append(a, b N) N {
	return a + b
}

// Sum is the additive monoid over N.
func Sum[N Number]() Monoid[N] {
	return sum[N]{}
}

type product[N Number] struct{}

func (product[N]) Id() N {
	return N(1)
}

func (product[N]) Append(a, b N) N {
	return a * b
}

// Product is the multiplicative monoid over N.
func Product[N Number]() Monoid[N] {
	return product[N]{}
}

type conj struct{}

func (conj) Id() bool {
	return true
}

func (conj) Append(a, b bool) bool {
	return a && b
}

// All is the conjunctive monoid over bool.
func All() Monoid[bool] {
	return conj{}
}

type disj struct{}

func (disj) Id() bool {
	return false
}

func (disj) Append(a, b bool) bool {
	return a || b
}

// Any is the disjunctive monoid over bool.
func Any() Monoid[bool] {
	return disj{}
}

type concat struct{}

func (concat) Id() string {
	return ""
}

func (concat) Append(a, b string) string {
	return a + b
}

// Concat is the string concatenation monoid.
func Concat() Monoid[string] {
	return concat{}
}

type slice[T any] struct{}

func (slice[T]) Id() []T {
	return nil
}

func (slice[T]) Append(a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	r := make([]T, 0, len(a)+len(b))
	r = append(r, a...)
	return append(r, b...)
}

// Slice is the free monoid over []T.  Append never aliases its
// operands' backing arrays.
func Slice[T any]() Monoid[[]T] {
	return slice[T]{}
}
