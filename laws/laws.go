package laws

import (
	"fmt"
	"github.com/algebraic-go/algebra"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
)

type (
	// Eq decides equality for sampled law checks.
	Eq[T any] func(a, b T) bool

	// Gen produces sample values.
	Gen[T any] func() T

	// Checker drives sampled checks of instance laws, accumulating
	// every violation rather than stopping at the first.
	Checker struct {
		samples int
		logger  logr.Logger
	}

	// Option configures a Checker.
	Option func(*Checker)
)

// Samples sets how many sampled values each law is checked against.
func Samples(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.samples = n
		}
	}
}

// Logger routes per-violation reporting; the default discards it.
func Logger(logger logr.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New returns a Checker with 100 samples per law and no logging.
func New(opts ...Option) *Checker {
	c := &Checker{samples: 100, logger: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) violation(invalid *multierror.Error, law string, detail string) *multierror.Error {
	c.logger.Info("law violated", "law", law, "detail", detail)
	return multierror.Append(invalid, fmt.Errorf("%s: %s", law, detail))
}

// Monoid checks left identity, right identity and associativity of m
// over sampled values.
func Monoid[T any](c *Checker, m algebra.Monoid[T], eq Eq[T], gen Gen[T]) error {
	var invalid *multierror.Error
	add := func(law, detail string) {
		invalid = c.violation(invalid, law, detail)
	}
	for i := 0; i < c.samples; i++ {
		x, y, z := gen(), gen(), gen()
		if !eq(m.Append(m.Id(), x), x) {
			add("monoid left identity", fmt.Sprintf("append(id, %v) != %v", x, x))
		}
		if !eq(m.Append(x, m.Id()), x) {
			add("monoid right identity", fmt.Sprintf("append(%v, id) != %v", x, x))
		}
		l := m.Append(m.Append(x, y), z)
		r := m.Append(x, m.Append(y, z))
		if !eq(l, r) {
			add("monoid associativity",
				fmt.Sprintf("append order changed result for (%v, %v, %v)", x, y, z))
		}
	}
	return invalid.ErrorOrNil()
}

// FunctorIdentity checks map(identity, c) == c.  Go cannot abstract
// over type constructors, so the container's map is passed in.
func FunctorIdentity[C, T any](
	c *Checker,
	fmap func(C, func(T) T) C,
	eq Eq[C],
	gen Gen[C],
) error {
	var invalid *multierror.Error
	for i := 0; i < c.samples; i++ {
		v := gen()
		if !eq(fmap(v, func(t T) T { return t }), v) {
			invalid = c.violation(invalid, "functor identity",
				fmt.Sprintf("map(identity, %v) != %v", v, v))
		}
	}
	return invalid.ErrorOrNil()
}

// FunctorComposition checks map(g∘f, c) == map(g, map(f, c)), with
// the three map instantiations supplied for the shapes involved.
func FunctorComposition[C, CU, CV, T, U, V any](
	c *Checker,
	mapTU func(C, func(T) U) CU,
	mapUV func(CU, func(U) V) CV,
	mapTV func(C, func(T) V) CV,
	f func(T) U,
	g func(U) V,
	eq Eq[CV],
	gen Gen[C],
) error {
	var invalid *multierror.Error
	for i := 0; i < c.samples; i++ {
		v := gen()
		composed := mapTV(v, func(t T) V { return g(f(t)) })
		stepped := mapUV(mapTU(v, f), g)
		if !eq(composed, stepped) {
			invalid = c.violation(invalid, "functor composition",
				fmt.Sprintf("map(g.f, %v) != map(g, map(f, %v))", v, v))
		}
	}
	return invalid.ErrorOrNil()
}

// MonadLeftIdentity checks bind(pure(x), f) == f(x).
func MonadLeftIdentity[C, D, T any](
	c *Checker,
	pure func(T) C,
	bind func(C, func(T) D) D,
	f func(T) D,
	eq Eq[D],
	gen Gen[T],
) error {
	var invalid *multierror.Error
	for i := 0; i < c.samples; i++ {
		x := gen()
		if !eq(bind(pure(x), f), f(x)) {
			invalid = c.violation(invalid, "monad left identity",
				fmt.Sprintf("bind(pure(%v), f) != f(%v)", x, x))
		}
	}
	return invalid.ErrorOrNil()
}

// MonadRightIdentity checks bind(c, pure) == c.
func MonadRightIdentity[C, T any](
	c *Checker,
	pure func(T) C,
	bind func(C, func(T) C) C,
	eq Eq[C],
	gen Gen[C],
) error {
	var invalid *multierror.Error
	for i := 0; i < c.samples; i++ {
		v := gen()
		if !eq(bind(v, pure), v) {
			invalid = c.violation(invalid, "monad right identity",
				fmt.Sprintf("bind(%v, pure) != %v", v, v))
		}
	}
	return invalid.ErrorOrNil()
}

// MonadAssociativity checks
// bind(bind(c, f), g) == bind(c, x => bind(f(x), g)).
func MonadAssociativity[C, D, E, T, U any](
	c *Checker,
	bindTU func(C, func(T) D) D,
	bindUV func(D, func(U) E) E,
	bindTV func(C, func(T) E) E,
	f func(T) D,
	g func(U) E,
	eq Eq[E],
	gen Gen[C],
) error {
	var invalid *multierror.Error
	for i := 0; i < c.samples; i++ {
		v := gen()
		stepped := bindUV(bindTU(v, f), g)
		nested := bindTV(v, func(t T) E { return bindUV(f(t), g) })
		if !eq(stepped, nested) {
			invalid = c.violation(invalid, "monad associativity",
				fmt.Sprintf("bind nesting changed result for %v", v))
		}
	}
	return invalid.ErrorOrNil()
}
