// Package fieldtest exercises the axioms every concrete field
// implementation must satisfy. Each field package runs the battery from
// its own test file.
package fieldtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/eqdiff/field"
)

// Elements returns a deterministic spread of n field elements, including
// values far above the small moduli so that reduction on construction is
// exercised too.
func Elements[E field.Element[E]](f field.Field[E], n int) []E {
	res := make([]E, n)
	for i := range res {
		res[i] = f.NewElement(uint64(i)*uint64(i) ^ 0xf45c9df123f)
	}
	return res
}

// Laws checks the field axioms on every triple drawn from a deterministic
// sample of f, augmented with 0 and 1.
func Laws[E field.Element[E]](t *testing.T, f field.Field[E]) {
	zero, one := f.Zero(), f.One()

	xs := Elements(f, 12)
	xs = append(xs, zero, one, one.Neg())

	for _, a := range xs {
		assert.True(t, a.Add(zero).Equal(a), "a + 0 = a (a = %v)", a)
		assert.True(t, a.Mul(one).Equal(a), "a * 1 = a (a = %v)", a)
		assert.True(t, a.Mul(zero).IsZero(), "a * 0 = 0 (a = %v)", a)
		assert.True(t, a.Sub(a).IsZero(), "a - a = 0 (a = %v)", a)
		assert.True(t, a.Add(a.Neg()).IsZero(), "a + (-a) = 0 (a = %v)", a)

		for _, b := range xs {
			assert.True(t, a.Add(b).Equal(b.Add(a)), "a + b = b + a (a = %v, b = %v)", a, b)
			assert.True(t, a.Mul(b).Equal(b.Mul(a)), "a * b = b * a (a = %v, b = %v)", a, b)
			assert.True(t, a.Sub(b).Equal(b.Sub(a).Neg()), "a - b = -(b - a) (a = %v, b = %v)", a, b)

			// the identity the recursive eq-table split relies on
			assert.True(t, a.Mul(one.Sub(b)).Equal(a.Sub(a.Mul(b))),
				"a(1 - b) = a - ab (a = %v, b = %v)", a, b)

			for _, c := range xs {
				assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))),
					"(a + b) + c = a + (b + c) (a = %v, b = %v, c = %v)", a, b, c)
				assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))),
					"(a * b) * c = a * (b * c) (a = %v, b = %v, c = %v)", a, b, c)
				assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))),
					"a(b + c) = ab + ac (a = %v, b = %v, c = %v)", a, b, c)
			}
		}
	}
}

// Descriptor sanity-checks the immutable field configuration against the
// element arithmetic.
func Descriptor[E field.Element[E]](t *testing.T, f field.Field[E]) {
	assert.Equal(t, f.Bits(), f.Modulus().BitLen(), "bit width must match the modulus")
	assert.True(t, f.Zero().IsZero())
	assert.False(t, f.One().IsZero())
	assert.False(t, f.NewElement(f.Generator()).IsZero(), "generator must be a unit")

	// construction reduces modulo the order
	if m := f.Modulus(); m.IsUint64() {
		assert.True(t, f.NewElement(m.Uint64()).IsZero(), "modulus must reduce to zero")
		assert.True(t, f.NewElement(m.Uint64()+1).Equal(f.One()))
	}
}
