// Package bn254 exposes the scalar field of the BN254 curve through the
// generic field interface. This is the field of the historical divergence
// reproduction, hence the one the fixed battery always includes.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element wraps fr.Element to conform to the field.Element interface.
type Element struct {
	e fr.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	var z fr.Element
	z.Add(&x.e, &y.e)
	return Element{z}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var z fr.Element
	z.Sub(&x.e, &y.e)
	return Element{z}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var z fr.Element
	z.Mul(&x.e, &y.e)
	return Element{z}
}

// Neg -x
func (x Element) Neg() Element {
	var z fr.Element
	z.Neg(&x.e)
	return Element{z}
}

// Equal reports whether x and y are the same residue.
func (x Element) Equal(y Element) bool {
	return x.e.Equal(&y.e)
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.e.IsZero()
}

func (x Element) String() string {
	return x.e.String()
}

// Field of order fr.Modulus().
type Field struct{}

// Name of the field.
func (Field) Name() string { return "bn254" }

// Bits of the modulus.
func (Field) Bits() int { return fr.Bits }

// Modulus of the field.
func (Field) Modulus() *big.Int { return fr.Modulus() }

// Generator of the multiplicative group.
func (Field) Generator() uint64 { return 5 }

// NewElement returns the canonical residue of v.
func (Field) NewElement(v uint64) Element { return Element{fr.NewElement(v)} }

// Zero of the field.
func (Field) Zero() Element { return Element{} }

// One of the field.
func (Field) One() Element { return Element{fr.One()} }
