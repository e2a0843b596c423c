package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field, held as a canonical residue.
// Operations are total: they cannot fail for canonical operands and always
// return canonical results. Elements of distinct fields must never be
// mixed.
type Element[E any] interface {
	Add(y E) E // x + y
	Sub(y E) E // x - y
	Mul(y E) E // x * y
	Neg() E    // -x
	Equal(y E) bool
	IsZero() bool
	fmt.Stringer
}

// A Field of prime order, acting as the factory for its elements. The
// modulus and generator are fixed once at construction; they are assumed
// prime (resp. a generator of the multiplicative group) by construction
// and never re-checked at runtime.
type Field[E Element[E]] interface {
	Name() string
	Bits() int         // bit size of the modulus
	Modulus() *big.Int // order of the field
	Generator() uint64 // generator of the multiplicative group
	NewElement(v uint64) E
	Zero() E
	One() E
}
