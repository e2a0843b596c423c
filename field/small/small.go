// Package small implements a prime field whose order is chosen at runtime,
// below 2³¹, with elements represented in Montgomery form to speed up
// multiplications. It backs the hand-checkable scenarios (tiny moduli like
// 17) and lets the battery probe arbitrary small primes.
package small

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// A Field of prime order, less than 2³¹. The order and generator are fixed
// at construction and assumed prime (resp. primitive); neither is
// re-checked at runtime.
type Field struct {
	modulus           uint32
	generator         uint32
	negModulusInvModR uint32
}

// Element of a Field, kept in Montgomery form. The zero value is only
// usable once obtained from a Field; elements of different Fields must
// never be mixed.
type Element struct {
	f *Field
	v uint32
}

// New returns the field of the given prime order.
func New(modulus, generator uint32) *Field {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	}

	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))

	return &Field{
		modulus:           modulus,
		generator:         generator,
		negModulusInvModR: uint32(1<<32 - m.Uint64()),
	}
}

// Name of the field.
func (f *Field) Name() string { return fmt.Sprintf("small-%d", f.modulus) }

// Bits of the modulus.
func (f *Field) Bits() int { return bits.Len32(f.modulus) }

// Modulus of the field.
func (f *Field) Modulus() *big.Int { return new(big.Int).SetUint64(uint64(f.modulus)) }

// Generator of the multiplicative group.
func (f *Field) Generator() uint64 { return uint64(f.generator) }

// NewElement returns the canonical residue of v, in Montgomery form.
func (f *Field) NewElement(v uint64) Element {
	return Element{f, uint32((v % uint64(f.modulus)) << 32 % uint64(f.modulus))}
}

// Zero of the field.
func (f *Field) Zero() Element { return Element{f, 0} }

// One of the field.
func (f *Field) One() Element { return f.NewElement(1) }

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f *Field) montgomeryReduce(x uint64) uint32 {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	v := uint32((x + m*uint64(f.modulus)) / R)
	if v >= f.modulus {
		v -= f.modulus
	}

	return v
}

// Add x + y
func (x Element) Add(y Element) Element {
	v := x.v + y.v
	if v >= x.f.modulus {
		v -= x.f.modulus
	}

	return Element{x.f, v}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	const negMask uint32 = 1 << 31

	v := x.v - y.v
	if v&negMask != 0 {
		v += x.f.modulus
	}

	return Element{x.f, v}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{x.f, x.f.montgomeryReduce(uint64(x.v) * uint64(y.v))}
}

// Neg -x
func (x Element) Neg() Element {
	if x.v == 0 {
		return x
	}

	return Element{x.f, x.f.modulus - x.v}
}

// Equal reports whether x and y are the same residue.
func (x Element) Equal(y Element) bool { return x.v == y.v }

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool { return x.v == 0 }

// Uint64 returns the numerical (non-Montgomery) value of x.
func (x Element) Uint64() uint64 { return uint64(x.f.montgomeryReduce(uint64(x.v))) }

func (x Element) String() string { return strconv.FormatUint(x.Uint64(), 10) }
