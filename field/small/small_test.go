package small

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/eqdiff/field/fieldtest"
)

func TestFieldLaws(t *testing.T) {
	for _, f := range []*Field{New(17, 3), New(7340033, 3), New(1<<31-1, 7)} {
		t.Run(f.Name(), func(t *testing.T) {
			fieldtest.Laws[Element](t, f)
			fieldtest.Descriptor[Element](t, f)
		})
	}
}

func TestMulMatchesBigInt(t *testing.T) {
	f := New(1<<31-1, 7) // Mersenne31
	rng := rand.New(rand.NewPCG(0, 42))

	var i, j, m big.Int
	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := rng.Uint32N(f.modulus)
		b := rng.Uint32N(f.modulus)

		i.SetUint64(uint64(a)).
			Mul(&i, j.SetUint64(uint64(b))).
			Mod(&i, &m)

		x := f.NewElement(uint64(a)).Mul(f.NewElement(uint64(b)))

		assert.Equal(t, i.Uint64(), x.Uint64(), "%d * %d", a, b)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	f := New(17, 3)

	for v := uint64(0); v < 40; v++ {
		assert.Equal(t, v%17, f.NewElement(v).Uint64())
	}
}

func TestModulusTooLarge(t *testing.T) {
	assert.Panics(t, func() { New(1<<31, 3) })
}
