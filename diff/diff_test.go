package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/eqdiff/field"
	"github.com/consensys/eqdiff/field/babybear"
	"github.com/consensys/eqdiff/field/bn254"
	"github.com/consensys/eqdiff/field/goldilocks"
	"github.com/consensys/eqdiff/field/koalabear"
	"github.com/consensys/eqdiff/field/small"
)

func TestStream17(t *testing.T) {
	// over F17, seed 3: 3, 3·3+1 = 10, 10·3+1 = 14, 14·3+1 = 9
	stream := NewStream[small.Element](small.New(17, 3), 3)

	for _, expected := range []uint64{3, 10, 14, 9} {
		assert.Equal(t, expected, stream.Next().Uint64())
	}
}

func TestStreamReplays(t *testing.T) {
	var f field.Field[bn254.Element] = bn254.Field{}

	a := NewStream(f, 12345).NextSlice(50)
	b := NewStream(f, 12345).NextSlice(50)

	assert.Equal(t, a, b)
}

// 100 pseudorandom trials at dimension 10, on every field width the
// battery ships with.
func TestRunAgrees(t *testing.T) {
	cfg := Config{NVars: 10, Trials: 100, Seed: 12345}

	cases := []Case{
		NewCase[babybear.Element](babybear.Field{}),
		NewCase[koalabear.Element](koalabear.Field{}),
		NewCase[goldilocks.Element](goldilocks.Field{}),
		NewCase[bn254.Element](bn254.Field{}),
		NewCase[small.Element](small.New(1<<31-1, 7)),
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			report := c.Run(cfg)

			assert.True(t, report.OK(), report.String())
			assert.Equal(t, 100, report.Trials)
			assert.Equal(t, 0, report.FailedTrials)
			assert.Equal(t, 1<<10, report.Cells)
			assert.Equal(t, c.Bits, report.Bits)
		})
	}
}

// The fixed vector of the historical reproduction: point = 7, 14, ..., 70
// and scalar = 12345 over the bn254 scalar field.
func TestRunFixedRepro(t *testing.T) {
	var f field.Field[bn254.Element] = bn254.Field{}

	point := make([]bn254.Element, 10)
	for i := range point {
		point[i] = f.NewElement(uint64(i+1) * 7)
	}

	report := RunFixed(f, point, f.NewElement(12345))

	assert.True(t, report.OK(), report.String())
	assert.Equal(t, 1, report.Trials)
	assert.Equal(t, 1<<10, report.Cells)
}

// faultyField mimics a miscompiled MUL-then-SUB sequence: subtracting a
// value that came out of a multiplication silently returns the minuend.
// The harness must flag it on essentially every trial, since only the
// recursive construction subtracts a fresh product.
type faultyField struct {
	*small.Field
}

type faultyElement struct {
	e       small.Element
	fromMul bool
}

func (f faultyField) NewElement(v uint64) faultyElement {
	return faultyElement{e: f.Field.NewElement(v)}
}

func (f faultyField) Zero() faultyElement { return faultyElement{e: f.Field.Zero()} }

func (f faultyField) One() faultyElement { return faultyElement{e: f.Field.One()} }

func (x faultyElement) Add(y faultyElement) faultyElement {
	return faultyElement{e: x.e.Add(y.e)}
}

func (x faultyElement) Sub(y faultyElement) faultyElement {
	if y.fromMul && !y.e.IsZero() {
		return faultyElement{e: x.e} // the "miscompiled" path
	}
	return faultyElement{e: x.e.Sub(y.e)}
}

func (x faultyElement) Mul(y faultyElement) faultyElement {
	return faultyElement{e: x.e.Mul(y.e), fromMul: true}
}

func (x faultyElement) Neg() faultyElement { return faultyElement{e: x.e.Neg()} }

func (x faultyElement) Equal(y faultyElement) bool { return x.e.Equal(y.e) }

func (x faultyElement) IsZero() bool { return x.e.IsZero() }

func (x faultyElement) String() string { return x.e.String() }

func TestFaultyArithmeticCaught(t *testing.T) {
	var f field.Field[faultyElement] = faultyField{small.New(17, 3)}

	report := Run(f, Config{NVars: 4, Trials: 20, Seed: 3})

	assert.False(t, report.OK(), "a broken subtraction must not go unnoticed")
	assert.NotZero(t, report.FailedTrials)
	assert.NotZero(t, report.BadCells)
}
