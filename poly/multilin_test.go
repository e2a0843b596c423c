package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/eqdiff/field"
	"github.com/consensys/eqdiff/field/bn254"
	"github.com/consensys/eqdiff/field/fieldtest"
	"github.com/consensys/eqdiff/field/small"
)

func TestNumVars(t *testing.T) {
	var f field.Field[bn254.Element] = bn254.Field{}

	for nVars := 0; nVars < 9; nVars++ {
		assert.Equal(t, nVars, Make(f, nVars).NumVars())
	}
}

func TestFold(t *testing.T) {
	// [0, 1, 2, 3]
	var f field.Field[small.Element] = small.New(17, 3)

	bkt := make(MultiLin[small.Element], 4)
	for i := range bkt {
		bkt[i] = f.NewElement(uint64(i))
	}

	// Folding on 5 should yield [10, 11]
	bkt.Fold(f.NewElement(5))

	assert.Equal(t, 2, len(bkt))
	assert.Equal(t, uint64(10), bkt[0].Uint64(), "Mismatch on 0")
	assert.Equal(t, uint64(11), bkt[1].Uint64(), "Mismatch on 1")
}

func TestEvaluateBadDimension(t *testing.T) {
	var f field.Field[bn254.Element] = bn254.Field{}

	table := Make(f, 3)
	coordinates := fieldtest.Elements(f, 2)

	assert.Panics(t, func() { table.Evaluate(coordinates) })
}
