package poly

import (
	"fmt"

	"github.com/consensys/eqdiff/common"
	"github.com/consensys/eqdiff/field"
)

// MultiLin tracks the values of a (dense i.e. not sparse) multilinear
// polynomial over the boolean hypercube. Its length is a power of two.
type MultiLin[E field.Element[E]] []E

// Make returns a zero-filled table over f with 1 << nVars entries.
func Make[E field.Element[E]](f field.Field[E], nVars int) MultiLin[E] {
	m := make(MultiLin[E], 1<<nVars)
	for i := range m {
		m[i] = f.Zero()
	}
	return m
}

func (m MultiLin[E]) String() string {
	return common.SliceToString(m)
}

// NumVars returns the number of variables the table depends on.
func (m MultiLin[E]) NumVars() int {
	return common.Log2(len(m))
}

// DeepCopy creates a deep copy of a bookkeeping table.
// Folding changes the underlying array, so cross-checking a fold against
// another derivation of the same table requires a copy.
func (m MultiLin[E]) DeepCopy() MultiLin[E] {
	tableDeepCopy := make(MultiLin[E], len(m))
	copy(tableDeepCopy, m)
	return tableDeepCopy
}

// Fold folds the table on its first coordinate using the given value r
func (m *MultiLin[E]) Fold(r E) {
	mid := len(*m) / 2
	bottom, top := (*m)[:mid], (*m)[mid:]
	for i := range bottom {
		// table[i] <- table[i] + r (table[i + mid] - table[i])
		t := top[i].Sub(bottom[i]).Mul(r)
		bottom[i] = bottom[i].Add(t)
	}
	*m = (*m)[:mid]
}

// Evaluate takes a dense bookkeeping table, deep copies it, and folds it
// along each coordinate in turn. After folding, the copy is reduced to a
// one item slice containing the evaluation of the original table at
// coordinates. This is returned.
func (m MultiLin[E]) Evaluate(coordinates []E) E {
	if len(coordinates) != m.NumVars() {
		panic(fmt.Sprintf("table of %v variables cannot fold on %v coordinates",
			m.NumVars(), len(coordinates)))
	}

	bkCopy := m.DeepCopy()
	for _, r := range coordinates {
		bkCopy.Fold(r)
	}

	return bkCopy[0]
}

// Sum adds up all entries of the table.
func (m MultiLin[E]) Sum() E {
	res := m[0]
	for _, x := range m[1:] {
		res = res.Add(x)
	}
	return res
}

// Equal reports whether both tables hold the same values, cell for cell.
func (m MultiLin[E]) Equal(other MultiLin[E]) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if !m[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
