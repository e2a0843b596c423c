package poly

import (
	"fmt"

	"github.com/consensys/eqdiff/field"
)

// AddEqTable adds into acc the table of the scaled equality polynomial:
// the cell of index b receives scalar · Π_i (point_i if bit_i(b) = 1 else
// 1 - point_i), bits counted from the most significant of len(point) bits.
//
// The construction is recursive: acc splits into two non-overlapping
// halves, one per value of the first coordinate, which receive the partial
// scalars s·x0 and s - s·x0. Sharing the partial scalar across a whole
// half is what makes the table cost O(2^n) products instead of O(n·2^n).
//
// acc must hold exactly 1 << len(point) cells. Cells are added into, never
// overwritten: zeroing beforehand is the caller's responsibility.
func AddEqTable[E field.Element[E]](acc MultiLin[E], point []E, scalar E) {
	assertTableSize(len(acc), len(point))
	addEqTable(acc, point, scalar)
}

func addEqTable[E field.Element[E]](acc []E, point []E, scalar E) {
	if len(point) == 0 {
		acc[0] = acc[0].Add(scalar)
		return
	}

	x0, xs := point[0], point[1:]
	low, high := acc[:len(acc)/2], acc[len(acc)/2:]

	s1 := scalar.Mul(x0)
	s0 := scalar.Sub(s1) // scalar · (1 - x0)

	addEqTable(low, xs, s0)
	addEqTable(high, xs, s1)
}

// AddEqTableNaive adds into acc the same table as AddEqTable, recomputing
// the full product for every cell from scratch. No intermediate value is
// shared between cells, so no transformation of the shared-scalar
// recursion can reach it: a divergence from AddEqTable on equal inputs
// incriminates the arithmetic itself, or what the compiler made of it.
func AddEqTableNaive[E field.Element[E]](f field.Field[E], acc MultiLin[E], point []E, scalar E) {
	assertTableSize(len(acc), len(point))

	one := f.One()
	n := len(point)

	for i := range acc {
		c := scalar
		for j, p := range point {
			if (i>>(n-1-j))&1 == 1 {
				c = c.Mul(p)
			} else {
				c = c.Mul(one.Sub(p))
			}
		}
		acc[i] = acc[i].Add(c)
	}
}

// FoldedEqTable ought to start life as a sparse bookkeeping table
// depending on 2n variables and containing 2^n ones only
// to be folded n times according to the values in point.
// The resulting table will no longer be sparse.
// Instead we directly compute the folded array of length 2^n
// containing the values of multiplier · Eq(point_1, ... , point_n, *, ... , *).
// Unlike the Add* builders above, it overwrites preallocated.
func FoldedEqTable[E field.Element[E]](preallocated MultiLin[E], point []E, multiplier E) MultiLin[E] {
	n := len(point)
	assertTableSize(len(preallocated), n)

	preallocated[0] = multiplier

	for i, r := range point {
		for j := 0; j < (1 << i); j++ {
			J := j << (n - i)
			JNext := J + 1<<(n-1-i)
			preallocated[JNext] = preallocated[J].Mul(r)
			preallocated[J] = preallocated[J].Sub(preallocated[JNext])
		}
	}

	return preallocated
}

// EvalEq computes Eq(q1, ... , qn, h1, ... , hn) = Π_1^n Eq(qi, hi)
// where Eq(x,y) = xy + (1-x)(1-y) = 1 - x - y + xy + xy interpolates
//
//	    _________________
//	    |       |       |
//	    |   0   |   1   |
//	    |_______|_______|
//	y   |       |       |
//	    |   1   |   0   |
//	    |_______|_______|
//
//	            x
func EvalEq[E field.Element[E]](f field.Field[E], q, h []E) E {
	if len(q) != len(h) {
		panic(fmt.Sprintf("mismatching dimensions %v and %v", len(q), len(h)))
	}

	one := f.One()
	res := one

	for i := range q {
		nxt := q[i].Mul(h[i]) // nxt <- qi * hi
		nxt = nxt.Add(nxt)    // nxt <- 2 * qi * hi
		nxt = nxt.Add(one)    // nxt <- 1 + 2 * qi * hi
		sum := q[i].Add(h[i]) // sum <- qi + hi
		nxt = nxt.Sub(sum)    // nxt <- 1 + 2 * qi * hi - qi - hi
		res = res.Mul(nxt)    // res <- res * nxt
	}

	return res
}

// A table of size 2^n is the only valid accumulator for n coordinates.
// Anything else is a caller bug: fail fast rather than corrupt cells.
func assertTableSize(size, nVars int) {
	if size != 1<<nVars {
		panic(fmt.Sprintf("table of size %v cannot accumulate %v variables", size, nVars))
	}
}
