package diff

import "github.com/consensys/eqdiff/field"

// Stream produces a reproducible sequence of field elements from an
// integer seed: v_0 = seed, v_{k+1} = v_k · seed + 1. It covers the field
// well enough for differential trials without dragging in a shared
// random-number generator, and it replays identically on every run.
type Stream[E field.Element[E]] struct {
	one  E
	seed E
	next E
}

// NewStream over f, starting at seed.
func NewStream[E field.Element[E]](f field.Field[E], seed uint64) *Stream[E] {
	s := f.NewElement(seed)
	return &Stream[E]{one: f.One(), seed: s, next: s}
}

// Next returns the next element of the sequence.
func (s *Stream[E]) Next() E {
	v := s.next
	s.next = s.next.Mul(s.seed).Add(s.one)
	return v
}

// NextSlice returns the next n elements of the sequence.
func (s *Stream[E]) NextSlice(n int) []E {
	res := make([]E, n)
	for i := range res {
		res[i] = s.Next()
	}
	return res
}
