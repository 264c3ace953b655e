// Package span contains the pure logic for analysing the span of a sequence
// that lies strictly between its maximum and minimum elements.
package span

import "golang.org/x/exp/constraints"

// Number is any integer or floating point element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Result is the outcome of Analyze.
// MaxIndex and MinIndex are both -1 for an empty sequence.
type Result[T Number] struct {
	Sum      T
	MaxIndex int
	MinIndex int
}

// Bounds returns the interval ends (lo <= hi) formed by the max and min positions.
func (r Result[T]) Bounds() (lo, hi int) {
	if r.MaxIndex < r.MinIndex {
		return r.MaxIndex, r.MinIndex
	}
	return r.MinIndex, r.MaxIndex
}

// Analyze finds the first occurrence of the maximum and of the minimum of seq
// and sums the negative elements strictly between them.
// Rules:
// - empty sequence: (0, -1, -1)
// - single element: (0, 0, 0)
// - max and min adjacent or identical: sum 0 with the found indices
func Analyze[T Number](seq []T) Result[T] {
	switch len(seq) {
	case 0:
		return Result[T]{MaxIndex: -1, MinIndex: -1}
	case 1:
		return Result[T]{}
	}

	maxIdx, minIdx := 0, 0
	for i, v := range seq[1:] {
		if v > seq[maxIdx] {
			maxIdx = i + 1
		}
		if v < seq[minIdx] {
			minIdx = i + 1
		}
	}

	r := Result[T]{MaxIndex: maxIdx, MinIndex: minIdx}
	lo, hi := r.Bounds()
	if hi-lo <= 1 {
		return r
	}

	for _, v := range seq[lo+1 : hi] {
		if v < 0 {
			r.Sum += v
		}
	}
	return r
}

// Between returns a copy of the elements of seq strictly between the
// positions recorded in r. It is empty when nothing lies between them.
func Between[T Number](seq []T, r Result[T]) []T {
	lo, hi := r.Bounds()
	if lo < 0 || hi >= len(seq) || hi-lo <= 1 {
		return []T{}
	}
	out := make([]T, hi-lo-1)
	copy(out, seq[lo+1:hi])
	return out
}

// Negatives returns the negative elements of xs in their original order.
func Negatives[T Number](xs []T) []T {
	out := []T{}
	for _, v := range xs {
		if v < 0 {
			out = append(out, v)
		}
	}
	return out
}
