package dragon

import (
	"math/big"
	"slices"
)

// BruteForceMax exhaustively searches the partitions of n into parts in
// [2, maxPart], allowing a single trailing part of 1 when the remainder is 1,
// and returns the best product with a witnessing partition sorted in
// descending order. The first strictly better candidate in enumeration order
// wins. Running time is exponential in n; use it only to cross-check
// MaxProduct on small inputs.
func BruteForceMax(n, maxPart int) (*big.Int, []int) {
	switch {
	case n <= 0:
		return big.NewInt(0), []int{}
	case n == 1:
		return big.NewInt(1), []int{1}
	}

	best, parts := search(n, 2, maxPart, nil)
	if best == nil {
		return big.NewInt(0), []int{}
	}
	slices.SortFunc(parts, descending)
	return best, parts
}

// search explores non-decreasing continuations of prefix that consume
// remaining. It returns nil when no complete partition is reachable.
func search(remaining, minPart, maxPart int, prefix []int) (*big.Int, []int) {
	switch remaining {
	case 0:
		if len(prefix) == 0 {
			return nil, nil
		}
		return Product(prefix), slices.Clone(prefix)
	case 1:
		parts := append(slices.Clip(prefix), 1)
		return Product(parts), parts
	}

	var best *big.Int
	var bestParts []int
	for v := minPart; v <= min(remaining, maxPart); v++ {
		p, parts := search(remaining-v, v, maxPart, append(slices.Clip(prefix), v))
		if p != nil && (best == nil || p.Cmp(best) > 0) {
			best, bestParts = p, parts
		}
	}
	return best, bestParts
}
