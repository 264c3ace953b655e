// Package dragon contains the pure logic for the dragon flock problem: split
// a number of heads between dragons of at most MaxHeads heads each so that the
// flock's power (the product of heads per dragon) is maximal.
package dragon

import (
	"math/big"
	"slices"
)

// MaxHeads is the largest number of heads a single dragon may carry.
const MaxHeads = 7

var (
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)

// MaxProduct returns the maximum product of a partition of n into parts of
// at most MaxHeads. Parts of three are optimal, with a remainder of one
// folded into two parts of two (2*2 > 3*1).
func MaxProduct(n int) *big.Int {
	switch {
	case n <= 0:
		return big.NewInt(0)
	case n <= 4:
		return big.NewInt(int64(n))
	}

	q := int64(n / 3)
	switch n % 3 {
	case 0:
		return new(big.Int).Exp(bigThree, big.NewInt(q), nil)
	case 1:
		p := new(big.Int).Exp(bigThree, big.NewInt(q-1), nil)
		return p.Mul(p, bigFour)
	default:
		p := new(big.Int).Exp(bigThree, big.NewInt(q), nil)
		return p.Mul(p, bigTwo)
	}
}

// OptimalPartition returns the partition of n whose product is MaxProduct(n),
// sorted in descending order. It is empty for n <= 0.
func OptimalPartition(n int) []int {
	switch {
	case n <= 0:
		return []int{}
	case n <= 4:
		return []int{n}
	}

	threes := n / 3
	var tail []int
	switch n % 3 {
	case 1:
		threes--
		tail = []int{2, 2}
	case 2:
		tail = []int{2}
	}

	parts := make([]int, 0, threes+len(tail))
	for range threes {
		parts = append(parts, 3)
	}
	parts = append(parts, tail...)
	slices.SortFunc(parts, descending)
	return parts
}

// Solve returns both the maximal product and a partition achieving it.
func Solve(n int) (*big.Int, []int) {
	return MaxProduct(n), OptimalPartition(n)
}

// Verify recomputes the sum and product of parts and reports whether the sum
// equals n.
func Verify(parts []int, n int) (bool, *big.Int) {
	total := 0
	for _, p := range parts {
		total += p
	}
	return total == n, Product(parts)
}

// Product returns the product of parts; the empty product is 1.
func Product(parts []int) *big.Int {
	p := big.NewInt(1)
	for _, v := range parts {
		p.Mul(p, big.NewInt(int64(v)))
	}
	return p
}

// Count returns how many parts equal value.
func Count(parts []int, value int) int {
	c := 0
	for _, p := range parts {
		if p == value {
			c++
		}
	}
	return c
}

func descending(a, b int) int { return b - a }
