package primary

import (
	"context"
	"math/big"
)

// DragonService defines the primary port for the dragon flock problem.
type DragonService interface {
	// Solve finds the strongest flock for a number of heads.
	Solve(ctx context.Context, req SolveRequest) (*DragonSolution, error)

	// Suite solves every configured suite head count.
	Suite(ctx context.Context) ([]*DragonSolution, error)

	// Composition solves the configured composition head counts,
	// used to show that large flocks are made mostly of threes.
	Composition(ctx context.Context) ([]*DragonSolution, error)

	// CrossCheck compares the closed-form result against exhaustive search.
	CrossCheck(ctx context.Context, req CrossCheckRequest) ([]*CrossCheckRow, error)
}

// SolveRequest contains parameters for solving.
type SolveRequest struct {
	Heads int
	// Bounded restricts Heads to the interactive range.
	Bounded bool
}

// CrossCheckRequest contains parameters for a brute-force cross-check.
// A zero Limit selects the configured default.
type CrossCheckRequest struct {
	Limit int
}

// DragonSolution is a solved flock at the port boundary.
type DragonSolution struct {
	Heads         int
	Power         *big.Int
	Dragons       []int
	Twos          int
	Threes        int
	SumMatches    bool
	VerifiedPower *big.Int
}

// CrossCheckRow compares both algorithms for one head count.
type CrossCheckRow struct {
	Heads        int
	FastPower    *big.Int
	FastDragons  []int
	BrutePower   *big.Int
	BruteDragons []int
	Match        bool
}
