package dragon

import "fmt"

// Bounds accepted for interactively entered head counts.
const (
	MinFlockHeads = 1
	MaxFlockHeads = 99
)

// MaxUnboundedHeads caps head counts solved without the interactive bounds.
const MaxUnboundedHeads = 100_000

// MaxCrossCheckLimit caps the brute-force cross-check range.
const MaxCrossCheckLimit = 30

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SolveContext provides context for solve guards.
type SolveContext struct {
	Heads int
}

// CrossCheckContext provides context for brute-force cross-check guards.
type CrossCheckContext struct {
	Limit int
}

// CanSolve evaluates whether a head count entered by a user is accepted.
// Rules:
// - Heads must be within [MinFlockHeads, MaxFlockHeads]
func CanSolve(ctx SolveContext) GuardResult {
	if ctx.Heads < MinFlockHeads || ctx.Heads > MaxFlockHeads {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("heads must be between %d and %d, got %d", MinFlockHeads, MaxFlockHeads, ctx.Heads),
		}
	}

	return GuardResult{Allowed: true}
}

// CanSolveUnbounded evaluates whether a head count may be solved outside the
// interactive bounds. Non-positive counts are allowed and yield an empty flock.
// Rules:
// - Heads must not exceed MaxUnboundedHeads
func CanSolveUnbounded(ctx SolveContext) GuardResult {
	if ctx.Heads > MaxUnboundedHeads {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("heads must be at most %d, got %d", MaxUnboundedHeads, ctx.Heads),
		}
	}

	return GuardResult{Allowed: true}
}

// CanCrossCheck evaluates whether a brute-force cross-check may run.
// Rules:
// - Limit must be within [1, MaxCrossCheckLimit]
func CanCrossCheck(ctx CrossCheckContext) GuardResult {
	if ctx.Limit < 1 || ctx.Limit > MaxCrossCheckLimit {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("limit must be between 1 and %d, got %d", MaxCrossCheckLimit, ctx.Limit),
		}
	}

	return GuardResult{Allowed: true}
}
