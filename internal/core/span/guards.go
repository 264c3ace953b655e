package span

import (
	"fmt"
	"math"
)

// MaxGenerateSize bounds the length of a generated sequence.
const MaxGenerateSize = 1_000_000

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

// AnalyzeContext provides context for analysis guards.
type AnalyzeContext struct {
	Length int
}

// GenerateContext provides context for random sequence generation guards.
type GenerateContext struct {
	Size int
	Min  int
	Max  int
}

// CanAnalyze evaluates whether a user-supplied sequence can be analysed.
// Rules:
// - Sequence must not be empty
func CanAnalyze(ctx AnalyzeContext) GuardResult {
	if ctx.Length == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "sequence must not be empty",
		}
	}

	return GuardResult{Allowed: true}
}

// CanGenerate evaluates whether a random sequence can be generated.
// Rules:
// - Size must be positive
// - Size must not exceed MaxGenerateSize
// - Min must not exceed max
// - Range width must fit in an int
func CanGenerate(ctx GenerateContext) GuardResult {
	// Rule 1: Size must be positive
	if ctx.Size <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("size must be positive (got %d)", ctx.Size),
		}
	}

	// Rule 2: Size must be bounded
	if ctx.Size > MaxGenerateSize {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("size must be at most %d (got %d)", MaxGenerateSize, ctx.Size),
		}
	}

	// Rule 3: Range must not be inverted
	if ctx.Min > ctx.Max {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("min value %d cannot be greater than max value %d", ctx.Min, ctx.Max),
		}
	}

	// Rule 4: Max-Min+1 must not overflow
	if uint64(ctx.Max)-uint64(ctx.Min) >= math.MaxInt {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("range [%d, %d] is too wide", ctx.Min, ctx.Max),
		}
	}

	return GuardResult{Allowed: true}
}
