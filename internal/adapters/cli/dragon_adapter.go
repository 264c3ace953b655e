package cli

import (
	"context"
	"fmt"
	"io"

	coredragon "github.com/example/casework/internal/core/dragon"
	"github.com/example/casework/internal/ports/primary"
)

// DragonAdapter is a thin adapter that translates CLI operations to DragonService calls.
type DragonAdapter struct {
	service primary.DragonService
	out     io.Writer
}

// NewDragonAdapter creates a new DragonAdapter with the given service.
func NewDragonAdapter(service primary.DragonService, out io.Writer) *DragonAdapter {
	return &DragonAdapter{
		service: service,
		out:     out,
	}
}

// Solve solves a flock of heads and prints the detailed solution.
// Bounded applies the interactive 1..99 range.
func (a *DragonAdapter) Solve(ctx context.Context, heads int, bounded bool) error {
	solution, err := a.service.Solve(ctx, primary.SolveRequest{Heads: heads, Bounded: bounded})
	if err != nil {
		return fmt.Errorf("failed to solve flock: %w", err)
	}

	a.printSolution(solution)
	return nil
}

// Suite prints detailed solutions for every suite head count followed by
// the composition summary.
func (a *DragonAdapter) Suite(ctx context.Context) error {
	solutions, err := a.service.Suite(ctx)
	if err != nil {
		return fmt.Errorf("failed to run suite: %w", err)
	}

	fmt.Fprintln(a.out, headerColor.Sprint("=== COMPREHENSIVE TESTS ==="))
	fmt.Fprintln(a.out)
	for _, s := range solutions {
		fmt.Fprintf(a.out, "Test for N = %d:\n", s.Heads)
		a.printSolution(s)
	}

	composition, err := a.service.Composition(ctx)
	if err != nil {
		return fmt.Errorf("failed to run composition check: %w", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, headerColor.Sprint("=== COMPOSITION CHECK ==="))
	fmt.Fprintln(a.out, "For large N the optimal flock should consist mostly of threes:")
	for _, s := range composition {
		fmt.Fprintf(a.out, "N=%d: twos=%d, threes=%d, power=%s\n", s.Heads, s.Twos, s.Threes, s.Power)
	}
	return nil
}

// CrossCheck prints the fast-versus-brute-force table for 1..limit.
// A zero limit uses the configured default. Mismatches are reported and
// returned as an error.
func (a *DragonAdapter) CrossCheck(ctx context.Context, limit int) error {
	rows, err := a.service.CrossCheck(ctx, primary.CrossCheckRequest{Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to cross-check: %w", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, headerColor.Sprint("=== ALGORITHM VERIFICATION ==="))

	mismatches := 0
	for _, row := range rows {
		fmt.Fprintf(a.out, "N=%2d: fast=%3d, brute=%3d %s\n", row.Heads, row.FastPower, row.BrutePower, checkMark(row.Match))
		if !row.Match {
			mismatches++
			fmt.Fprintf(a.out, "  fast algorithm: %s\n", formatList(row.FastDragons))
			fmt.Fprintf(a.out, "  brute force:    %s\n", formatList(row.BruteDragons))
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("cross-check found %d mismatches", mismatches)
	}
	return nil
}

func (a *DragonAdapter) printSolution(s *primary.DragonSolution) {
	fmt.Fprintf(a.out, "Problem: find the maximum power of a flock with %d heads\n", s.Heads)
	fmt.Fprintf(a.out, "Constraint: at most %d heads per dragon\n", coredragon.MaxHeads)
	fmt.Fprintln(a.out)

	if s.Heads <= 0 {
		fmt.Fprintln(a.out, failColor.Sprint("Invalid number of heads!"))
		return
	}

	total := 0
	for _, d := range s.Dragons {
		total += d
	}

	verdict := okColor.Sprint("correct")
	if !s.SumMatches {
		verdict = failColor.Sprint("incorrect")
	}

	fmt.Fprintf(a.out, "Optimal distribution: %s\n", formatList(s.Dragons))
	fmt.Fprintf(a.out, "Dragons in flock: %d\n", len(s.Dragons))
	fmt.Fprintf(a.out, "Head sum check: %s = %d\n", joinInts(s.Dragons, " + "), total)
	fmt.Fprintf(a.out, "Power: %s = %s\n", joinInts(s.Dragons, " × "), s.Power)
	fmt.Fprintf(a.out, "Check: head sum %s\n", verdict)
	fmt.Fprintf(a.out, "Computed power: %s\n", s.VerifiedPower)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s %s\n", answerColor.Sprint("ANSWER:"), s.Power)
	fmt.Fprintln(a.out, separator)
}
