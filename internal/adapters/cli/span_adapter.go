package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/casework/internal/ports/primary"
)

// SpanAdapter is a thin adapter that translates CLI operations to SpanService calls.
// It depends only on the SpanService interface, enabling easy testing with mocks.
type SpanAdapter struct {
	service primary.SpanService
	out     io.Writer
}

// NewSpanAdapter creates a new SpanAdapter with the given service.
func NewSpanAdapter(service primary.SpanService, out io.Writer) *SpanAdapter {
	return &SpanAdapter{
		service: service,
		out:     out,
	}
}

// Analyze analyses values and prints the detailed report.
func (a *SpanAdapter) Analyze(ctx context.Context, values []int) error {
	report, err := a.service.AnalyzeSequence(ctx, primary.AnalyzeSequenceRequest{Values: values})
	if err != nil {
		return fmt.Errorf("failed to analyze sequence: %w", err)
	}

	a.printReport(report)
	return nil
}

// Generate draws a random sequence and prints its analysis.
func (a *SpanAdapter) Generate(ctx context.Context, size, minVal, maxVal int) error {
	values, err := a.service.GenerateSequence(ctx, primary.GenerateSequenceRequest{
		Size: size,
		Min:  minVal,
		Max:  maxVal,
	})
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	return a.Analyze(ctx, values)
}

// Samples analyses every canned sequence under its title.
func (a *SpanAdapter) Samples(ctx context.Context) error {
	samples, err := a.service.SampleSequences(ctx)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}

	fmt.Fprintln(a.out, headerColor.Sprint("=== SELF TEST ==="))
	fmt.Fprintln(a.out)

	for i, sample := range samples {
		fmt.Fprintf(a.out, "Test %d: %s\n", i+1, sample.Title)
		if err := a.Analyze(ctx, sample.Values); err != nil {
			return err
		}
	}
	return nil
}

func (a *SpanAdapter) printReport(r *primary.SpanReport) {
	fmt.Fprintf(a.out, "Array: %s\n", formatList(r.Values))
	fmt.Fprintf(a.out, "Size: %d\n", len(r.Values))
	fmt.Fprintf(a.out, "Maximum: %d (index %d)\n", r.MaxValue, r.MaxIndex)
	fmt.Fprintf(a.out, "Minimum: %d (index %d)\n", r.MinValue, r.MinIndex)
	fmt.Fprintf(a.out, "Interval between maximum and minimum: indices %d - %d\n", r.Lo+1, r.Hi-1)

	switch {
	case r.Hi-r.Lo <= 1:
		fmt.Fprintln(a.out, mutedColor.Sprint("No elements between maximum and minimum"))
	case len(r.Negatives) == 0:
		fmt.Fprintf(a.out, "Elements between maximum and minimum: %s\n", formatList(r.Between))
		fmt.Fprintln(a.out, mutedColor.Sprint("No negative elements between maximum and minimum"))
	default:
		fmt.Fprintf(a.out, "Elements between maximum and minimum: %s\n", formatList(r.Between))
		fmt.Fprintf(a.out, "Negative elements: %s\n", formatList(r.Negatives))
		fmt.Fprintf(a.out, "Sum of negative elements: %d\n", r.Sum)
	}

	fmt.Fprintf(a.out, "%s %d\n", answerColor.Sprint("ANSWER:"), r.Sum)
	fmt.Fprintln(a.out, separator)
}
