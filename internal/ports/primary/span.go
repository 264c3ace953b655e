package primary

import "context"

// SpanService defines the primary port for negative-span analysis.
type SpanService interface {
	// AnalyzeSequence analyses a user-supplied sequence.
	AnalyzeSequence(ctx context.Context, req AnalyzeSequenceRequest) (*SpanReport, error)

	// GenerateSequence draws a random sequence within an inclusive range.
	GenerateSequence(ctx context.Context, req GenerateSequenceRequest) ([]int, error)

	// SampleSequences returns the canned sequences used for self-testing.
	SampleSequences(ctx context.Context) ([]*SpanSample, error)
}

// AnalyzeSequenceRequest contains the sequence to analyse.
type AnalyzeSequenceRequest struct {
	Values []int
}

// GenerateSequenceRequest contains parameters for random generation.
type GenerateSequenceRequest struct {
	Size int
	Min  int
	Max  int
}

// SpanReport is the full analysis of a sequence at the port boundary.
type SpanReport struct {
	Values    []int
	Sum       int
	MaxIndex  int
	MinIndex  int
	MaxValue  int
	MinValue  int
	Lo        int // lower of MaxIndex/MinIndex
	Hi        int // higher of MaxIndex/MinIndex
	Between   []int
	Negatives []int
}

// SpanSample is a titled sequence for self-testing.
type SpanSample struct {
	Title  string
	Values []int
}
