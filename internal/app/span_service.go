package app

import (
	"context"
	"slices"

	"go.uber.org/zap"

	corespan "github.com/example/casework/internal/core/span"
	"github.com/example/casework/internal/ports/primary"
	"github.com/example/casework/internal/ports/secondary"
)

// spanSamples are the canned sequences covering the interesting shapes.
var spanSamples = []primary.SpanSample{
	{Title: "Ordinary case", Values: []int{3, -2, 8, -5, 1, -3, 9, -1, 2}},
	{Title: "No negative elements", Values: []int{1, 5, 2, 8, 3, 4}},
	{Title: "Maximum and minimum adjacent", Values: []int{5, 9, 1, 3, 7}},
	{Title: "Single element", Values: []int{5}},
	{Title: "Two elements", Values: []int{3, -2}},
	{Title: "All elements negative", Values: []int{-5, -2, -8, -1, -3}},
}

// SpanServiceImpl implements the SpanService interface.
type SpanServiceImpl struct {
	source secondary.NumberSource
	logger *zap.Logger
}

// NewSpanService creates a new SpanService with injected dependencies.
func NewSpanService(source secondary.NumberSource, logger *zap.Logger) *SpanServiceImpl {
	return &SpanServiceImpl{
		source: source,
		logger: logger,
	}
}

// AnalyzeSequence analyses a user-supplied sequence.
func (s *SpanServiceImpl) AnalyzeSequence(ctx context.Context, req primary.AnalyzeSequenceRequest) (*primary.SpanReport, error) {
	guardCtx := corespan.AnalyzeContext{Length: len(req.Values)}
	if result := corespan.CanAnalyze(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	values := slices.Clone(req.Values)
	r := corespan.Analyze(values)
	lo, hi := r.Bounds()
	between := corespan.Between(values, r)

	report := &primary.SpanReport{
		Values:    values,
		Sum:       r.Sum,
		MaxIndex:  r.MaxIndex,
		MinIndex:  r.MinIndex,
		MaxValue:  values[r.MaxIndex],
		MinValue:  values[r.MinIndex],
		Lo:        lo,
		Hi:        hi,
		Between:   between,
		Negatives: corespan.Negatives(between),
	}

	s.logger.Debug("analyzed sequence",
		zap.Int("size", len(values)),
		zap.Int("max_index", r.MaxIndex),
		zap.Int("min_index", r.MinIndex),
		zap.Int("sum", r.Sum))

	return report, nil
}

// GenerateSequence draws Size values uniformly from [Min, Max].
func (s *SpanServiceImpl) GenerateSequence(ctx context.Context, req primary.GenerateSequenceRequest) ([]int, error) {
	guardCtx := corespan.GenerateContext{
		Size: req.Size,
		Min:  req.Min,
		Max:  req.Max,
	}
	if result := corespan.CanGenerate(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	width := req.Max - req.Min + 1
	values := make([]int, req.Size)
	for i := range values {
		values[i] = req.Min + s.source.IntN(width)
	}

	s.logger.Debug("generated sequence",
		zap.Int("size", req.Size),
		zap.Int("min", req.Min),
		zap.Int("max", req.Max))

	return values, nil
}

// SampleSequences returns the canned self-test sequences.
func (s *SpanServiceImpl) SampleSequences(ctx context.Context) ([]*primary.SpanSample, error) {
	samples := make([]*primary.SpanSample, len(spanSamples))
	for i, sample := range spanSamples {
		samples[i] = &primary.SpanSample{
			Title:  sample.Title,
			Values: slices.Clone(sample.Values),
		}
	}
	return samples, nil
}

// Ensure SpanServiceImpl implements the interface
var _ primary.SpanService = (*SpanServiceImpl)(nil)
