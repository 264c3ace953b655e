package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	coredragon "github.com/example/casework/internal/core/dragon"
	"github.com/example/casework/internal/ports/primary"
)

// DragonSettings holds the head counts the reports run over.
type DragonSettings struct {
	SuiteHeads       []int
	CompositionHeads []int
	VerifyLimit      int
}

// DragonServiceImpl implements the DragonService interface.
type DragonServiceImpl struct {
	settings DragonSettings
	logger   *zap.Logger
}

// NewDragonService creates a new DragonService with injected dependencies.
func NewDragonService(settings DragonSettings, logger *zap.Logger) *DragonServiceImpl {
	return &DragonServiceImpl{
		settings: settings,
		logger:   logger,
	}
}

// Solve finds the strongest flock for req.Heads and verifies it.
func (s *DragonServiceImpl) Solve(ctx context.Context, req primary.SolveRequest) (*primary.DragonSolution, error) {
	guardCtx := coredragon.SolveContext{Heads: req.Heads}
	guard := coredragon.CanSolveUnbounded
	if req.Bounded {
		guard = coredragon.CanSolve
	}
	if result := guard(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	solution := s.solve(req.Heads)

	s.logger.Debug("solved flock",
		zap.Int("heads", req.Heads),
		zap.Stringer("power", solution.Power),
		zap.Ints("dragons", solution.Dragons))

	return solution, nil
}

// Suite solves every configured suite head count.
func (s *DragonServiceImpl) Suite(ctx context.Context) ([]*primary.DragonSolution, error) {
	return s.solveAll(s.settings.SuiteHeads), nil
}

// Composition solves the configured composition head counts.
func (s *DragonServiceImpl) Composition(ctx context.Context) ([]*primary.DragonSolution, error) {
	return s.solveAll(s.settings.CompositionHeads), nil
}

// CrossCheck compares MaxProduct with BruteForceMax for 1..Limit.
func (s *DragonServiceImpl) CrossCheck(ctx context.Context, req primary.CrossCheckRequest) ([]*primary.CrossCheckRow, error) {
	limit := req.Limit
	if limit == 0 {
		limit = s.settings.VerifyLimit
	}

	guardCtx := coredragon.CrossCheckContext{Limit: limit}
	if result := coredragon.CanCrossCheck(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	rows := make([]*primary.CrossCheckRow, 0, limit)
	for n := 1; n <= limit; n++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cross-check interrupted at %d heads: %w", n, err)
		}

		fastPower, fastDragons := coredragon.Solve(n)
		brutePower, bruteDragons := coredragon.BruteForceMax(n, coredragon.MaxHeads)

		row := &primary.CrossCheckRow{
			Heads:        n,
			FastPower:    fastPower,
			FastDragons:  fastDragons,
			BrutePower:   brutePower,
			BruteDragons: bruteDragons,
			Match:        fastPower.Cmp(brutePower) == 0,
		}
		if !row.Match {
			s.logger.Warn("cross-check mismatch",
				zap.Int("heads", n),
				zap.Stringer("fast", fastPower),
				zap.Stringer("brute", brutePower))
		}
		rows = append(rows, row)
	}

	s.logger.Debug("cross-check complete", zap.Int("limit", limit))
	return rows, nil
}

func (s *DragonServiceImpl) solveAll(heads []int) []*primary.DragonSolution {
	solutions := make([]*primary.DragonSolution, len(heads))
	for i, n := range heads {
		solutions[i] = s.solve(n)
	}
	return solutions
}

func (s *DragonServiceImpl) solve(n int) *primary.DragonSolution {
	power, dragons := coredragon.Solve(n)
	sumMatches, verified := coredragon.Verify(dragons, n)

	return &primary.DragonSolution{
		Heads:         n,
		Power:         power,
		Dragons:       dragons,
		Twos:          coredragon.Count(dragons, 2),
		Threes:        coredragon.Count(dragons, 3),
		SumMatches:    sumMatches,
		VerifiedPower: verified,
	}
}

// Ensure DragonServiceImpl implements the interface
var _ primary.DragonService = (*DragonServiceImpl)(nil)
