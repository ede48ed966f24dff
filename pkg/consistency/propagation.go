package consistency

import (
	"context"
	"errors"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Step is one remote write performed after a committed mutation.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Reporter publishes partial successes for later reconciliation.
type Reporter interface {
	Report(ctx context.Context, e *PartialSuccessError) error
}

// Propagator runs the ordered steps that follow a committed mutation.
type Propagator struct {
	logger   *zap.Logger
	reporter Reporter
}

// NewPropagator creates a new propagator. reporter may be nil.
func NewPropagator(logger *zap.Logger, reporter Reporter) *Propagator {
	return &Propagator{logger: logger, reporter: reporter}
}

// Run executes steps in order after the mutation named committed succeeded.
//
// Steps run on a context detached from the cancellation of ctx: a caller that
// goes away after the commit does not abort propagation. The first failing
// step stops the sequence and is returned as a *PartialSuccessError.
func (p *Propagator) Run(ctx context.Context, op, resourceID, committed string, steps ...Step) error {
	detached := context.WithoutCancel(ctx)
	completed := []string{committed}
	for i, s := range steps {
		if err := s.Run(detached); err != nil {
			partial := &PartialSuccessError{
				Operation:  op,
				ResourceID: resourceID,
				Completed:  completed,
				Failed:     s.Name,
				Skipped:    stepNames(steps[i+1:]),
				Err:        err,
			}
			p.fail(detached, partial)
			return partial
		}
		completed = append(completed, s.Name)
	}
	return nil
}

func (p *Propagator) fail(ctx context.Context, e *PartialSuccessError) {
	p.logger.Warn("Relationship propagation incomplete",
		zap.String("operation", e.Operation),
		zap.String("resourceId", e.ResourceID),
		zap.Strings("completed", e.Completed),
		zap.String("failed", e.Failed),
		zap.Strings("skipped", e.Skipped),
		zap.Error(e.Err),
	)
	if p.reporter == nil {
		return
	}
	if err := p.reporter.Report(ctx, e); err != nil {
		p.logger.Error("Failed to report divergence", zap.String("resourceId", e.ResourceID), zap.Error(err))
	}
}

func stepNames(steps []Step) []string {
	if len(steps) == 0 {
		return nil
	}
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Name)
	}
	return names
}

// Observe counts the outcome of op on scope.
func Observe(scope tally.Scope, op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrPartialSuccess):
		outcome = "partial"
	default:
		outcome = "error"
	}
	scope.Tagged(map[string]string{"operation": op, "outcome": outcome}).Counter("requests").Inc(1)
}
