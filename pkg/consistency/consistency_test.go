package consistency

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

type recordingReporter struct {
	reports []*PartialSuccessError
}

func (r *recordingReporter) Report(_ context.Context, e *PartialSuccessError) error {
	r.reports = append(r.reports, e)
	return nil
}

func TestNotFoundError(t *testing.T) {
	err := fmtWrap(NotFound(KindShop, "s1"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err, KindShop))
	assert.False(t, IsNotFound(err, KindUser))
	assert.Equal(t, "shop s1 not found", NotFound(KindShop, "s1").Error())
}

func fmtWrap(err error) error {
	return errors.Join(errors.New("context"), err)
}

func TestPropagatorRunAllSteps(t *testing.T) {
	var calls []string
	step := func(name string) Step {
		return Step{Name: name, Run: func(context.Context) error {
			calls = append(calls, name)
			return nil
		}}
	}
	rep := &recordingReporter{}
	p := NewPropagator(zap.NewNop(), rep)

	err := p.Run(context.Background(), "add", "r1", "rating.create", step("a"), step("b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Empty(t, rep.reports)
}

func TestPropagatorStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var calls []string
	rep := &recordingReporter{}
	p := NewPropagator(zap.NewNop(), rep)

	err := p.Run(context.Background(), "add_rating", "r1", "rating.create",
		Step{Name: "user.ratingIds", Run: func(context.Context) error { calls = append(calls, "user"); return nil }},
		Step{Name: "shop.ratingIds", Run: func(context.Context) error { calls = append(calls, "shop"); return boom }},
		Step{Name: "never", Run: func(context.Context) error { calls = append(calls, "never"); return nil }},
	)

	var partial *PartialSuccessError
	require.ErrorAs(t, err, &partial)
	assert.ErrorIs(t, err, ErrPartialSuccess)
	assert.ErrorIs(t, err, boom)
	want := &PartialSuccessError{
		Operation:  "add_rating",
		ResourceID: "r1",
		Completed:  []string{"rating.create", "user.ratingIds"},
		Failed:     "shop.ratingIds",
		Skipped:    []string{"never"},
		Err:        boom,
	}
	if diff := cmp.Diff(want, partial, cmp.Comparer(func(a, b error) bool { return a == b })); diff != "" {
		t.Errorf("partial success mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"user", "shop"}, calls)
	require.Len(t, rep.reports, 1)
	assert.Same(t, partial, rep.reports[0])
}

func TestPropagatorIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPropagator(zap.NewNop(), nil)

	err := p.Run(ctx, "op", "id", "commit", Step{Name: "s", Run: func(ctx context.Context) error {
		return ctx.Err()
	}})
	assert.NoError(t, err)
}

func TestObserve(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	Observe(scope, "add", nil)
	Observe(scope, "add", ErrConflict)
	Observe(scope, "add", &PartialSuccessError{Err: errors.New("x")})

	counters := scope.Snapshot().Counters()
	assert.Len(t, counters, 3)
	for _, c := range counters {
		assert.Equal(t, int64(1), c.Value())
	}
}
