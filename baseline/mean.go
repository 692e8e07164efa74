package baseline

import (
	"context"
	"fmt"

	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// Mean is an untrained weighted-mean predictor: its fit predicts the
// weighted mean of the training outcome for every observation.
type Mean struct {
	learner.Spec
	name string
}

// NewMean returns a Mean specification with the given name. The name becomes
// the fit's prediction column and risk key.
func NewMean(name string) *Mean { return &Mean{name: name} }

// Name returns the learner's identifier.
func (m *Mean) Name() string { return m.name }

// Train computes the weighted mean of the first outcome column.
//
// Errors:
//   - learner.ErrNilTask — t is nil.
//   - learner.ErrTrainingFailure — empty task, zero total weight, or a
//     multivariate outcome (this learner predicts a single column).
func (m *Mean) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	if t == nil {
		return nil, learner.ErrNilTask
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.OutcomeType() == task.Multivariate {
		return nil, fmt.Errorf("baseline: %s: multivariate outcome unsupported: %w", m.name, learner.ErrTrainingFailure)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("baseline: %s: empty task: %w", m.name, learner.ErrTrainingFailure)
	}

	y := t.OutcomeVector()
	w := t.Weights()
	var sum, wsum float64
	for i := range y {
		sum += w[i] * y[i]
		wsum += w[i]
	}
	if wsum == 0 {
		return nil, fmt.Errorf("baseline: %s: zero total weight: %w", m.name, learner.ErrTrainingFailure)
	}

	return &meanFit{
		name: m.name,
		id:   learner.NewFitID(),
		task: t,
		mean: sum / wsum,
	}, nil
}

// meanFit is the trained artifact of Mean: a single scalar.
type meanFit struct {
	learner.Spec
	name string
	id   string
	task *task.Task
	mean float64
}

func (f *meanFit) Name() string             { return f.name }
func (f *meanFit) IsTrained() bool          { return true }
func (f *meanFit) ID() string               { return f.id }
func (f *meanFit) TrainingTask() *task.Task { return f.task }

// Train refits the same specification on t, returning a fresh fit.
func (f *meanFit) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	return NewMean(f.name).Train(ctx, t)
}

// Predict returns the trained mean for every observation of t (or of the
// training task when t is nil).
func (f *meanFit) Predict(_ context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}

	values := make([]float64, src.Len())
	for i := range values {
		values[i] = f.mean
	}

	return learner.SingleColumn(f.name, values), nil
}

// Chain derives the standard prediction-as-covariate task.
func (f *meanFit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	return learner.ChainTask(ctx, f, t)
}
