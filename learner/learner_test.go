package learner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlverse/sl3-lecture/folds"
	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// constLearner is a minimal contract implementation for these tests: it
// "trains" by remembering nothing and predicts a fixed constant.
type constLearner struct {
	learner.Spec
	name  string
	value float64
}

func (c *constLearner) Name() string { return c.name }

func (c *constLearner) Train(_ context.Context, t *task.Task) (learner.Fit, error) {
	if t == nil {
		return nil, learner.ErrNilTask
	}

	return &constFit{constLearner: constLearner{name: c.name, value: c.value}, id: learner.NewFitID(), task: t}, nil
}

type constFit struct {
	constLearner
	id   string
	task *task.Task
}

func (f *constFit) IsTrained() bool          { return true }
func (f *constFit) ID() string               { return f.id }
func (f *constFit) TrainingTask() *task.Task { return f.task }

func (f *constFit) Predict(_ context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}
	values := make([]float64, src.Len())
	for i := range values {
		values[i] = f.value
	}

	return learner.SingleColumn(f.name, values), nil
}

func (f *constFit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	return learner.ChainTask(ctx, f, t)
}

// newTestTask builds a 6-row task with folds over columns x → y.
func newTestTask(t *testing.T) *task.Task {
	t.Helper()
	tbl, err := task.NewTable([]string{"x", "y"}, map[string][]float64{
		"x": {0, 1, 2, 3, 4, 5},
		"y": {1, 2, 3, 4, 5, 6},
	})
	require.NoError(t, err)

	opts := folds.DefaultOptions()
	opts.FirstWindow = 3
	opts.ValidationSize = 1
	fs, err := folds.Make(6, folds.RollingOrigin, opts)
	require.NoError(t, err)

	tk, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous, task.WithFolds(fs))
	require.NoError(t, err)

	return tk
}

// TestSpec_Untrained verifies the untrained half of the spec/fit duality.
func TestSpec_Untrained(t *testing.T) {
	spec := &constLearner{name: "c", value: 1}
	assert.False(t, spec.IsTrained())

	_, err := spec.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNotTrained, "predict before train")

	_, err = spec.Chain(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNotTrained, "chain before train")
}

// TestTrain_ReturnsNewFit verifies Train produces a distinct trained value
// with a unique ID and a training-task reference, leaving the spec as is.
func TestTrain_ReturnsNewFit(t *testing.T) {
	tk := newTestTask(t)
	spec := &constLearner{name: "c", value: 2}

	fit, err := spec.Train(context.Background(), tk)
	require.NoError(t, err)
	assert.True(t, fit.IsTrained())
	assert.False(t, spec.IsTrained(), "spec stays untrained")
	assert.Same(t, tk, fit.TrainingTask())
	assert.NotEmpty(t, fit.ID())

	again, err := spec.Train(context.Background(), tk)
	require.NoError(t, err)
	assert.NotEqual(t, fit.ID(), again.ID(), "each training produces a fresh fit")
}

// TestResolveTask verifies the documented nil-task default-resolution rule.
func TestResolveTask(t *testing.T) {
	tk := newTestTask(t)
	fit, err := (&constLearner{name: "c", value: 1}).Train(context.Background(), tk)
	require.NoError(t, err)

	pred, err := fit.Predict(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, tk.Len(), pred.Rows(), "nil task predicts on the training task")

	view, err := tk.View(folds.Range{Start: 0, End: 2})
	require.NoError(t, err)
	pred, err = fit.Predict(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, 2, pred.Rows(), "explicit task wins over the default")
}

// TestChainTask verifies the generic chain derivation: predictions become
// covariates while outcome, weights, outcome type, and folds carry forward.
func TestChainTask(t *testing.T) {
	tk := newTestTask(t)
	fit, err := (&constLearner{name: "c", value: 7}).Train(context.Background(), tk)
	require.NoError(t, err)

	chained, err := fit.Chain(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"c"}, chained.Covariates(), "prediction column becomes the covariate")
	assert.Equal(t, []string{"y"}, chained.Outcomes(), "outcome carried forward")
	assert.Equal(t, task.Continuous, chained.OutcomeType())
	assert.Equal(t, tk.Len(), chained.Len())
	assert.Equal(t, tk.Folds(), chained.Folds(), "fold assignment carried forward")

	c, err := chained.Column("c")
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7, 7, 7, 7}, c)
	assert.Equal(t, tk.OutcomeVector(), chained.OutcomeVector())
}

// TestChainTask_NameCollision verifies a prediction column colliding with an
// outcome column is rejected.
func TestChainTask_NameCollision(t *testing.T) {
	tk := newTestTask(t)
	fit, err := (&constLearner{name: "y", value: 1}).Train(context.Background(), tk)
	require.NoError(t, err)

	_, err = fit.Chain(context.Background(), nil)
	assert.ErrorIs(t, err, task.ErrDuplicateColumn)
}
