package cv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlverse/sl3-lecture/baseline"
	"github.com/tlverse/sl3-lecture/cv"
	"github.com/tlverse/sl3-lecture/folds"
	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/stack"
	"github.com/tlverse/sl3-lecture/task"
)

// foldedTask builds a 9-row task with y = i+1 and three rolling-origin
// folds: train [0,3) val [3,5), train [0,5) val [5,7), train [0,7) val [7,9).
func foldedTask(t *testing.T) *task.Task {
	t.Helper()
	x := make([]float64, 9)
	y := make([]float64, 9)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i) + 1
	}
	tbl, err := task.NewTable([]string{"x", "y"}, map[string][]float64{"x": x, "y": y})
	require.NoError(t, err)

	opts := folds.DefaultOptions()
	opts.FirstWindow = 3
	opts.ValidationSize = 2
	opts.Batch = 2
	fs, err := folds.Make(9, folds.RollingOrigin, opts)
	require.NoError(t, err)
	require.Len(t, fs, 3)

	tk, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous, task.WithFolds(fs))
	require.NoError(t, err)

	return tk
}

// TestNew_Validation rejects a nil base learner.
func TestNew_Validation(t *testing.T) {
	_, err := cv.New("cv", nil)
	assert.ErrorIs(t, err, learner.ErrEmptyComposition)
}

// TestTrain_RequiresFolds verifies a task without a fold assignment is
// rejected with ErrMissingFolds.
func TestTrain_RequiresFolds(t *testing.T) {
	tbl, err := task.NewTable([]string{"x", "y"},
		map[string][]float64{"x": {0, 1, 2}, "y": {1, 2, 3}})
	require.NoError(t, err)
	plain, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous)
	require.NoError(t, err)

	c, err := cv.New("cv", baseline.NewMean("mean"))
	require.NoError(t, err)

	_, err = c.Train(context.Background(), plain)
	assert.ErrorIs(t, err, cv.ErrMissingFolds)
	_, err = c.Train(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNilTask)
}

// TestTrain_PerFoldFits verifies one private fit per fold, each trained on
// that fold's training view only, and that the wrapped learner itself stays
// untrained.
func TestTrain_PerFoldFits(t *testing.T) {
	tk := foldedTask(t)
	base := baseline.NewMean("mean")
	c, err := cv.New("cv", base)
	require.NoError(t, err)

	fit, err := c.Train(context.Background(), tk)
	require.NoError(t, err)

	cf, ok := fit.(*cv.Fit)
	require.True(t, ok)
	foldFits := cf.FoldFits()
	require.Len(t, foldFits, 3)
	assert.Equal(t, 3, foldFits[0].TrainingTask().Len(), "fold 0 trains on [0,3)")
	assert.Equal(t, 5, foldFits[1].TrainingTask().Len(), "fold 1 trains on [0,5)")
	assert.Equal(t, 7, foldFits[2].TrainingTask().Len(), "fold 2 trains on [0,7)")

	assert.False(t, base.IsTrained(), "the wrapped learner is never marked trained")
}

// TestPredict_OutOfFold verifies the out-of-fold predictions: fold k's mean
// evaluated on fold k's validation rows, concatenated in fold order, with
// exactly one row per validation observation and none for the rows never
// held out.
func TestPredict_OutOfFold(t *testing.T) {
	tk := foldedTask(t)
	c, err := cv.New("cv", baseline.NewMean("mean"))
	require.NoError(t, err)
	fit, err := c.Train(context.Background(), tk)
	require.NoError(t, err)

	pred, err := fit.Predict(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 6, pred.Rows(), "rows 3..8 are held out; rows 0..2 never are")
	require.Equal(t, []string{"mean"}, pred.Names())

	// Fold means: (1+2+3)/3=2, (1+..+5)/5=3, (1+..+7)/7=4.
	got, err := pred.Column("mean")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 3, 3, 4, 4}, got, 1e-12)
}

// TestRisk_MatchesHandComputation verifies the cross-validated risk equals
// the pooled weighted mean loss computed by hand over the same rows.
func TestRisk_MatchesHandComputation(t *testing.T) {
	tk := foldedTask(t)
	c, err := cv.New("cv", baseline.NewMean("mean"))
	require.NoError(t, err)
	fit, err := c.Train(context.Background(), tk)
	require.NoError(t, err)

	cf, ok := fit.(*cv.Fit)
	require.True(t, ok)
	risks, err := cf.Risk(context.Background(), learner.SquaredError)
	require.NoError(t, err)
	require.Contains(t, risks, "mean")

	// Observed 4,5,6,7,8,9 against predictions 2,2,3,3,4,4:
	// (4+9+9+16+16+25)/6 = 79/6.
	assert.InDelta(t, 79.0/6.0, risks["mean"], 1e-12)
}

// TestChain_OOFTask verifies the derived meta-learning task: prediction
// columns as covariates, validation-row outcomes, and no fold assignment.
func TestChain_OOFTask(t *testing.T) {
	tk := foldedTask(t)
	s, err := stack.New("s", baseline.NewMean("mean"), baseline.NewOLS("ols"))
	require.NoError(t, err)
	c, err := cv.New("cv", s)
	require.NoError(t, err)
	fit, err := c.Train(context.Background(), tk)
	require.NoError(t, err)

	chained, err := fit.Chain(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mean", "ols"}, chained.Covariates())
	assert.Equal(t, []string{"y"}, chained.Outcomes())
	assert.Equal(t, 6, chained.Len(), "one row per held-out observation")
	assert.Empty(t, chained.Folds(), "reindexed rows invalidate the original windows")

	y, err := chained.Column("y")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 5, 6, 7, 8, 9}, y, 1e-12,
		"outcomes come from the validation rows in fold order")
}

// TestRisk_PerStackMember verifies a stacked base yields one risk entry per
// member, keyed by member name.
func TestRisk_PerStackMember(t *testing.T) {
	tk := foldedTask(t)
	s, err := stack.New("s", baseline.NewMean("mean"), baseline.NewOLS("ols"))
	require.NoError(t, err)
	c, err := cv.New("cv", s)
	require.NoError(t, err)
	fit, err := c.Train(context.Background(), tk)
	require.NoError(t, err)

	cf, ok := fit.(*cv.Fit)
	require.True(t, ok)
	risks, err := cf.Risk(context.Background(), learner.SquaredError)
	require.NoError(t, err)
	require.Len(t, risks, 2)

	// y = x+1 exactly, so OLS generalizes perfectly out of fold while the
	// mean cannot follow the trend.
	assert.InDelta(t, 0, risks["ols"], 1e-6)
	assert.Greater(t, risks["mean"], 1.0)
}

// TestUntrained_Surface verifies the spec side of the duality.
func TestUntrained_Surface(t *testing.T) {
	c, err := cv.New("cv", baseline.NewMean("mean"))
	require.NoError(t, err)
	assert.False(t, c.IsTrained())

	_, err = c.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNotTrained)
	_, err = c.Chain(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNotTrained)
}
