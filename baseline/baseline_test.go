package baseline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlverse/sl3-lecture/baseline"
	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// linearTask builds an n-row task with y = 2x + 1 over covariate x.
func linearTask(t *testing.T, n int) *task.Task {
	t.Helper()
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 2*float64(i) + 1
	}
	tbl, err := task.NewTable([]string{"x", "y"}, map[string][]float64{"x": x, "y": y})
	require.NoError(t, err)
	tk, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous)
	require.NoError(t, err)

	return tk
}

// TestMean_TrainPredict verifies the weighted-mean fit and the nil-task
// prediction default.
func TestMean_TrainPredict(t *testing.T) {
	tbl, err := task.NewTable([]string{"x", "y", "w"}, map[string][]float64{
		"x": {1, 2, 3, 4},
		"y": {10, 20, 30, 40},
		"w": {1, 1, 1, 3},
	})
	require.NoError(t, err)

	// Unweighted: plain mean 25.
	tk, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous)
	require.NoError(t, err)
	fit, err := baseline.NewMean("mean").Train(context.Background(), tk)
	require.NoError(t, err)
	pred, err := fit.Predict(context.Background(), nil)
	require.NoError(t, err)
	col, err := pred.Column("mean")
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 25, 25, 25}, col)

	// Weighted: (10+20+30+120)/6 = 30.
	wtk, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous, task.WithWeightColumn("w"))
	require.NoError(t, err)
	wfit, err := baseline.NewMean("mean").Train(context.Background(), wtk)
	require.NoError(t, err)
	wpred, err := wfit.Predict(context.Background(), nil)
	require.NoError(t, err)
	wcol, err := wpred.Column("mean")
	require.NoError(t, err)
	assert.Equal(t, 30.0, wcol[0], "weights shift the mean")
}

// TestMean_Contract covers the untrained duality and failure modes.
func TestMean_Contract(t *testing.T) {
	spec := baseline.NewMean("mean")
	assert.False(t, spec.IsTrained())

	_, err := spec.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNotTrained)

	_, err = spec.Train(context.Background(), nil)
	assert.ErrorIs(t, err, learner.ErrNilTask)

	// Multivariate outcomes violate the learner's structural assumptions.
	tbl, err := task.NewTable([]string{"x", "y1", "y2"}, map[string][]float64{
		"x": {1, 2}, "y1": {1, 2}, "y2": {3, 4},
	})
	require.NoError(t, err)
	mv, err := task.New(tbl, []string{"x"}, []string{"y1", "y2"}, task.Multivariate)
	require.NoError(t, err)
	_, err = spec.Train(context.Background(), mv)
	assert.ErrorIs(t, err, learner.ErrTrainingFailure)
}

// TestOLS_RecoversLine verifies an exact fit on noiseless linear data and
// prediction on a fresh task through column-name lookup.
func TestOLS_RecoversLine(t *testing.T) {
	tk := linearTask(t, 10)
	fit, err := baseline.NewOLS("ols").Train(context.Background(), tk)
	require.NoError(t, err)
	require.True(t, fit.IsTrained())

	// In-sample predictions reproduce y exactly.
	pred, err := fit.Predict(context.Background(), nil)
	require.NoError(t, err)
	col, err := pred.Column("ols")
	require.NoError(t, err)
	y := tk.OutcomeVector()
	for i := range col {
		assert.InDelta(t, y[i], col[i], 1e-9, "row %d", i)
	}

	// Out-of-sample: x=100 → 201, columns looked up by name.
	tbl, err := task.NewTable([]string{"x", "y"}, map[string][]float64{"x": {100}, "y": {0}})
	require.NoError(t, err)
	fresh, err := task.New(tbl, []string{"x"}, []string{"y"}, task.Continuous)
	require.NoError(t, err)
	pred, err = fit.Predict(context.Background(), fresh)
	require.NoError(t, err)
	col, err = pred.Column("ols")
	require.NoError(t, err)
	assert.InDelta(t, 201.0, col[0], 1e-9)
}

// TestOLS_TrainingFailures covers underdetermined and rank-deficient designs.
func TestOLS_TrainingFailures(t *testing.T) {
	// One observation cannot identify two coefficients.
	tiny := linearTask(t, 1)
	_, err := baseline.NewOLS("ols").Train(context.Background(), tiny)
	assert.ErrorIs(t, err, learner.ErrTrainingFailure, "too few observations")

	// A constant covariate duplicates the intercept column.
	tbl, err := task.NewTable([]string{"c", "y"}, map[string][]float64{
		"c": {1, 1, 1, 1},
		"y": {1, 2, 3, 4},
	})
	require.NoError(t, err)
	tk, err := task.New(tbl, []string{"c"}, []string{"y"}, task.Continuous)
	require.NoError(t, err)
	_, err = baseline.NewOLS("ols").Train(context.Background(), tk)
	assert.ErrorIs(t, err, learner.ErrTrainingFailure, "rank-deficient design")
}

// TestOLS_Chain verifies the derived task carries the prediction column as
// its covariate.
func TestOLS_Chain(t *testing.T) {
	tk := linearTask(t, 8)
	fit, err := baseline.NewOLS("ols").Train(context.Background(), tk)
	require.NoError(t, err)

	chained, err := fit.Chain(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ols"}, chained.Covariates())
	assert.Equal(t, tk.OutcomeVector(), chained.OutcomeVector())
}
