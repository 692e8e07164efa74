package baseline

import (
	"context"
	"fmt"

	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// OLS is an untrained ordinary-least-squares regressor with an intercept.
// Training solves the weighted normal equations (XᵀWX)β = XᵀWy.
type OLS struct {
	learner.Spec
	name string
}

// NewOLS returns an OLS specification with the given name.
func NewOLS(name string) *OLS { return &OLS{name: name} }

// Name returns the learner's identifier.
func (o *OLS) Name() string { return o.name }

// Train fits β on the task's covariates against the first outcome column.
//
// Errors:
//   - learner.ErrNilTask — t is nil.
//   - learner.ErrTrainingFailure — multivariate outcome, fewer observations
//     than coefficients, or a rank-deficient design matrix.
func (o *OLS) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	if t == nil {
		return nil, learner.ErrNilTask
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.OutcomeType() == task.Multivariate {
		return nil, fmt.Errorf("baseline: %s: multivariate outcome unsupported: %w", o.name, learner.ErrTrainingFailure)
	}

	covariates := t.Covariates()
	p := len(covariates) + 1 // intercept column
	if t.Len() < p {
		return nil, fmt.Errorf("baseline: %s: %d observations for %d coefficients: %w", o.name, t.Len(), p, learner.ErrTrainingFailure)
	}

	x := t.CovariateMatrix()
	y := t.OutcomeVector()
	w := t.Weights()

	// Normal equations: ata = XᵀWX (p×p), atb = XᵀWy, with X carrying an
	// implicit leading 1s column for the intercept.
	ata := make([][]float64, p)
	for j := range ata {
		ata[j] = make([]float64, p)
	}
	atb := make([]float64, p)
	for i := range x {
		row := make([]float64, p)
		row[0] = 1
		copy(row[1:], x[i])
		for j := 0; j < p; j++ {
			for k := j; k < p; k++ {
				ata[j][k] += w[i] * row[j] * row[k]
			}
			atb[j] += w[i] * row[j] * y[i]
		}
	}
	// Mirror the upper triangle; XᵀWX is symmetric.
	for j := 1; j < p; j++ {
		for k := 0; k < j; k++ {
			ata[j][k] = ata[k][j]
		}
	}

	beta, err := solveLinear(ata, atb)
	if err != nil {
		return nil, fmt.Errorf("baseline: %s: rank-deficient design: %w", o.name, learner.ErrTrainingFailure)
	}

	return &olsFit{
		name:       o.name,
		id:         learner.NewFitID(),
		task:       t,
		covariates: covariates,
		intercept:  beta[0],
		coef:       beta[1:],
	}, nil
}

// olsFit is the trained artifact of OLS: an intercept plus one coefficient
// per training covariate, keyed by column name.
type olsFit struct {
	learner.Spec
	name       string
	id         string
	task       *task.Task
	covariates []string
	intercept  float64
	coef       []float64
}

func (f *olsFit) Name() string             { return f.name }
func (f *olsFit) IsTrained() bool          { return true }
func (f *olsFit) ID() string               { return f.id }
func (f *olsFit) TrainingTask() *task.Task { return f.task }

// Train refits the same specification on t, returning a fresh fit.
func (f *olsFit) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	return NewOLS(f.name).Train(ctx, t)
}

// Predict evaluates the linear model on t. Covariates are looked up by the
// training column names, so t may order or surround them differently.
//
// Errors:
//   - task.ErrUnknownColumn — t lacks a training covariate.
func (f *olsFit) Predict(_ context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}

	values := make([]float64, src.Len())
	for i := range values {
		values[i] = f.intercept
	}
	for j, name := range f.covariates {
		col, cerr := src.Column(name)
		if cerr != nil {
			return learner.Prediction{}, cerr
		}
		for i, v := range col {
			values[i] += f.coef[j] * v
		}
	}

	return learner.SingleColumn(f.name, values), nil
}

// Chain derives the standard prediction-as-covariate task.
func (f *olsFit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	return learner.ChainTask(ctx, f, t)
}
