package cv

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tlverse/sl3-lecture/folds"
	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// ErrMissingFolds indicates Train was given a task without a fold
// assignment; cross-validation is undefined without one.
var ErrMissingFolds = errors.New("cv: task carries no fold assignment")

// CVLearner wraps a single learner (commonly a stack) and repeats
// train/predict across every fold of the task it is trained on.
type CVLearner struct {
	learner.Spec
	name string
	base learner.Learner
}

// New builds a CVLearner around base.
//
// Errors:
//   - learner.ErrEmptyComposition — base is nil.
func New(name string, base learner.Learner) (*CVLearner, error) {
	if base == nil {
		return nil, fmt.Errorf("cv %q: nil base learner: %w", name, learner.ErrEmptyComposition)
	}

	return &CVLearner{name: name, base: base}, nil
}

// Name returns the wrapper's identifier.
func (c *CVLearner) Name() string { return c.name }

// Train fits one private copy of the wrapped learner per fold, each on that
// fold's training view. Folds are independent and train concurrently. The
// wrapped learner itself is never marked trained — only the per-fold fits
// are, and they live inside the returned Fit.
//
// Errors:
//   - learner.ErrNilTask — t is nil.
//   - ErrMissingFolds — t carries no FoldSet.
//   - any member failure propagates unchanged; partial fits are discarded.
func (c *CVLearner) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	if t == nil {
		return nil, fmt.Errorf("cv %q: %w", c.name, learner.ErrNilTask)
	}
	fs := t.Folds()
	if len(fs) == 0 {
		return nil, fmt.Errorf("cv %q: %w", c.name, ErrMissingFolds)
	}

	fits := make([]learner.Fit, len(fs))
	g, gctx := errgroup.WithContext(ctx)
	for k, fold := range fs {
		k, fold := k, fold
		g.Go(func() error {
			view, err := t.TrainView(fold)
			if err != nil {
				return fmt.Errorf("cv %q: fold %d: %w", c.name, fold.ID, err)
			}
			fit, err := c.base.Train(gctx, view)
			if err != nil {
				return fmt.Errorf("cv %q: fold %d: %w", c.name, fold.ID, err)
			}
			fits[k] = fit

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Fit{name: c.name, id: learner.NewFitID(), fits: fits, folds: fs, task: t}, nil
}

// Fit is a trained CVLearner: one private fit per fold, in fold order.
type Fit struct {
	name  string
	id    string
	fits  []learner.Fit
	folds folds.FoldSet
	task  *task.Task
}

// Name returns the wrapper's identifier.
func (f *Fit) Name() string { return f.name }

// IsTrained reports true.
func (f *Fit) IsTrained() bool { return true }

// ID returns the fit's unique identifier.
func (f *Fit) ID() string { return f.id }

// TrainingTask returns the fold-carrying task the wrapper was trained on.
func (f *Fit) TrainingTask() *task.Task { return f.task }

// FoldFits returns the per-fold fits in fold order.
func (f *Fit) FoldFits() []learner.Fit {
	out := make([]learner.Fit, len(f.fits))
	copy(out, f.fits)

	return out
}

// Train refits the wrapper on t; the per-fold fits of this Fit keep their
// original specification, so the first of them serves as the base.
func (f *Fit) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	c, err := New(f.name, f.fits[0])
	if err != nil {
		return nil, err
	}

	return c.Train(ctx, t)
}

// Predict returns the out-of-fold predictions: fold k's private fit
// evaluated on fold k's validation view, row-concatenated in ascending
// fold order. The output has exactly one row per validation observation
// across all folds; rows never used as validation are absent. Per-fold
// predictions are computed concurrently and merged deterministically.
//
// A non-nil t substitutes its data under the training FoldSet; its row
// window must cover every fold's validation range.
func (f *Fit) Predict(ctx context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}

	preds := make([]learner.Prediction, len(f.fits))
	g, gctx := errgroup.WithContext(ctx)
	for k, fold := range f.folds {
		k, fold := k, fold
		g.Go(func() error {
			view, verr := src.View(fold.Val)
			if verr != nil {
				return fmt.Errorf("cv %q: fold %d: %w", f.name, fold.ID, verr)
			}
			p, perr := f.fits[k].Predict(gctx, view)
			if perr != nil {
				return fmt.Errorf("cv %q: fold %d: %w", f.name, fold.ID, perr)
			}
			preds[k] = p

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return learner.Prediction{}, err
	}

	return learner.AppendRows(preds...)
}

// Chain derives the meta-learning task: covariates are the out-of-fold
// prediction columns, while outcome columns, weights, and outcome type are
// taken from the corresponding validation rows of the original task. The
// derived task carries no FoldSet — its rows are a reindexed subset of the
// original, so the original fold windows do not apply.
func (f *Fit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return nil, err
	}

	oof, err := f.Predict(ctx, src)
	if err != nil {
		return nil, err
	}

	outcomes := src.Outcomes()
	names := oof.Names()
	cols := make(map[string][]float64, len(names)+len(outcomes))
	order := make([]string, 0, len(names)+len(outcomes))
	for j, name := range names {
		cols[name] = oof.ColumnAt(j)
		order = append(order, name)
	}

	var weights []float64
	for _, name := range outcomes {
		cols[name] = nil
		order = append(order, name)
	}
	for _, fold := range f.folds {
		view, verr := src.View(fold.Val)
		if verr != nil {
			return nil, fmt.Errorf("cv %q: fold %d: %w", f.name, fold.ID, verr)
		}
		for _, name := range outcomes {
			values, cerr := view.Column(name)
			if cerr != nil {
				return nil, cerr
			}
			cols[name] = append(cols[name], values...)
		}
		weights = append(weights, view.Weights()...)
	}

	tbl, err := task.NewTable(order, cols)
	if err != nil {
		return nil, err
	}

	return task.New(tbl, names, outcomes, src.OutcomeType(), task.WithWeights(weights))
}

// Risk computes the weighted mean of loss over all out-of-fold rows, one
// value per prediction column — per wrapped-stack member when the base is
// a stack, a single entry otherwise. Risk is computed from validation-set
// predictions only, never training-set ones.
func (f *Fit) Risk(ctx context.Context, loss learner.Loss) (map[string]float64, error) {
	oof, err := f.Predict(ctx, nil)
	if err != nil {
		return nil, err
	}

	// Gather the true outcome and weights over the validation rows, in the
	// same fold order the predictions were merged in.
	var observed, weights []float64
	for _, fold := range f.folds {
		view, verr := f.task.View(fold.Val)
		if verr != nil {
			return nil, fmt.Errorf("cv %q: fold %d: %w", f.name, fold.ID, verr)
		}
		observed = append(observed, view.OutcomeVector()...)
		weights = append(weights, view.Weights()...)
	}

	risks := make(map[string]float64, oof.Cols())
	for j, name := range oof.Names() {
		r, rerr := learner.MeanRisk(oof.ColumnAt(j), observed, weights, loss)
		if rerr != nil {
			return nil, fmt.Errorf("cv %q: member %q: %w", f.name, name, rerr)
		}
		risks[name] = r
	}

	return risks, nil
}
