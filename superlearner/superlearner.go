package superlearner

import (
	"context"
	"fmt"

	"github.com/tlverse/sl3-lecture/cv"
	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/pipeline"
	"github.com/tlverse/sl3-lecture/stack"
	"github.com/tlverse/sl3-lecture/task"
)

// SuperLearner is the untrained ensemble specification: candidate members
// plus the meta-learner that will combine them.
type SuperLearner struct {
	learner.Spec
	name    string
	meta    learner.Learner
	members []learner.Learner
}

// New builds a SuperLearner from a meta-learner and candidate members.
// Member names must be unique; they become the meta-learner's covariates
// and the risk-report keys.
//
// Errors:
//   - learner.ErrEmptyComposition — nil meta or no members.
//   - stack.ErrDuplicateMember — two members share one name.
func New(name string, meta learner.Learner, members ...learner.Learner) (*SuperLearner, error) {
	if meta == nil {
		return nil, fmt.Errorf("superlearner %q: nil meta-learner: %w", name, learner.ErrEmptyComposition)
	}
	// Validate the member list eagerly; Train builds the same stack again.
	if _, err := stack.New(name, members...); err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", name, err)
	}
	own := make([]learner.Learner, len(members))
	copy(own, members)

	return &SuperLearner{name: name, meta: meta, members: own}, nil
}

// Name returns the ensemble's identifier.
func (s *SuperLearner) Name() string { return s.name }

// Train runs the full super-learner procedure on t, which must carry a
// fold assignment:
//
//  1. cross-validate the member stack over t's folds,
//  2. train the meta-learner on the out-of-fold prediction task,
//  3. refit the member stack on the complete t,
//  4. compose refit stack and meta fit into the prediction pipeline.
//
// Errors:
//   - learner.ErrNilTask — t is nil.
//   - cv.ErrMissingFolds — t carries no FoldSet.
//   - any member or meta failure propagates unchanged.
func (s *SuperLearner) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	if t == nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, learner.ErrNilTask)
	}

	members, err := stack.New(s.name, s.members...)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}
	wrapper, err := cv.New(s.name, members)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}
	cvFit, err := wrapper.Train(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}

	oofTask, err := cvFit.Chain(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}
	metaFit, err := s.meta.Train(ctx, oofTask)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: meta %q: %w", s.name, s.meta.Name(), err)
	}

	stackFit, err := members.Train(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}

	pipe, err := pipeline.New(s.name, stackFit, metaFit)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}
	pipeFit, err := pipe.Train(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("superlearner %q: %w", s.name, err)
	}

	return &Fit{
		name:    s.name,
		id:      learner.NewFitID(),
		meta:    s.meta,
		members: s.members,
		pipe:    pipeFit,
		cvFit:   cvFit.(*cv.Fit),
		task:    t,
	}, nil
}

// Fit is a trained super learner: the refit-stack→meta pipeline for
// prediction, plus the cross-validation fit for risk reporting.
type Fit struct {
	name    string
	id      string
	meta    learner.Learner
	members []learner.Learner
	pipe    learner.Fit
	cvFit   *cv.Fit
	task    *task.Task
}

// Name returns the ensemble's identifier.
func (f *Fit) Name() string { return f.name }

// IsTrained reports true.
func (f *Fit) IsTrained() bool { return true }

// ID returns the fit's unique identifier.
func (f *Fit) ID() string { return f.id }

// TrainingTask returns the fold-carrying task the ensemble was trained on.
func (f *Fit) TrainingTask() *task.Task { return f.task }

// Train reruns the full super-learner procedure on t.
func (f *Fit) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	s, err := New(f.name, f.meta, f.members...)
	if err != nil {
		return nil, err
	}

	return s.Train(ctx, t)
}

// Predict runs t through the refit member stack and blends the member
// predictions with the trained meta-learner.
func (f *Fit) Predict(ctx context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}

	return f.pipe.Predict(ctx, src)
}

// Chain derives the task whose covariate is the ensemble prediction.
func (f *Fit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	return learner.ChainTask(ctx, f, t)
}

// Risk reports the cross-validated risk of every candidate member under
// loss, keyed by member name. These are the honest out-of-fold estimates
// the meta-learner was trained against, not training-set errors.
func (f *Fit) Risk(ctx context.Context, loss learner.Loss) (map[string]float64, error) {
	return f.cvFit.Risk(ctx, loss)
}

// StackFit returns the member stack refit on the complete training task.
func (f *Fit) StackFit() learner.Fit {
	pf := f.pipe.(*pipeline.Fit)

	return pf.Stages()[0]
}

// MetaFit returns the trained meta-learner.
func (f *Fit) MetaFit() learner.Fit {
	pf := f.pipe.(*pipeline.Fit)

	return pf.Stages()[1]
}

// CVFit returns the cross-validation fit the risk estimates come from.
func (f *Fit) CVFit() *cv.Fit { return f.cvFit }
