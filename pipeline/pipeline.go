package pipeline

import (
	"context"
	"fmt"

	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// Pipeline is a sequential composition of one or more learners. It
// satisfies the learner contract itself, so pipelines nest inside stacks,
// cross-validation wrappers, and other pipelines.
type Pipeline struct {
	name   string
	stages []learner.Learner
}

// New builds a Pipeline from stages in execution order.
//
// Errors:
//   - learner.ErrEmptyComposition — no stages, or a nil stage.
func New(name string, stages ...learner.Learner) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("pipeline %q: %w", name, learner.ErrEmptyComposition)
	}
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("pipeline %q: nil stage %d: %w", name, i, learner.ErrEmptyComposition)
		}
	}
	own := make([]learner.Learner, len(stages))
	copy(own, stages)

	return &Pipeline{name: name, stages: own}, nil
}

// Name returns the pipeline's identifier.
func (p *Pipeline) Name() string { return p.name }

// IsTrained reports whether every stage is already a trained fit. A
// pipeline built purely from fits is trained without any member's Train
// ever running.
func (p *Pipeline) IsTrained() bool {
	for _, s := range p.stages {
		if !s.IsTrained() {
			return false
		}
	}

	return true
}

// Train fits the stages in order: stage 1 on t, stage 2 on stage 1's
// chained task, and so on. The returned Fit owns the ordered stage fits.
//
// When IsTrained() already holds, Train wraps the existing fits without
// retraining; t may be nil in that case and defaults to the first stage's
// training task.
//
// Errors: a failing stage aborts the whole train; its error (typically
// wrapping learner.ErrTrainingFailure) propagates unchanged and the
// partially-built pipeline is discarded.
func (p *Pipeline) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	if p.IsTrained() {
		return p.wrapTrained(t)
	}
	if t == nil {
		return nil, fmt.Errorf("pipeline %q: %w", p.name, learner.ErrNilTask)
	}

	fits := make([]learner.Fit, len(p.stages))
	cur := t
	for i, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fit, err := stage.Train(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: stage %d (%s): %w", p.name, i, stage.Name(), err)
		}
		fits[i] = fit
		if i < len(p.stages)-1 {
			cur, err = fit.Chain(ctx, cur)
			if err != nil {
				return nil, fmt.Errorf("pipeline %q: chain after stage %d (%s): %w", p.name, i, stage.Name(), err)
			}
		}
	}

	return &Fit{name: p.name, id: learner.NewFitID(), fits: fits, task: t}, nil
}

// wrapTrained implements the all-stages-already-fit shortcut.
func (p *Pipeline) wrapTrained(t *task.Task) (learner.Fit, error) {
	fits := make([]learner.Fit, len(p.stages))
	for i, s := range p.stages {
		fit, ok := s.(learner.Fit)
		if !ok {
			// IsTrained without the Fit interface breaks the contract.
			return nil, fmt.Errorf("pipeline %q: trained stage %d (%s) is not a fit: %w", p.name, i, s.Name(), learner.ErrNotTrained)
		}
		fits[i] = fit
	}
	if t == nil {
		t = fits[0].TrainingTask()
	}

	return &Fit{name: p.name, id: learner.NewFitID(), fits: fits, task: t}, nil
}

// Predict on an untrained Pipeline fails with learner.ErrNotTrained; call
// Train first (free of charge when all stages are fits).
func (p *Pipeline) Predict(context.Context, *task.Task) (learner.Prediction, error) {
	return learner.Prediction{}, fmt.Errorf("pipeline %q: %w", p.name, learner.ErrNotTrained)
}

// Chain on an untrained Pipeline fails with learner.ErrNotTrained.
func (p *Pipeline) Chain(context.Context, *task.Task) (*task.Task, error) {
	return nil, fmt.Errorf("pipeline %q: %w", p.name, learner.ErrNotTrained)
}

// Fit is a trained pipeline: the ordered sequence of stage fits.
type Fit struct {
	name string
	id   string
	fits []learner.Fit
	task *task.Task
}

// Name returns the pipeline's identifier.
func (f *Fit) Name() string { return f.name }

// IsTrained reports true.
func (f *Fit) IsTrained() bool { return true }

// ID returns the fit's unique identifier.
func (f *Fit) ID() string { return f.id }

// TrainingTask returns the task the pipeline was trained on.
func (f *Fit) TrainingTask() *task.Task { return f.task }

// Stages returns the ordered stage fits.
func (f *Fit) Stages() []learner.Fit {
	out := make([]learner.Fit, len(f.fits))
	copy(out, f.fits)

	return out
}

// Train re-wraps the already-trained stages; see Pipeline.Train.
func (f *Fit) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	stages := make([]learner.Learner, len(f.fits))
	for i, fit := range f.fits {
		stages[i] = fit
	}
	p, err := New(f.name, stages...)
	if err != nil {
		return nil, err
	}

	return p.Train(ctx, t)
}

// Predict re-derives the chained task sequence through all but the last
// stage, then predicts with the final stage.
func (f *Fit) Predict(ctx context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}

	cur := src
	for i := 0; i < len(f.fits)-1; i++ {
		cur, err = f.fits[i].Chain(ctx, cur)
		if err != nil {
			return learner.Prediction{}, fmt.Errorf("pipeline %q: chain through stage %d (%s): %w", f.name, i, f.fits[i].Name(), err)
		}
	}

	return f.fits[len(f.fits)-1].Predict(ctx, cur)
}

// Chain derives the standard prediction-as-covariate task from the
// pipeline's final output.
func (f *Fit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	return learner.ChainTask(ctx, f, t)
}
