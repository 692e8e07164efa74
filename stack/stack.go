package stack

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tlverse/sl3-lecture/learner"
	"github.com/tlverse/sl3-lecture/task"
)

// ErrDuplicateMember indicates two members share one name. Member names
// become prediction columns and risk keys, so they must be unique.
var ErrDuplicateMember = errors.New("stack: duplicate member name")

// Stack is a parallel composition of one or more learners. It satisfies the
// learner contract itself, so stacks nest inside pipelines and
// cross-validation wrappers.
type Stack struct {
	learner.Spec
	name    string
	members []learner.Learner
}

// New builds a Stack from members in column order.
//
// Errors:
//   - learner.ErrEmptyComposition — no members, or a nil member.
//   - ErrDuplicateMember — two members share one name.
func New(name string, members ...learner.Learner) (*Stack, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("stack %q: %w", name, learner.ErrEmptyComposition)
	}
	seen := make(map[string]struct{}, len(members))
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("stack %q: nil member %d: %w", name, i, learner.ErrEmptyComposition)
		}
		if _, dup := seen[m.Name()]; dup {
			return nil, fmt.Errorf("stack %q: member %q: %w", name, m.Name(), ErrDuplicateMember)
		}
		seen[m.Name()] = struct{}{}
	}
	own := make([]learner.Learner, len(members))
	copy(own, members)

	return &Stack{name: name, members: own}, nil
}

// Name returns the stack's identifier.
func (s *Stack) Name() string { return s.name }

// MemberNames returns the member names in construction (column) order.
func (s *Stack) MemberNames() []string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		out[i] = m.Name()
	}

	return out
}

// Train fits every member on t concurrently. Members receive the same
// read-only task; each goroutine writes only its own slot of the fit slice,
// so no locks are needed.
//
// Errors: the first member failure cancels the rest and propagates
// unchanged (typically wrapping learner.ErrTrainingFailure); no partial
// stack fit is returned.
func (s *Stack) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	if t == nil {
		return nil, fmt.Errorf("stack %q: %w", s.name, learner.ErrNilTask)
	}

	fits := make([]learner.Fit, len(s.members))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range s.members {
		i, m := i, m
		g.Go(func() error {
			fit, err := m.Train(gctx, t)
			if err != nil {
				return fmt.Errorf("stack %q: member %q: %w", s.name, m.Name(), err)
			}
			fits[i] = fit

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Fit{name: s.name, id: learner.NewFitID(), fits: fits, task: t}, nil
}

// Fit is a trained stack: one member fit per column, in construction order.
type Fit struct {
	name string
	id   string
	fits []learner.Fit
	task *task.Task
}

// Name returns the stack's identifier.
func (f *Fit) Name() string { return f.name }

// IsTrained reports true.
func (f *Fit) IsTrained() bool { return true }

// ID returns the fit's unique identifier.
func (f *Fit) ID() string { return f.id }

// TrainingTask returns the task the stack was trained on.
func (f *Fit) TrainingTask() *task.Task { return f.task }

// MemberFits returns the member fits in column order.
func (f *Fit) MemberFits() []learner.Fit {
	out := make([]learner.Fit, len(f.fits))
	copy(out, f.fits)

	return out
}

// MemberNames returns the member names in column order.
func (f *Fit) MemberNames() []string {
	out := make([]string, len(f.fits))
	for i, fit := range f.fits {
		out[i] = fit.Name()
	}

	return out
}

// Train refits all members on t; see Stack.Train.
func (f *Fit) Train(ctx context.Context, t *task.Task) (learner.Fit, error) {
	members := make([]learner.Learner, len(f.fits))
	for i, fit := range f.fits {
		members[i] = fit
	}
	s, err := New(f.name, members...)
	if err != nil {
		return nil, err
	}

	return s.Train(ctx, t)
}

// Predict invokes every member concurrently and concatenates the resulting
// columns in construction order. The merge order is deterministic
// regardless of goroutine scheduling.
func (f *Fit) Predict(ctx context.Context, t *task.Task) (learner.Prediction, error) {
	src, err := learner.ResolveTask(f, t)
	if err != nil {
		return learner.Prediction{}, err
	}

	preds := make([]learner.Prediction, len(f.fits))
	g, gctx := errgroup.WithContext(ctx)
	for i, fit := range f.fits {
		i, fit := i, fit
		g.Go(func() error {
			p, perr := fit.Predict(gctx, src)
			if perr != nil {
				return fmt.Errorf("stack %q: member %q: %w", f.name, fit.Name(), perr)
			}
			preds[i] = p

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return learner.Prediction{}, err
	}

	return learner.ConcatColumns(preds...)
}

// Chain derives the task whose covariates are the member prediction
// columns — the input to a meta-learner.
func (f *Fit) Chain(ctx context.Context, t *task.Task) (*task.Task, error) {
	return learner.ChainTask(ctx, f, t)
}
