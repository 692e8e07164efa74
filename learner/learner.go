package learner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tlverse/sl3-lecture/task"
)

// Learner is the polymorphic unit of the framework: an algorithm that can be
// trained on a task, queried for predictions, and chained into a derived
// task. Untrained specifications and trained fits both satisfy Learner;
// IsTrained tells them apart.
//
// Contract:
//   - Train is deterministic given the task and hyperparameters, returns a
//     new Fit, and never mutates the receiver. Training an already-trained
//     value produces a fresh Fit from the same hyperparameters.
//   - Predict and Chain treat a nil task as "use the training task"; on an
//     untrained value they return ErrNotTrained.
//   - All three honor context cancellation; a Fit is observable only once
//     fully constructed, so cancellation leaves no partial state.
type Learner interface {
	// Name returns the learner's stable identifier, used as its prediction
	// column name and risk key.
	Name() string

	// IsTrained reports whether this value is a trained Fit.
	IsTrained() bool

	// Train fits the learner to the task and returns the trained artifact.
	Train(ctx context.Context, t *task.Task) (Fit, error)

	// Predict returns one prediction row per observation of t (or of the
	// training task when t is nil). Side-effect-free.
	Predict(ctx context.Context, t *task.Task) (Prediction, error)

	// Chain derives a new task whose covariates are this learner's
	// predictions on t, carrying forward outcome, weights, and folds.
	Chain(ctx context.Context, t *task.Task) (*task.Task, error)
}

// Fit is a trained Learner: the specification plus opaque fit artifacts and
// a reference to the task it was trained on. A Fit exclusively owns its
// artifacts and is never mutated after construction; the training task is
// shared read-only.
type Fit interface {
	Learner

	// ID returns the fit's unique identifier, assigned at construction.
	ID() string

	// TrainingTask returns the task this fit was trained on.
	TrainingTask() *task.Task
}

// NewFitID returns a fresh unique fit identifier.
func NewFitID() string { return uuid.NewString() }

// Spec is an embeddable helper for untrained learner specifications. It
// supplies the untrained half of the spec/fit duality: IsTrained is false
// and Predict/Chain fail with ErrNotTrained. Embedding types implement Name
// and Train.
type Spec struct{}

// IsTrained reports false: a specification is never trained.
func (Spec) IsTrained() bool { return false }

// Predict fails with ErrNotTrained.
func (Spec) Predict(context.Context, *task.Task) (Prediction, error) {
	return Prediction{}, ErrNotTrained
}

// Chain fails with ErrNotTrained.
func (Spec) Chain(context.Context, *task.Task) (*task.Task, error) {
	return nil, ErrNotTrained
}

// ResolveTask applies the default-resolution rule shared by every Predict
// and Chain implementation: a nil task means the fit's training task.
//
// Errors:
//   - ErrNilTask — both t and the training task are nil.
func ResolveTask(f Fit, t *task.Task) (*task.Task, error) {
	if t != nil {
		return t, nil
	}
	if tt := f.TrainingTask(); tt != nil {
		return tt, nil
	}

	return nil, fmt.Errorf("no task and no training task to fall back to: %w", ErrNilTask)
}

// ChainTask is the generic chain derivation used by fits that do not need a
// custom one: the fit's predictions on t become the covariates of a new
// task, while outcome columns, weights, outcome type, and fold assignment
// are carried forward from t. The derived task addresses the same ordered
// observations, so downstream cross-validation stays consistent.
//
// Errors:
//   - ErrNotTrained — f is untrained (surfaced by f.Predict).
//   - task.ErrDuplicateColumn — a prediction column collides with an
//     outcome column name.
func ChainTask(ctx context.Context, f Fit, t *task.Task) (*task.Task, error) {
	src, err := ResolveTask(f, t)
	if err != nil {
		return nil, err
	}

	pred, err := f.Predict(ctx, src)
	if err != nil {
		return nil, err
	}
	if pred.Rows() != src.Len() {
		return nil, fmt.Errorf("chain: %d prediction rows for %d observations: %w", pred.Rows(), src.Len(), ErrShapeMismatch)
	}

	names := pred.Names()
	cols := make(map[string][]float64, len(names)+len(src.Outcomes()))
	order := make([]string, 0, len(names)+len(src.Outcomes()))
	for j, name := range names {
		cols[name] = pred.ColumnAt(j)
		order = append(order, name)
	}
	for _, name := range src.Outcomes() {
		values, cerr := src.Column(name)
		if cerr != nil {
			return nil, cerr
		}
		cols[name] = values
		order = append(order, name)
	}

	tbl, err := task.NewTable(order, cols)
	if err != nil {
		return nil, err
	}

	opts := []task.Option{task.WithWeights(src.Weights())}
	if fs := src.Folds(); fs != nil {
		opts = append(opts, task.WithFolds(fs))
	}

	return task.New(tbl, names, src.Outcomes(), src.OutcomeType(), opts...)
}
