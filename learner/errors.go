package learner

import "errors"

// Sentinel errors shared by the learner contract and its composites.
// Implementations wrap them with context; callers match via errors.Is.
var (
	// ErrNotTrained indicates Predict or Chain was called on an untrained
	// learner. This is a programmer error, never retried.
	ErrNotTrained = errors.New("learner: predict or chain called before train")

	// ErrTrainingFailure indicates a learner's train contract failed because
	// the task's data violates its structural assumptions (e.g., too few
	// observations for a requested lag order). Pipelines, stacks, and
	// cross-validation wrappers propagate it unchanged.
	ErrTrainingFailure = errors.New("learner: training failure")

	// ErrNilTask indicates a nil task where one is required (Train, or
	// Predict/Chain on a fit with no training task to fall back to).
	ErrNilTask = errors.New("learner: nil task")

	// ErrShapeMismatch indicates prediction tables that cannot be combined:
	// differing row counts on column concatenation, or differing schemas on
	// row concatenation.
	ErrShapeMismatch = errors.New("learner: prediction shape mismatch")

	// ErrDuplicateColumn indicates two prediction columns share one name.
	ErrDuplicateColumn = errors.New("learner: duplicate prediction column")

	// ErrUnknownColumn indicates a requested prediction column is absent.
	ErrUnknownColumn = errors.New("learner: unknown prediction column")

	// ErrEmptyComposition indicates a composite constructed with no members.
	ErrEmptyComposition = errors.New("learner: composition requires at least one learner")
)
