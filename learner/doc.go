// Package learner defines the capability contract every predictive
// algorithm must satisfy to participate in pipelines, stacks,
// cross-validation, and super learning.
//
// 🚀 What is a Learner?
//
//	A Learner is an untrained specification: a name plus hyperparameters.
//	Training never mutates it — Train returns a new immutable Fit that owns
//	its artifacts and remembers the task it was trained on. Whether a value
//	is trained is a property of which value you hold, not a mutable flag.
//
// The contract, in full:
//   - Train(ctx, task) → Fit: deterministic given task and hyperparameters
//     (randomized learners take an explicit seed; see NewRNG).
//   - Predict(ctx, task) → Prediction: side-effect-free; a nil task means
//     "predict on the training task"; untrained values return ErrNotTrained.
//   - Chain(ctx, task) → Task: derives a new task whose covariates are the
//     fit's predictions, carrying forward outcome, weights, and fold
//     assignment so downstream cross-validation stays consistent.
//   - IsTrained() — reports which side of the spec/fit duality a value is on.
//
// The framework never depends on what Train/Predict/Chain compute
// internally, only on these contracts. Composite learners (pipeline, stack,
// cv, superlearner) implement the same interface, so composition nests
// arbitrarily.
//
// ✨ Error taxonomy:
//   - ErrNotTrained — Predict/Chain before Train (programmer error).
//   - ErrTrainingFailure — a learner's structural assumptions are violated
//     by the task's data; composites propagate it unchanged.
//
// See baseline for minimal reference implementations of the contract.
package learner
