// Package sl3 is an ensemble-learning core for dependent data — build
// tasks, compose learners, and super-learn over time-respecting folds.
//
// 🚀 What is sl3-lecture?
//
//	A small, deterministic library that brings together:
//		• Fold generation: rolling-origin & rolling-window schemes with gaps
//		• Tasks: immutable column tables with covariate/outcome roles & weights
//		• Learners: a uniform train/predict/chain contract, spec/fit duality
//		• Pipelines: sequential composition, each stage feeding the next
//		• Stacks: parallel composition, one prediction column per member
//		• Cross-validation: out-of-fold predictions & honest risk estimates
//		• Super learner: stacked generalization with a trained meta-learner
//
// ✨ Why choose sl3-lecture?
//
//   - Honest by construction – validation always follows training in time
//   - Rock-solid guarantees – immutable tasks, all-or-nothing composites
//   - Deterministic – concurrent fan-out, fold-ordered merge, no hidden RNG
//   - Extensible – implement Learner once, nest it in any composition
//
// Under the hood, everything is organized under seven subpackages:
//
//	folds/        — rolling-origin & rolling-window fold generation
//	task/         — immutable data tables with roles, weights & fold views
//	learner/      — the Learner/Fit contract, predictions & loss functions
//	baseline/     — reference learners: weighted mean, least squares
//	pipeline/     — sequential composition via chaining
//	stack/        — parallel composition via column concatenation
//	cv/           — temporal cross-validation & risk reporting
//	superlearner/ — the full stacked-generalization procedure
//
// Quick sketch of a super learner:
//
//	folds ──► task ──► cv(stack) ──► out-of-fold task ──► meta fit
//	                      │                                   │
//	                      └────── stack refit ──► pipeline ◄──┘
//
// Dive into the package docs and examples for fold arithmetic, the
// learner contract, and the full ensemble workflow.
//
//	go get github.com/tlverse/sl3-lecture
package sl3
