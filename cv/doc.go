// Package cv wraps any learner in temporal cross-validation, producing
// out-of-fold predictions and per-member risk estimates.
//
// 🚀 Why out-of-fold?
//
//	A meta-learner that combines base learners must never see predictions
//	generated by a model trained on the rows being predicted — that is how
//	combination weights overfit. Train therefore fits a private copy of the
//	wrapped learner per fold, on that fold's training view only; Predict
//	evaluates each private fit on its fold's validation view and
//	row-concatenates the results in ascending fold order. Every validation
//	observation appears exactly once; rows never used as validation are
//	absent. The wrapped learner itself is never marked trained.
//
// Chain turns the out-of-fold predictions into a task — covariates are the
// prediction columns, outcome and weights come from the corresponding
// validation rows — which is precisely the unbiased training data a
// meta-learner needs. Risk aggregates a caller-supplied loss over the same
// rows, one value per wrapped-stack member, enabling direct comparison.
//
// Per-fold training and prediction are independent and run concurrently;
// the fold-order merge keeps results deterministic.
package cv
