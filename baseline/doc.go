// Package baseline provides minimal reference learners satisfying the
// learner contract: a weighted-mean predictor and an ordinary least squares
// regressor.
//
// These are not the statistical models the framework is meant to host —
// concrete forecasters plug in from outside. They exist as honest
// collaborators for composition: the mean predictor is the canonical
// benchmark member of a stack, and OLS is the classic meta-learner that
// combines cross-validated member predictions in a super learner.
//
// Both learners are deterministic, train on weighted data, and follow the
// spec/fit duality: Train returns a new immutable fit, never mutating the
// specification.
package baseline
