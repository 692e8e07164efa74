// Package pipeline composes learners sequentially: each stage's chained
// output becomes the next stage's task.
//
// Training walks the stages in order — train stage k, chain its fit into a
// derived task, hand that task to stage k+1. Stages are inherently
// sequential and are never parallelized: stage k+1 cannot exist before
// stage k's fit and chained task do.
//
// Special case: when every supplied stage is already a trained fit, Train is
// a no-op that wraps the given fits directly. This is how a deployable
// predictor is assembled from independently-fit stages without retraining —
// the super learner relies on it to splice a full-data stack fit in front
// of a meta-learner fit.
package pipeline
