// Package superlearner implements stacked generalization: an ensemble whose
// combination weights are themselves learned from cross-validated
// predictions.
//
// ✨ How a super learner trains
//
//  1. Stack the candidate learners and cross-validate the stack over the
//     task's folds, producing out-of-fold predictions for every candidate.
//  2. Train the meta-learner on those predictions — it learns how to
//     combine the candidates without ever seeing a prediction from a model
//     that was trained on the row being predicted.
//  3. Refit the full stack on the complete task.
//  4. Compose the refit stack with the trained meta-learner into a
//     two-stage pipeline: new data flows through every candidate, and the
//     meta-learner blends their outputs into the final prediction.
//
// The result keeps the cross-validation fit around, so the per-candidate
// risk estimates used to judge the ensemble remain available after
// training. With time-ordered folds from package folds, the procedure is
// valid for dependent observations, where classic i.i.d. cross-validation
// would leak future information into the past.
package superlearner
