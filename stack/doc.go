// Package stack composes learners in parallel: every member trains on the
// identical task, and predictions concatenate column-wise, one column per
// member in construction order.
//
// Member training is embarrassingly parallel — members share the immutable
// task by reference and each writes only its own fit — so Train fans out
// one goroutine per member via errgroup. A stack fit is all-or-nothing: the
// first member failure cancels the remaining trainings, the error
// propagates unchanged, and the partial fits are discarded. No degraded
// stacks exist.
package stack
