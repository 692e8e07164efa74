// Package folds generates ordered train/validation index partitions for
// temporally dependent observations.
//
// 🚀 What is folds?
//
//	Classic k-fold cross-validation shuffles rows and leaks future
//	information into the past. For time series the split must respect
//	chronology: every validation index lies strictly after every training
//	index of its fold (plus an optional forecasting gap). This package
//	produces such splits under two strategies:
//	  • Rolling origin — expanding training window, advancing origin
//	  • Rolling window — fixed-size training window sliding forward
//
// ✨ Key guarantees:
//   - Determinism: identical inputs always yield an identical FoldSet.
//   - No leakage: validation starts exactly Gap indices after training ends.
//   - Disjointness: training and validation never overlap within a fold.
//   - Incomplete final folds are dropped, never truncated.
//
// ⚙️ Usage:
//
//	import "github.com/tlverse/sl3-lecture/folds"
//
//	opts := folds.DefaultOptions()
//	opts.FirstWindow = 10
//	opts.ValidationSize = 10
//
//	fs, err := folds.Make(100, folds.RollingOrigin, opts)
//	if err != nil {
//	  // handle ErrInvalidFoldConfig
//	}
//
// Complexity: O(k) time and memory for k generated folds.
//
// See examples in example_test.go.
package folds
