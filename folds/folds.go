package folds

import "fmt"

// Make produces a FoldSet for a series of length n under the given strategy.
//
// Algorithm outline (both strategies):
//  1. Validate parameters: training size ≥1, ValidationSize ≥1, Batch ≥1,
//     Gap ≥0, and training+gap+validation must fit inside n.
//  2. For k = 0, 1, 2, …: place fold k's training and validation windows,
//     stopping as soon as the validation window would pass index n-1.
//     An incomplete final fold is dropped, never truncated.
//
// RollingOrigin fold k:
//
//	train [0, FirstWindow + k·Batch)
//	val   [FirstWindow + k·Batch + Gap, … + ValidationSize)
//
// RollingWindow fold k:
//
//	train [k·Batch, k·Batch + WindowSize)
//	val   [k·Batch + WindowSize + Gap, … + ValidationSize)
//
// Determinism: identical inputs always produce an identical, chronologically
// ordered FoldSet. Folds are numbered 0..len-1 in order of increasing origin.
//
// Errors:
//   - ErrInvalidFoldConfig — no fold can be produced, or a parameter is
//     non-positive where positivity is required.
//   - ErrUnknownStrategy — strategy is not RollingOrigin or RollingWindow.
//
// Complexity: O(k) for k generated folds.
func Make(n int, strategy Strategy, opts Options) (FoldSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("folds: series length must be ≥ 1, got %d: %w", n, ErrInvalidFoldConfig)
	}

	switch strategy {
	case RollingOrigin:
		return rollingOrigin(n, opts)
	case RollingWindow:
		return rollingWindow(n, opts)
	default:
		return nil, fmt.Errorf("folds: strategy %d: %w", int(strategy), ErrUnknownStrategy)
	}
}

// MakeSeries is a convenience wrapper over Make for callers holding the
// series itself rather than its length.
func MakeSeries(series []float64, strategy Strategy, opts Options) (FoldSet, error) {
	return Make(len(series), strategy, opts)
}

// validateCommon checks the parameters shared by both strategies.
// trainName names the strategy-specific training-size field for error context.
func validateCommon(train int, trainName string, opts Options) error {
	if train < 1 {
		return fmt.Errorf("folds: %s must be ≥ 1, got %d: %w", trainName, train, ErrInvalidFoldConfig)
	}
	if opts.ValidationSize < 1 {
		return fmt.Errorf("folds: ValidationSize must be ≥ 1, got %d: %w", opts.ValidationSize, ErrInvalidFoldConfig)
	}
	if opts.Gap < 0 {
		return fmt.Errorf("folds: Gap must be ≥ 0, got %d: %w", opts.Gap, ErrInvalidFoldConfig)
	}
	if opts.Batch < 1 {
		return fmt.Errorf("folds: Batch must be ≥ 1, got %d: %w", opts.Batch, ErrInvalidFoldConfig)
	}

	return nil
}

// rollingOrigin generates expanding-window folds.
func rollingOrigin(n int, opts Options) (FoldSet, error) {
	if err := validateCommon(opts.FirstWindow, "FirstWindow", opts); err != nil {
		return nil, err
	}
	if opts.FirstWindow+opts.Gap+opts.ValidationSize > n {
		return nil, fmt.Errorf("folds: FirstWindow+Gap+ValidationSize = %d exceeds series length %d: %w",
			opts.FirstWindow+opts.Gap+opts.ValidationSize, n, ErrInvalidFoldConfig)
	}

	var fs FoldSet
	for k := 0; ; k++ {
		trainEnd := opts.FirstWindow + k*opts.Batch
		valStart := trainEnd + opts.Gap
		valEnd := valStart + opts.ValidationSize
		if valEnd > n {
			break // incomplete final fold is dropped
		}
		fs = append(fs, Fold{
			ID:    k,
			Train: Range{Start: 0, End: trainEnd},
			Val:   Range{Start: valStart, End: valEnd},
		})
	}

	return fs, nil
}

// rollingWindow generates fixed-size sliding-window folds.
func rollingWindow(n int, opts Options) (FoldSet, error) {
	if err := validateCommon(opts.WindowSize, "WindowSize", opts); err != nil {
		return nil, err
	}
	if opts.WindowSize+opts.Gap+opts.ValidationSize > n {
		return nil, fmt.Errorf("folds: WindowSize+Gap+ValidationSize = %d exceeds series length %d: %w",
			opts.WindowSize+opts.Gap+opts.ValidationSize, n, ErrInvalidFoldConfig)
	}

	var fs FoldSet
	for k := 0; ; k++ {
		trainStart := k * opts.Batch
		trainEnd := trainStart + opts.WindowSize
		valStart := trainEnd + opts.Gap
		valEnd := valStart + opts.ValidationSize
		if valEnd > n {
			break // incomplete final fold is dropped
		}
		fs = append(fs, Fold{
			ID:    k,
			Train: Range{Start: trainStart, End: trainEnd},
			Val:   Range{Start: valStart, End: valEnd},
		})
	}

	return fs, nil
}
