package folds

import "errors"

// Sentinel errors for fold generation.
var (
	// ErrInvalidFoldConfig indicates the fold parameters cannot produce a
	// single valid fold for the given series length, or a parameter violates
	// its positivity requirement. Callers match it via errors.Is; generators
	// wrap it with context describing the offending parameter.
	ErrInvalidFoldConfig = errors.New("folds: invalid fold configuration")

	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	ErrUnknownStrategy = errors.New("folds: unknown fold strategy")
)

// Strategy selects how the training window evolves between successive folds.
type Strategy int

const (
	// RollingOrigin grows the training window by Batch indices per fold while
	// the origin (forecast point) advances with it. Models an expanding-window
	// forecaster re-estimated as history accumulates.
	RollingOrigin Strategy = iota

	// RollingWindow keeps the training window at a fixed WindowSize and
	// slides both windows forward by Batch indices per fold.
	RollingWindow
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case RollingOrigin:
		return "rolling_origin"
	case RollingWindow:
		return "rolling_window"
	default:
		return "unknown"
	}
}

// Range is a half-open index window [Start, End) into an ordered series.
type Range struct {
	Start, End int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Indices materializes the covered indices in ascending order.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		out = append(out, i)
	}

	return out
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Fold is one disjoint training/validation partition. For temporally
// dependent folds every validation index is strictly later than every
// training index: Val.Start - Train.End equals the configured Gap.
type Fold struct {
	// ID is the chronological fold number, starting at 0.
	ID int
	// Train is the training index window.
	Train Range
	// Val is the validation index window.
	Val Range
}

// Gap returns the offset between end of training and start of validation.
func (f Fold) Gap() int { return f.Val.Start - f.Train.End }

// FoldSet is an ordered sequence of folds in natural chronological order of
// increasing origin. It is produced once by Make and never mutated after
// being attached to a task.
type FoldSet []Fold

// ValidationRows returns the total validation size across all folds.
func (fs FoldSet) ValidationRows() int {
	n := 0
	for _, f := range fs {
		n += f.Val.Len()
	}

	return n
}

// Options contains tunable parameters for fold generation.
//
// Exactly one of FirstWindow (RollingOrigin) or WindowSize (RollingWindow)
// is consulted, depending on the strategy passed to Make.
type Options struct {
	// FirstWindow is the initial training size for RollingOrigin (≥1).
	FirstWindow int
	// WindowSize is the fixed training size for RollingWindow (≥1).
	WindowSize int
	// ValidationSize is the validation window length per fold (≥1).
	ValidationSize int
	// Gap is the offset between end of training and start of validation (≥0).
	Gap int
	// Batch is the step size by which the origin advances between folds (≥1).
	Batch int
}

// DefaultOptions returns Options with ValidationSize=1, Gap=0, Batch=1.
// The training-size field for the chosen strategy must be set by the caller.
func DefaultOptions() Options {
	return Options{
		ValidationSize: 1,
		Gap:            0,
		Batch:          1,
	}
}
