package task

import (
	"fmt"
	"math"

	"github.com/tlverse/sl3-lecture/folds"
)

// OutcomeType declares the value domain of a task's outcome columns.
type OutcomeType int

const (
	// Continuous is a single real-valued outcome.
	Continuous OutcomeType = iota
	// Binary is a single 0/1 outcome.
	Binary
	// Categorical is a single outcome of non-negative integer class codes.
	Categorical
	// Multivariate is two or more real-valued outcome columns.
	Multivariate
)

// String returns the canonical outcome-type name.
func (ot OutcomeType) String() string {
	switch ot {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	case Categorical:
		return "categorical"
	case Multivariate:
		return "multivariate"
	default:
		return "unknown"
	}
}

// Task is an immutable binding of a Table to a prediction problem: covariate
// and outcome roles, an outcome type, per-observation weights, and an
// optional fold assignment. Views produced by View/TrainView/ValView are
// Tasks themselves, sharing the parent's storage through a row window.
type Task struct {
	tbl         *Table
	covariates  []string
	outcomes    []string
	outcomeType OutcomeType
	weights     []float64 // full-table weights; unit weights when unset
	fs          folds.FoldSet
	rows        []int // nil ⇒ all table rows; otherwise parent-resolved indices
}

// Option configures optional Task attributes at construction.
type Option func(*taskConfig)

type taskConfig struct {
	weightColumn string
	weights      []float64
	fs           folds.FoldSet
}

// WithWeightColumn designates a table column as the per-observation weight
// vector. Weights must be finite and non-negative.
func WithWeightColumn(name string) Option {
	return func(c *taskConfig) { c.weightColumn = name }
}

// WithWeights supplies an explicit weight vector, one entry per table row.
// Used by components deriving tasks whose weights are not table columns.
func WithWeights(w []float64) Option {
	return func(c *taskConfig) { c.weights = w }
}

// WithFolds attaches a FoldSet produced by folds.Make. The fold windows must
// lie inside the table; the set is never mutated after attachment.
func WithFolds(fs folds.FoldSet) Option {
	return func(c *taskConfig) { c.fs = fs }
}

// New constructs a Task over tbl with the given covariate and outcome
// columns and outcome type.
//
// Validation:
//   - covariate and outcome sets are non-empty and subsets of tbl's columns
//   - outcome type matches the outcome columns' declared value domain
//     (Binary ⇒ one column of 0/1; Categorical ⇒ one column of non-negative
//     integer codes; Continuous ⇒ one column; Multivariate ⇒ two or more)
//   - weights, when given, are finite, non-negative, one per row
//   - fold windows, when given, lie inside [0, tbl.Len())
//
// Errors: all violations wrap ErrInvalidTaskSpec.
func New(tbl *Table, covariates, outcomes []string, ot OutcomeType, opts ...Option) (*Task, error) {
	if tbl == nil {
		return nil, fmt.Errorf("nil table: %w", ErrInvalidTaskSpec)
	}
	if len(covariates) == 0 {
		return nil, fmt.Errorf("empty covariate set: %w", ErrInvalidTaskSpec)
	}
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("empty outcome set: %w", ErrInvalidTaskSpec)
	}
	for _, name := range covariates {
		if !tbl.Has(name) {
			return nil, fmt.Errorf("covariate %q not in table: %w", name, ErrInvalidTaskSpec)
		}
	}
	for _, name := range outcomes {
		if !tbl.Has(name) {
			return nil, fmt.Errorf("outcome %q not in table: %w", name, ErrInvalidTaskSpec)
		}
	}
	if err := validateOutcomeType(tbl, outcomes, ot); err != nil {
		return nil, err
	}

	var cfg taskConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	weights, err := resolveWeights(tbl, cfg)
	if err != nil {
		return nil, err
	}
	if err = validateFolds(tbl, cfg.fs); err != nil {
		return nil, err
	}

	t := &Task{
		tbl:         tbl,
		covariates:  copyStrings(covariates),
		outcomes:    copyStrings(outcomes),
		outcomeType: ot,
		weights:     weights,
		fs:          cfg.fs,
	}

	return t, nil
}

// validateOutcomeType checks outcome-column arity and value domains.
func validateOutcomeType(tbl *Table, outcomes []string, ot OutcomeType) error {
	switch ot {
	case Continuous, Binary, Categorical:
		if len(outcomes) != 1 {
			return fmt.Errorf("%s outcome requires exactly 1 column, got %d: %w", ot, len(outcomes), ErrInvalidTaskSpec)
		}
	case Multivariate:
		if len(outcomes) < 2 {
			return fmt.Errorf("multivariate outcome requires ≥ 2 columns, got %d: %w", len(outcomes), ErrInvalidTaskSpec)
		}

		return nil
	default:
		return fmt.Errorf("outcome type %d: %w", int(ot), ErrInvalidTaskSpec)
	}

	values := tbl.cols[outcomes[0]]
	switch ot {
	case Binary:
		for i, v := range values {
			if v != 0 && v != 1 {
				return fmt.Errorf("binary outcome %q has non-0/1 value %v at row %d: %w", outcomes[0], v, i, ErrInvalidTaskSpec)
			}
		}
	case Categorical:
		for i, v := range values {
			if v < 0 || v != math.Trunc(v) {
				return fmt.Errorf("categorical outcome %q has non-class value %v at row %d: %w", outcomes[0], v, i, ErrInvalidTaskSpec)
			}
		}
	}

	return nil
}

// resolveWeights materializes the task weight vector from the chosen source.
func resolveWeights(tbl *Table, cfg taskConfig) ([]float64, error) {
	var w []float64
	switch {
	case cfg.weightColumn != "" && cfg.weights != nil:
		return nil, fmt.Errorf("both weight column and weight vector given: %w", ErrInvalidTaskSpec)
	case cfg.weightColumn != "":
		values, err := tbl.Column(cfg.weightColumn)
		if err != nil {
			return nil, fmt.Errorf("weight column %q not in table: %w", cfg.weightColumn, ErrInvalidTaskSpec)
		}
		w = values
	case cfg.weights != nil:
		if len(cfg.weights) != tbl.Len() {
			return nil, fmt.Errorf("weight vector has %d entries, want %d: %w", len(cfg.weights), tbl.Len(), ErrInvalidTaskSpec)
		}
		w = make([]float64, len(cfg.weights))
		copy(w, cfg.weights)
	default:
		return nil, nil // unit weights, materialized lazily by Weights()
	}

	for i, v := range w {
		if !isFinite(v) || v < 0 {
			return nil, fmt.Errorf("weight %v at row %d must be finite and ≥ 0: %w", v, i, ErrInvalidTaskSpec)
		}
	}

	return w, nil
}

// validateFolds checks every fold window lies inside the table.
func validateFolds(tbl *Table, fs folds.FoldSet) error {
	for _, f := range fs {
		for _, r := range []folds.Range{f.Train, f.Val} {
			if r.Start < 0 || r.End > tbl.Len() || r.Start > r.End {
				return fmt.Errorf("fold %d window [%d,%d) outside table of %d rows: %w",
					f.ID, r.Start, r.End, tbl.Len(), ErrInvalidTaskSpec)
			}
		}
	}

	return nil
}

// Len returns the number of observations in this task's row window.
func (t *Task) Len() int {
	if t.rows != nil {
		return len(t.rows)
	}

	return t.tbl.Len()
}

// Covariates returns the covariate column names in declared order.
func (t *Task) Covariates() []string { return copyStrings(t.covariates) }

// Outcomes returns the outcome column names in declared order.
func (t *Task) Outcomes() []string { return copyStrings(t.outcomes) }

// OutcomeType returns the declared outcome type.
func (t *Task) OutcomeType() OutcomeType { return t.outcomeType }

// Folds returns the attached FoldSet, or nil when none was attached.
// Views never carry folds: fold indices address the parent's row space.
func (t *Task) Folds() folds.FoldSet { return t.fs }

// Weights returns the per-observation weights for this task's row window.
// Unit weights are returned when none were configured.
func (t *Task) Weights() []float64 {
	n := t.Len()
	out := make([]float64, n)
	if t.weights == nil {
		for i := range out {
			out[i] = 1
		}

		return out
	}
	for i := 0; i < n; i++ {
		out[i] = t.weights[t.rowIndex(i)]
	}

	return out
}

// Column returns a copy of the named column restricted to this task's rows.
//
// Errors:
//   - ErrUnknownColumn — the name is absent from the underlying table.
func (t *Task) Column(name string) ([]float64, error) {
	if !t.tbl.Has(name) {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = t.tbl.at(t.rowIndex(i), name)
	}

	return out, nil
}

// Has reports whether the underlying table contains the named column.
func (t *Task) Has(name string) bool { return t.tbl.Has(name) }

// CovariateMatrix returns the covariates as a row-major matrix of
// Len()×len(Covariates()), column order as declared.
func (t *Task) CovariateMatrix() [][]float64 {
	n := t.Len()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(t.covariates))
		src := t.rowIndex(i)
		for j, name := range t.covariates {
			row[j] = t.tbl.at(src, name)
		}
		out[i] = row
	}

	return out
}

// OutcomeVector returns a copy of the first outcome column restricted to
// this task's rows. Multivariate tasks expose further outcomes via Column.
func (t *Task) OutcomeVector() []float64 {
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = t.tbl.at(t.rowIndex(i), t.outcomes[0])
	}

	return out
}

// View returns a read-only windowed Task over rows [r.Start, r.End) of this
// task, sharing the parent's storage. The view keeps roles, outcome type,
// and weights; it carries no fold assignment.
//
// Errors:
//   - ErrBadView — the range lies outside this task's row window.
func (t *Task) View(r folds.Range) (*Task, error) {
	if r.Start < 0 || r.End > t.Len() || r.Start > r.End {
		return nil, fmt.Errorf("range [%d,%d) on task of %d rows: %w", r.Start, r.End, t.Len(), ErrBadView)
	}

	rows := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		rows = append(rows, t.rowIndex(i))
	}

	return &Task{
		tbl:         t.tbl,
		covariates:  t.covariates,
		outcomes:    t.outcomes,
		outcomeType: t.outcomeType,
		weights:     t.weights,
		rows:        rows,
	}, nil
}

// TrainView returns the training-only view of the given fold.
func (t *Task) TrainView(f folds.Fold) (*Task, error) { return t.View(f.Train) }

// ValView returns the validation-only view of the given fold.
func (t *Task) ValView(f folds.Fold) (*Task, error) { return t.View(f.Val) }

// rowIndex resolves view position i to the underlying table row.
func (t *Task) rowIndex(i int) int {
	if t.rows != nil {
		return t.rows[i]
	}

	return i
}

// copyStrings returns a copy of a string slice.
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}
