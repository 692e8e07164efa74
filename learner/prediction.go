package learner

import "fmt"

// Prediction is a column-major table of predictions: one row per observation
// of the predicted task, one named column per underlying learner. A single
// learner produces one column; a stack produces one per member.
type Prediction struct {
	names []string
	cols  [][]float64
}

// NewPrediction builds a Prediction from named columns of equal length.
//
// Errors:
//   - ErrShapeMismatch — names/cols length disagreement or ragged columns.
//   - ErrDuplicateColumn — a repeated column name.
func NewPrediction(names []string, cols [][]float64) (Prediction, error) {
	if len(names) != len(cols) {
		return Prediction{}, fmt.Errorf("%d names for %d columns: %w", len(names), len(cols), ErrShapeMismatch)
	}
	seen := make(map[string]struct{}, len(names))
	rows := -1
	for j, name := range names {
		if _, dup := seen[name]; dup {
			return Prediction{}, fmt.Errorf("column %q: %w", name, ErrDuplicateColumn)
		}
		seen[name] = struct{}{}
		if rows == -1 {
			rows = len(cols[j])
		} else if len(cols[j]) != rows {
			return Prediction{}, fmt.Errorf("column %q has %d rows, want %d: %w", name, len(cols[j]), rows, ErrShapeMismatch)
		}
	}

	stored := make([][]float64, len(cols))
	for j := range cols {
		own := make([]float64, len(cols[j]))
		copy(own, cols[j])
		stored[j] = own
	}
	stNames := make([]string, len(names))
	copy(stNames, names)

	return Prediction{names: stNames, cols: stored}, nil
}

// SingleColumn builds a one-column Prediction, the shape produced by every
// non-composite learner.
func SingleColumn(name string, values []float64) Prediction {
	own := make([]float64, len(values))
	copy(own, values)

	return Prediction{names: []string{name}, cols: [][]float64{own}}
}

// Rows returns the number of prediction rows.
func (p Prediction) Rows() int {
	if len(p.cols) == 0 {
		return 0
	}

	return len(p.cols[0])
}

// Cols returns the number of prediction columns.
func (p Prediction) Cols() int { return len(p.cols) }

// Names returns the column names in order.
func (p Prediction) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// Column returns a copy of the named column.
//
// Errors:
//   - ErrUnknownColumn — no column has that name.
func (p Prediction) Column(name string) ([]float64, error) {
	for j, n := range p.names {
		if n == name {
			return p.ColumnAt(j), nil
		}
	}

	return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
}

// ColumnAt returns a copy of column j. Panics on an out-of-range index, as
// slice indexing would.
func (p Prediction) ColumnAt(j int) []float64 {
	out := make([]float64, len(p.cols[j]))
	copy(out, p.cols[j])

	return out
}

// ConcatColumns joins predictions column-wise, preserving argument order.
// All inputs must share one row count and have globally unique column names.
//
// Errors:
//   - ErrShapeMismatch — differing row counts.
//   - ErrDuplicateColumn — a column name repeats across inputs.
func ConcatColumns(ps ...Prediction) (Prediction, error) {
	names := make([]string, 0)
	cols := make([][]float64, 0)
	rows := -1
	for _, p := range ps {
		if rows == -1 {
			rows = p.Rows()
		} else if p.Rows() != rows {
			return Prediction{}, fmt.Errorf("concat: %d rows vs %d: %w", p.Rows(), rows, ErrShapeMismatch)
		}
		for j, name := range p.names {
			names = append(names, name)
			cols = append(cols, p.cols[j])
		}
	}

	return NewPrediction(names, cols)
}

// AppendRows joins predictions row-wise, preserving argument order. All
// inputs must share an identical column schema (same names, same order).
//
// Errors:
//   - ErrShapeMismatch — schema disagreement.
func AppendRows(ps ...Prediction) (Prediction, error) {
	if len(ps) == 0 {
		return Prediction{}, fmt.Errorf("append: no predictions: %w", ErrShapeMismatch)
	}

	names := ps[0].Names()
	cols := make([][]float64, len(names))
	for _, p := range ps {
		if len(p.names) != len(names) {
			return Prediction{}, fmt.Errorf("append: %d columns vs %d: %w", len(p.names), len(names), ErrShapeMismatch)
		}
		for j, name := range p.names {
			if name != names[j] {
				return Prediction{}, fmt.Errorf("append: column %q vs %q at position %d: %w", name, names[j], j, ErrShapeMismatch)
			}
			cols[j] = append(cols[j], p.cols[j]...)
		}
	}

	return NewPrediction(names, cols)
}
