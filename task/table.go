package task

import (
	"fmt"
	"math"
)

// Table is column-major float64 storage for an ordered sequence of
// observations. Row order is temporal and significant. A Table is immutable
// once built; tasks and views share it by reference.
type Table struct {
	names []string             // column order as given at construction
	cols  map[string][]float64 // name → values, one entry per name
	n     int                  // row count, shared by every column
}

// NewTable builds a Table from named columns. The names slice fixes column
// order; cols must contain exactly the listed names, all of equal length.
//
// Errors:
//   - ErrEmptyTable — no columns, no rows, or a listed name missing from cols.
//   - ErrDuplicateColumn — a name listed twice.
//   - ErrColumnLength — columns of differing lengths.
func NewTable(names []string, cols map[string][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no columns: %w", ErrEmptyTable)
	}

	seen := make(map[string]struct{}, len(names))
	n := -1
	stored := make(map[string][]float64, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("column %q: %w", name, ErrDuplicateColumn)
		}
		seen[name] = struct{}{}

		values, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("column %q listed but not provided: %w", name, ErrEmptyTable)
		}
		if n == -1 {
			n = len(values)
		} else if len(values) != n {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", name, len(values), n, ErrColumnLength)
		}

		// Copy in: the table owns its storage and never aliases caller slices.
		own := make([]float64, len(values))
		copy(own, values)
		stored[name] = own
	}
	if n == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrEmptyTable)
	}

	ordered := make([]string, len(names))
	copy(ordered, names)

	return &Table{names: ordered, cols: stored, n: n}, nil
}

// Len returns the row count.
func (tb *Table) Len() int { return tb.n }

// Columns returns the column names in construction order.
func (tb *Table) Columns() []string {
	out := make([]string, len(tb.names))
	copy(out, tb.names)

	return out
}

// Has reports whether the table contains a column with the given name.
func (tb *Table) Has(name string) bool {
	_, ok := tb.cols[name]

	return ok
}

// Column returns a copy of the named column's values.
//
// Errors:
//   - ErrUnknownColumn — the name is absent from the table.
func (tb *Table) Column(name string) ([]float64, error) {
	values, ok := tb.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	out := make([]float64, len(values))
	copy(out, values)

	return out, nil
}

// at returns the value at (row, name) without copying. Internal accessor for
// view-resolved reads; bounds are the caller's responsibility.
func (tb *Table) at(row int, name string) float64 {
	return tb.cols[name][row]
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
