package task

import "errors"

// Sentinel errors for table and task construction. Constructors wrap them
// with context describing the offending column or parameter; callers match
// via errors.Is.
var (
	// ErrInvalidTaskSpec indicates a bad task definition: unknown column
	// references, empty covariate/outcome sets, an outcome type incompatible
	// with the outcome column's value domain, or a fold assignment pointing
	// outside the data.
	ErrInvalidTaskSpec = errors.New("task: invalid task specification")

	// ErrEmptyTable indicates a table with no columns or no rows.
	ErrEmptyTable = errors.New("task: table must have at least one column and one row")

	// ErrColumnLength indicates table columns of differing lengths.
	ErrColumnLength = errors.New("task: all columns must share one length")

	// ErrDuplicateColumn indicates a repeated column name.
	ErrDuplicateColumn = errors.New("task: duplicate column name")

	// ErrUnknownColumn indicates a referenced column is absent from the table.
	ErrUnknownColumn = errors.New("task: unknown column")

	// ErrBadView indicates a view range outside the task's row window.
	ErrBadView = errors.New("task: view range out of bounds")
)
