package learner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlverse/sl3-lecture/learner"
)

// TestNewPrediction_Validation covers shape and name validation.
func TestNewPrediction_Validation(t *testing.T) {
	_, err := learner.NewPrediction([]string{"a"}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, learner.ErrShapeMismatch, "names/cols mismatch")

	_, err = learner.NewPrediction([]string{"a", "b"}, [][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, learner.ErrShapeMismatch, "ragged columns")

	_, err = learner.NewPrediction([]string{"a", "a"}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, learner.ErrDuplicateColumn, "duplicate name")

	p, err := learner.NewPrediction([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 2, p.Cols())
}

// TestPrediction_ColumnAccess verifies lookups by name and index return
// copies of the stored values.
func TestPrediction_ColumnAccess(t *testing.T) {
	p, err := learner.NewPrediction([]string{"m1", "m2"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	col, err := p.Column("m2")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, col)

	col[0] = 99
	again, err := p.Column("m2")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, again, "accessor returned a copy")

	_, err = p.Column("missing")
	assert.ErrorIs(t, err, learner.ErrUnknownColumn)
}

// TestConcatColumns verifies column order follows argument order and that
// row-count or name collisions error out.
func TestConcatColumns(t *testing.T) {
	a := learner.SingleColumn("a", []float64{1, 2})
	b := learner.SingleColumn("b", []float64{3, 4})

	p, err := learner.ConcatColumns(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, p.Names())
	assert.Equal(t, 2, p.Rows())

	short := learner.SingleColumn("c", []float64{5})
	_, err = learner.ConcatColumns(a, short)
	assert.ErrorIs(t, err, learner.ErrShapeMismatch, "row count disagreement")

	_, err = learner.ConcatColumns(a, learner.SingleColumn("a", []float64{9, 9}))
	assert.ErrorIs(t, err, learner.ErrDuplicateColumn, "name collision")
}

// TestAppendRows verifies row order follows argument order and schema
// mismatches error out.
func TestAppendRows(t *testing.T) {
	p1, err := learner.NewPrediction([]string{"a", "b"}, [][]float64{{1}, {10}})
	require.NoError(t, err)
	p2, err := learner.NewPrediction([]string{"a", "b"}, [][]float64{{2, 3}, {20, 30}})
	require.NoError(t, err)

	p, err := learner.AppendRows(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Rows())
	colA, err := p.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, colA, "rows keep argument order")

	swapped, err := learner.NewPrediction([]string{"b", "a"}, [][]float64{{0}, {0}})
	require.NoError(t, err)
	_, err = learner.AppendRows(p1, swapped)
	assert.ErrorIs(t, err, learner.ErrShapeMismatch, "schema order matters")

	_, err = learner.AppendRows()
	assert.ErrorIs(t, err, learner.ErrShapeMismatch, "empty input")
}
