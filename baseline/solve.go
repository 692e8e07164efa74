package baseline

import (
	"errors"
	"math"
)

// errSingular marks a linear system without a usable pivot. Internal; OLS
// wraps it into learner.ErrTrainingFailure at its boundary.
var errSingular = errors.New("baseline: singular system")

// solveLinear solves A·x = b in place by Gaussian elimination with partial
// pivoting. A must be square; both A and b are overwritten.
//
// Pivoting keeps the elimination numerically stable; a pivot below pivotEps
// (in absolute value) signals a rank-deficient normal-equations matrix.
//
// Time Complexity: O(n³); Memory: O(1) beyond the inputs.
func solveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)

	// Forward elimination with row pivoting.
	for col := 0; col < n; col++ {
		// Select the largest remaining pivot in this column.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < pivotEps {
			return nil, errSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		// Eliminate the column below the pivot.
		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}

	return x, nil
}

// pivotEps is the minimum absolute pivot accepted during elimination.
const pivotEps = 1e-12
