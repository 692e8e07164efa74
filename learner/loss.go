package learner

import (
	"fmt"
	"math"
)

// Loss scores a single prediction against the observed outcome. Risk is the
// weighted aggregate of a Loss over validation-set predictions only.
type Loss func(predicted, observed float64) float64

// SquaredError is the L2 loss (predicted-observed)².
func SquaredError(predicted, observed float64) float64 {
	d := predicted - observed

	return d * d
}

// AbsoluteError is the L1 loss |predicted-observed|.
func AbsoluteError(predicted, observed float64) float64 {
	return math.Abs(predicted - observed)
}

// logLossEps clamps predicted probabilities away from 0 and 1 so the
// logarithm stays finite.
const logLossEps = 1e-15

// LogLoss is the negative binomial log-likelihood for binary outcomes.
// Predicted values are treated as probabilities and clamped to
// [logLossEps, 1-logLossEps].
func LogLoss(predicted, observed float64) float64 {
	p := math.Min(math.Max(predicted, logLossEps), 1-logLossEps)

	return -(observed*math.Log(p) + (1-observed)*math.Log(1-p))
}

// MeanRisk computes the weighted mean loss over aligned prediction, outcome,
// and weight vectors: Σ w·loss(pred,obs) / Σ w.
//
// Errors:
//   - ErrShapeMismatch — vector lengths disagree, the vectors are empty, or
//     the total weight is zero.
func MeanRisk(predicted, observed, weights []float64, loss Loss) (float64, error) {
	n := len(predicted)
	if n == 0 || len(observed) != n || len(weights) != n {
		return 0, fmt.Errorf("risk over %d/%d/%d entries: %w", len(predicted), len(observed), len(weights), ErrShapeMismatch)
	}

	var sum, wsum float64
	for i := 0; i < n; i++ {
		sum += weights[i] * loss(predicted[i], observed[i])
		wsum += weights[i]
	}
	if wsum == 0 {
		return 0, fmt.Errorf("risk with zero total weight: %w", ErrShapeMismatch)
	}

	return sum / wsum, nil
}
