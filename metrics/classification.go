// Package metrics provides evaluation metrics for probabilistic classifiers.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/glmkit/core/parallel"
	"github.com/YuminosukeSato/glmkit/pkg/errors"
)

// parallelRowThreshold is the row count above which label extraction fans
// out across cores.
const parallelRowThreshold = 2048

// ArgmaxLabels converts a probability or one-hot matrix into a vector of
// class labels, taking the first maximal column of each row.
func ArgmaxLabels(p mat.Matrix) (*mat.VecDense, error) {
	r, c := p.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("ArgmaxLabels", "empty matrix")
	}

	labels := mat.NewVecDense(r, nil)
	parallel.ForThreshold(r, parallelRowThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			labels.SetVec(i, float64(rowArgmax(p, i, c)))
		}
	})
	return labels, nil
}

// ArgmaxAgreement returns the fraction of rows on which two probability
// matrices select the same class, their row-wise argmax agreement.
func ArgmaxAgreement(p, q mat.Matrix) (float64, error) {
	pr, pc := p.Dims()
	qr, qc := q.Dims()
	if pr == 0 || pc == 0 {
		return 0, errors.NewValueError("ArgmaxAgreement", "empty matrix")
	}
	if pr != qr {
		return 0, errors.NewDimensionError("ArgmaxAgreement", pr, qr, 0)
	}
	if pc != qc {
		return 0, errors.NewDimensionError("ArgmaxAgreement", pc, qc, 1)
	}

	matches := 0
	for i := 0; i < pr; i++ {
		if rowArgmax(p, i, pc) == rowArgmax(q, i, pc) {
			matches++
		}
	}
	return float64(matches) / float64(pr), nil
}

// Accuracy returns the fraction of matching labels between two label
// vectors.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	matches := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			matches++
		}
	}
	return float64(matches) / float64(n), nil
}

// LogLoss returns the mean cross-entropy of predicted probabilities proba
// against one-hot truth yTrue:
//
//	LogLoss = -(1/n) * Σ_i Σ_j yTrue[i,j] * log(proba[i,j])
//
// Probabilities are used as given; a zero probability at a true class
// yields +Inf.
func LogLoss(yTrue, proba mat.Matrix) (float64, error) {
	tr, tc := yTrue.Dims()
	pr, pc := proba.Dims()
	if tr == 0 || tc == 0 {
		return 0, errors.NewValueError("LogLoss", "empty matrix")
	}
	if tr != pr {
		return 0, errors.NewDimensionError("LogLoss", tr, pr, 0)
	}
	if tc != pc {
		return 0, errors.NewDimensionError("LogLoss", tc, pc, 1)
	}

	var sum float64
	for i := 0; i < tr; i++ {
		for j := 0; j < tc; j++ {
			if t := yTrue.At(i, j); t != 0 {
				sum += t * math.Log(proba.At(i, j))
			}
		}
	}
	return -sum / float64(tr), nil
}

// rowArgmax returns the first column index holding the maximum of row i.
func rowArgmax(m mat.Matrix, i, cols int) int {
	best := 0
	bestVal := m.At(i, 0)
	for j := 1; j < cols; j++ {
		if v := m.At(i, j); v > bestVal {
			best = j
			bestVal = v
		}
	}
	return best
}
