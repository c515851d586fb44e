// Package glm implements a multinomial generalized linear model with a
// softmax link.
//
// Given a design matrix x and one-hot observations y, the model estimates a
// weight matrix w mapping features to class probabilities through
// row-normalized exponentiated scores. Column 0 of w is the reference class
// and stays fixed at zero; only columns 1..c-1 are free parameters. Fitting
// minimizes the negative log-likelihood with gonum's L-BFGS. A synthetic
// data generator produces self-consistent (x, w, y) triples for validation.
//
// A GLM instance is not safe for concurrent use; callers that share one
// across goroutines must synchronize externally.
package glm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/glmkit/core/model"
	"github.com/YuminosukeSato/glmkit/pkg/errors"
	"github.com/YuminosukeSato/glmkit/pkg/log"
)

// probSumTol bounds how far a normalized probability row may drift from
// summing to 1: row sums must still round to 1 at two decimal places.
const probSumTol = 5e-3

// modelName is used in errors and log fields.
const modelName = "GLM"

// GLM is a multinomial generalized linear model with a softmax link.
//
// It is constructed for fixed dimensions (n samples, m features, c classes)
// and holds the latest fit results. Each call to Fit overwrites the cached
// weights, probabilities, likelihood and standard errors wholesale.
type GLM struct {
	state  *model.StateManager
	logger log.Logger

	n int // number of samples
	m int // number of features before any bias column
	c int // number of classes

	weights_ *mat.Dense // fitted weight matrix, column 0 zero
	phi_     *mat.Dense // normalized probabilities at the fitted weights
	nll_     float64    // latest negative log-likelihood value
	stdErrs_ []float64  // per-free-parameter standard errors, nil unless requested
	nIter_   int        // optimizer major iterations of the last fit
}

// NewGLM creates a GLM for n samples, m features and c classes.
func NewGLM(n, m, c int, opts ...Option) (*GLM, error) {
	const op = "NewGLM"
	if n < 1 {
		return nil, errors.NewValueError(op, "sample count must be at least 1")
	}
	if m < 1 {
		return nil, errors.NewValueError(op, "feature count must be at least 1")
	}
	if c < 2 {
		return nil, errors.NewValueError(op, "class count must be at least 2")
	}

	g := &GLM{
		state:  model.NewStateManager(),
		logger: log.NewNopLogger(),
		n:      n,
		m:      m,
		c:      c,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Dims returns the sample, feature and class counts the model was
// constructed with.
func (g *GLM) Dims() (n, m, c int) {
	return g.n, g.m, g.c
}

// IsFitted reports whether Fit has completed successfully.
func (g *GLM) IsFitted() bool {
	return g.state.IsFitted()
}

// ObservationProbabilities computes phi = exp(x·w), row-normalized into
// class probabilities when normalize is true.
//
// x is r×k and w is k×q; the result is r×q. Scores are exponentiated
// directly, without clamping or max-subtraction, so extremely large scores
// overflow to +Inf. When normalize is false the returned values are the
// unnormalized positive masses used by NegLogLikelihood.
func (g *GLM) ObservationProbabilities(x, w mat.Matrix, normalize bool) (*mat.Dense, error) {
	const op = "GLM.ObservationProbabilities"
	_, xc := x.Dims()
	wr, _ := w.Dims()
	if xc != wr {
		return nil, errors.NewDimensionError(op, xc, wr, 0)
	}

	var scores mat.Dense
	scores.Mul(x, w)

	var phi mat.Dense
	phi.Apply(func(_, _ int, v float64) float64 { return math.Exp(v) }, &scores)

	if normalize {
		r, _ := phi.Dims()
		for i := 0; i < r; i++ {
			row := phi.RawRowView(i)
			floats.Scale(1/floats.Sum(row), row)
		}
	}
	return &phi, nil
}

// NegLogLikelihood computes the negative log-likelihood of one-hot
// observations y under weights w, the quantity Fit minimizes.
//
// The per-row likelihood is the unnormalized mass at the true class divided
// by the row's normalization constant. A vector w is the usual k×1
// single-column matrix, so y must then have one column. Before returning,
// every normalized row is checked to sum to 1 within rounding tolerance;
// a violation, including NaN from overflowed scores, is reported as a
// NumericalInstabilityError.
//
// The returned value is also cached on the instance and exposed through
// NLL after a successful Fit.
func (g *GLM) NegLogLikelihood(x, w, y mat.Matrix) (float64, error) {
	const op = "GLM.NegLogLikelihood"
	xr, _ := x.Dims()
	_, wc := w.Dims()
	yr, yc := y.Dims()
	if yr != xr {
		return 0, errors.NewDimensionError(op, xr, yr, 0)
	}
	if yc != wc {
		return 0, errors.NewDimensionError(op, wc, yc, 1)
	}

	phi, err := g.ObservationProbabilities(x, w, false)
	if err != nil {
		return 0, err
	}

	var ll float64
	for i := 0; i < xr; i++ {
		row := phi.RawRowView(i)
		norm := floats.Sum(row)

		var weighted, rowSum float64
		for j := 0; j < wc; j++ {
			weighted += row[j] * y.At(i, j)
			rowSum += row[j] / norm
		}
		if math.IsNaN(rowSum) || math.Abs(rowSum-1) > probSumTol {
			return 0, errors.NewNumericalInstabilityError(op, []float64{rowSum, norm}, i)
		}

		ll += math.Log(weighted) - math.Log(norm)
	}

	nll := -ll
	g.nll_ = nll
	return nll, nil
}

// Weights returns the fitted weight matrix (m×c, column 0 zero).
func (g *GLM) Weights() (*mat.Dense, error) {
	if err := g.state.RequireFitted(modelName, "Weights"); err != nil {
		return nil, err
	}
	return g.weights_, nil
}

// Probabilities returns the normalized probability matrix at the fitted
// weights.
func (g *GLM) Probabilities() (*mat.Dense, error) {
	if err := g.state.RequireFitted(modelName, "Probabilities"); err != nil {
		return nil, err
	}
	return g.phi_, nil
}

// NLL returns the negative log-likelihood at the fitted weights.
func (g *GLM) NLL() (float64, error) {
	if err := g.state.RequireFitted(modelName, "NLL"); err != nil {
		return 0, err
	}
	return g.nll_, nil
}

// StdErrors returns the per-free-parameter standard errors estimated from
// the inverse Hessian at the optimum, laid out row-major over the free
// columns 1..c-1. Fit must have been called with WithHessian(true).
func (g *GLM) StdErrors() ([]float64, error) {
	if err := g.state.RequireFitted(modelName, "StdErrors"); err != nil {
		return nil, err
	}
	if g.stdErrs_ == nil {
		return nil, errors.NewValueError("GLM.StdErrors", "fit was run without Hessian computation; pass WithHessian(true) to Fit")
	}
	return g.stdErrs_, nil
}

// Iterations returns the optimizer's major iteration count from the last fit.
func (g *GLM) Iterations() (int, error) {
	if err := g.state.RequireFitted(modelName, "Iterations"); err != nil {
		return 0, err
	}
	return g.nIter_, nil
}
