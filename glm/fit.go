package glm

import (
	"math"
	"time"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/glmkit/pkg/errors"
	"github.com/YuminosukeSato/glmkit/pkg/log"
)

const optimizerName = "L-BFGS"

// Fit estimates the weight matrix by maximum likelihood.
//
// x is the n×k design matrix (k may exceed the constructed feature count
// when a bias column is present), w0 the k×c starting weights of which only
// columns 1..c-1 are used, and y the n×c one-hot observations. The free
// columns of w0 are flattened row-major into the optimization variable;
// column 0 stays structurally zero throughout and is re-attached to the
// optimized block. The optimizer runs with gonum's default convergence
// settings and its result is accepted as-is: if it stops with an error but
// still reports a point, that point is used and a ConvergenceWarning goes
// through the warning handler.
//
// On success the optimized weights, the normalized probability matrix at
// those weights, the final likelihood value and the iteration count are
// cached on the instance. With WithHessian(true) the standard errors from
// the inverse Hessian at the optimum are cached as well; a Hessian that
// cannot be inverted is a fatal error.
func (g *GLM) Fit(x, w0, y mat.Matrix, opts ...FitOption) (weights, phi *mat.Dense, err error) {
	const op = "GLM.Fit"
	defer errors.Recover(&err, op)

	var cfg fitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	xr, feats := x.Dims()
	if xr == 0 || feats == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if xr != g.n {
		return nil, nil, errors.NewDimensionError(op, g.n, xr, 0)
	}
	wr, wc := w0.Dims()
	if wr != feats {
		return nil, nil, errors.NewDimensionError(op, feats, wr, 0)
	}
	if wc != g.c {
		return nil, nil, errors.NewDimensionError(op, g.c, wc, 1)
	}
	yr, yc := y.Dims()
	if yr != g.n {
		return nil, nil, errors.NewDimensionError(op, g.n, yr, 0)
	}
	if yc != g.c {
		return nil, nil, errors.NewDimensionError(op, g.c, yc, 1)
	}

	start := time.Now()
	g.logger.Debug("starting optimization",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationFit,
		log.SamplesKey, xr,
		log.FeaturesKey, feats,
		log.ClassesKey, g.c,
	)

	theta0 := flattenFree(w0, feats, g.c)

	// The optimizer cannot carry errors through its closures, so the first
	// failure is recorded here and the evaluation poisoned with NaN to
	// terminate the run.
	var evalErr error
	record := func(e error) {
		if evalErr == nil {
			evalErr = e
		}
	}

	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			var nll float64
			e := errors.SafeExecute("GLM.Fit: objective evaluation", func() error {
				w := g.expandWeights(theta, feats)
				v, lerr := g.NegLogLikelihood(x, w, y)
				nll = v
				return lerr
			})
			if e != nil {
				record(e)
				return math.NaN()
			}
			return nll
		},
		Grad: func(grad, theta []float64) {
			e := errors.SafeExecute("GLM.Fit: gradient evaluation", func() error {
				return g.scoreGradient(x, y, theta, feats, grad)
			})
			if e != nil {
				record(e)
				for i := range grad {
					grad[i] = math.NaN()
				}
			}
		},
	}

	result, optErr := optimize.Minimize(problem, theta0, nil, &optimize.LBFGS{})
	if evalErr != nil {
		return nil, nil, evalErr
	}
	if optErr != nil {
		if result == nil || len(result.X) == 0 {
			return nil, nil, errors.NewModelError(op, "optimization failed", optErr)
		}
		errors.Warn(errors.NewConvergenceWarning(optimizerName, result.Stats.MajorIterations, optErr.Error()))
	}

	wOpt := g.expandWeights(result.X, feats)

	if cfg.computeHessian {
		if serr := g.computeStdErrs(x, y, result.X, feats); serr != nil {
			return nil, nil, serr
		}
	} else {
		g.stdErrs_ = nil
	}

	// Evaluate once more at the optimum so the cached likelihood belongs to
	// the final weights, not to the last point the optimizer probed.
	if _, lerr := g.NegLogLikelihood(x, wOpt, y); lerr != nil {
		return nil, nil, lerr
	}
	phiOpt, perr := g.ObservationProbabilities(x, wOpt, true)
	if perr != nil {
		return nil, nil, perr
	}

	g.weights_ = wOpt
	g.phi_ = phiOpt
	g.nIter_ = result.Stats.MajorIterations
	g.state.SetDimensions(xr, feats, g.c)
	g.state.SetFitted()

	g.logger.Info("fit complete",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationFit,
		log.IterationKey, g.nIter_,
		log.LossKey, g.nll_,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return wOpt, phiOpt, nil
}

// flattenFree extracts columns 1..c-1 of w into a row-major vector, the
// layout the optimizer works on.
func flattenFree(w mat.Matrix, feats, classes int) []float64 {
	free := classes - 1
	theta := make([]float64, feats*free)
	for i := 0; i < feats; i++ {
		for j := 0; j < free; j++ {
			theta[i*free+j] = w.At(i, j+1)
		}
	}
	return theta
}

// expandWeights rebuilds the full weight matrix from a flat free-parameter
// vector, with column 0 fixed at zero.
func (g *GLM) expandWeights(theta []float64, feats int) *mat.Dense {
	free := g.c - 1
	w := mat.NewDense(feats, g.c, nil)
	for i := 0; i < feats; i++ {
		for j := 0; j < free; j++ {
			w.Set(i, j+1, theta[i*free+j])
		}
	}
	return w
}

// scoreGradient writes the gradient of the negative log-likelihood with
// respect to the free parameters into grad: the free columns of xᵀ(phi − y).
func (g *GLM) scoreGradient(x, y mat.Matrix, theta []float64, feats int, grad []float64) error {
	w := g.expandWeights(theta, feats)
	phi, err := g.ObservationProbabilities(x, w, true)
	if err != nil {
		return err
	}

	var diff mat.Dense
	diff.Sub(phi, y)
	var score mat.Dense
	score.Mul(x.T(), &diff)

	free := g.c - 1
	for i := 0; i < feats; i++ {
		for j := 0; j < free; j++ {
			grad[i*free+j] = score.At(i, j+1)
		}
	}
	return nil
}

// computeStdErrs estimates per-parameter standard errors from the inverse
// of the finite-difference Hessian at the optimum.
func (g *GLM) computeStdErrs(x, y mat.Matrix, theta []float64, feats int) error {
	objective := func(t []float64) float64 {
		w := g.expandWeights(t, feats)
		v, err := g.NegLogLikelihood(x, w, y)
		if err != nil {
			return math.NaN()
		}
		return v
	}

	dim := len(theta)
	hess := mat.NewSymDense(dim, nil)
	fd.Hessian(hess, objective, theta, nil)

	var hinv mat.Dense
	if err := hinv.Inverse(hess); err != nil {
		return errors.NewModelError("GLM.Fit", "Hessian inversion failed",
			errors.Wrap(errors.ErrSingularMatrix, err.Error()))
	}

	stdErrs := make([]float64, dim)
	for i := range stdErrs {
		stdErrs[i] = math.Sqrt(hinv.At(i, i))
	}
	g.stdErrs_ = stdErrs
	return nil
}
