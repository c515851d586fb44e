package glm

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/glmkit/pkg/errors"
	"github.com/YuminosukeSato/glmkit/pkg/log"
)

// GenerateSyntheticData samples a self-consistent dataset from the model
// family: weights uniform in the weight range with a zero reference column,
// integer-valued features uniform in the feature range, and one-hot
// observations drawn from the implied class probabilities by inverse-CDF
// sampling.
//
// With the bias option (the default) a ones column is prepended to x and a
// matching sampled row to w, so the returned shapes are n×(m+1) and
// (m+1)×c; otherwise n×m and m×c. The returned triple feeds directly into
// Fit and NegLogLikelihood. Pass WithRandSource for reproducible output.
// The instance's fitted state is left untouched.
func (g *GLM) GenerateSyntheticData(opts ...SimOption) (x, w, y *mat.Dense, err error) {
	const op = "GLM.GenerateSyntheticData"

	cfg := simConfig{wLo: -0.2, wHi: 1.2, xLo: -10, xHi: 10, bias: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.wLo >= cfg.wHi {
		return nil, nil, nil, errors.NewValueError(op, fmt.Sprintf("weight range [%g, %g) is empty", cfg.wLo, cfg.wHi))
	}
	if cfg.xLo >= cfg.xHi {
		return nil, nil, nil, errors.NewValueError(op, fmt.Sprintf("feature range [%d, %d) is empty", cfg.xLo, cfg.xHi))
	}

	intN := rand.IntN
	unit := rand.Float64
	uniform := distuv.Uniform{Min: cfg.wLo, Max: cfg.wHi}
	if cfg.src != nil {
		rng := rand.New(cfg.src)
		intN = rng.IntN
		unit = rng.Float64
		uniform.Src = cfg.src
	}

	// Weights with the fixed zero reference column.
	w = mat.NewDense(g.m, g.c, nil)
	for i := 0; i < g.m; i++ {
		for j := 1; j < g.c; j++ {
			w.Set(i, j, uniform.Rand())
		}
	}

	// Integer-valued features stored as float64.
	x = mat.NewDense(g.n, g.m, nil)
	span := cfg.xHi - cfg.xLo
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.m; j++ {
			x.Set(i, j, float64(cfg.xLo+intN(span)))
		}
	}

	feats := g.m
	if cfg.bias {
		xb := mat.NewDense(g.n, g.m+1, nil)
		for i := 0; i < g.n; i++ {
			xb.Set(i, 0, 1)
			for j := 0; j < g.m; j++ {
				xb.Set(i, j+1, x.At(i, j))
			}
		}
		wb := mat.NewDense(g.m+1, g.c, nil)
		for j := 1; j < g.c; j++ {
			wb.Set(0, j, uniform.Rand())
		}
		for i := 0; i < g.m; i++ {
			for j := 0; j < g.c; j++ {
				wb.Set(i+1, j, w.At(i, j))
			}
		}
		x, w = xb, wb
		feats++
	}

	phi, err := g.ObservationProbabilities(x, w, true)
	if err != nil {
		return nil, nil, nil, err
	}

	// Inverse-CDF draw per row: the first class whose cumulative
	// probability exceeds the uniform draw.
	y = mat.NewDense(g.n, g.c, nil)
	cum := make([]float64, g.c)
	for i := 0; i < g.n; i++ {
		floats.CumSum(cum, phi.RawRowView(i))
		u := unit()
		k := 0
		for j := 0; j < g.c; j++ {
			if u < cum[j] {
				k = j
				break
			}
		}
		y.Set(i, k, 1)
	}

	g.logger.Debug("synthetic data generated",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationSimulate,
		log.SamplesKey, g.n,
		log.FeaturesKey, feats,
		log.ClassesKey, g.c,
	)
	return x, w, y, nil
}
