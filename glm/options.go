package glm

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/glmkit/pkg/log"
)

// Option is a function that configures a GLM at construction time.
type Option func(*GLM)

// WithLogger sets the structured logger used by the model. The default
// logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(g *GLM) {
		g.logger = logger
	}
}

// fitConfig holds per-call Fit settings.
type fitConfig struct {
	computeHessian bool
}

// FitOption is a function that configures a single Fit call.
type FitOption func(*fitConfig)

// WithHessian sets whether Fit estimates per-parameter standard errors from
// the inverse Hessian at the optimum. Off by default.
func WithHessian(compute bool) FitOption {
	return func(c *fitConfig) {
		c.computeHessian = compute
	}
}

// simConfig holds per-call GenerateSyntheticData settings.
type simConfig struct {
	wLo, wHi float64
	xLo, xHi int
	bias     bool
	src      rand.Source
}

// SimOption is a function that configures a GenerateSyntheticData call.
type SimOption func(*simConfig)

// WithWeightRange sets the half-open interval [lo, hi) weights are sampled
// from. The default is (-0.2, 1.2).
func WithWeightRange(lo, hi float64) SimOption {
	return func(c *simConfig) {
		c.wLo = lo
		c.wHi = hi
	}
}

// WithFeatureRange sets the half-open integer interval [lo, hi) feature
// values are sampled from. The default is [-10, 10).
func WithFeatureRange(lo, hi int) SimOption {
	return func(c *simConfig) {
		c.xLo = lo
		c.xHi = hi
	}
}

// WithBias sets whether a constant bias feature is injected: a ones column
// prepended to x with a matching sampled row prepended to w. On by default.
func WithBias(bias bool) SimOption {
	return func(c *simConfig) {
		c.bias = bias
	}
}

// WithRandSource sets the random source used for all sampling, making the
// generated data reproducible. The default is the process-global generator.
func WithRandSource(src rand.Source) SimOption {
	return func(c *simConfig) {
		c.src = src
	}
}
