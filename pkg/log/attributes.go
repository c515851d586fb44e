// Package log defines standard attribute keys for model operations.
//
// Using these keys consistently keeps log output filterable across
// packages. Keys follow a hierarchical naming convention ("model.name",
// "data.samples") for structured log analysis.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, for example "GLM".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: OperationFit, OperationLikelihood, OperationSimulate.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns, including a bias
	// column when present.
	FeaturesKey = "data.features"

	// ClassesKey is the number of outcome classes.
	ClassesKey = "data.classes"
)

// Optimization and evaluation.
const (
	// IterationKey is the optimizer's major iteration count.
	IterationKey = "training.iteration"

	// LossKey is an objective value such as the negative log-likelihood.
	LossKey = "metrics.loss"

	// AccuracyKey is a classification agreement score in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorTypeKey categorizes a failure, for example "DimensionError".
	ErrorTypeKey = "error.type"
)

// Standard operation values.
const (
	OperationFit        = "fit"
	OperationLikelihood = "likelihood"
	OperationSimulate   = "simulate"
)
