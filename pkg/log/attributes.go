// Package log defines standard attribute keys for kernel-algebra operations.
//
// Using these keys keeps log records consistent across the kernels, metrics
// and gp packages, which makes shape mismatches and non-finite covariance
// entries easy to filter for in structured log output.

package log

// Kernel and operation context.
const (
	// KernelNameKey identifies the kernel expression being evaluated.
	// Examples: "Matern32(1.5)", "Sum(ExpSquared(1), Constant(0.1))"
	KernelNameKey = "kernel.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "apply", "diagonal", "covariance", "mean"
	OperationKey = "gp.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "kernels", "metrics", "gp"
	ComponentKey = "gp.component"
)

// Data shape.
const (
	// PointsKey is the number of input points (rows) in a batch.
	PointsKey = "data.points"

	// Points2Key is the number of points in the second batch of a full
	// pairwise evaluation.
	Points2Key = "data.points2"

	// DimsKey is the dimensionality of each point.
	DimsKey = "data.dims"

	// PairsKey is the number of pointwise evaluations issued by a batch.
	PairsKey = "eval.pairs"
)

// Performance and quality.
const (
	// DurationMsKey records elapsed wall time in milliseconds.
	DurationMsKey = "duration.ms"

	// NonFiniteKey counts NaN/Inf entries found in an output matrix.
	NonFiniteKey = "eval.non_finite"
)

// Error context.
const (
	// ErrorTypeKey carries the concrete error type name.
	ErrorTypeKey = "error.type"
)
