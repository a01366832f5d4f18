// Package tinygp provides a composable kernel-function algebra for building
// and evaluating Gaussian-process covariance matrices in Go.
//
// A kernel is a pure, symmetric, parametric function of two points that
// measures their similarity. tinygp lets you build complex kernels from
// simple ones and evaluate any composed kernel over batches of points,
// producing either a full pairwise matrix or its diagonal.
//
// # Features
//
//   - Closed-form leaf kernels: Constant, DotProduct, Polynomial, Exp,
//     ExpSquared, Matern32, Matern52, Cosine, ExpSineSquared,
//     RationalQuadratic, and a Custom wrapper for user functions
//   - Compositional operators: sums, products, scalar lifting, input
//     coordinate transforms, and dimensional subsetting
//   - Batched evaluation over gonum matrices with a dedicated O(n)
//     diagonal fast path and automatic CPU parallelization
//   - Structured errors (cockroachdb/errors) and structured logging
//
// # Quick Start
//
// Build a kernel expression and evaluate it over a batch of points:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/tkillestein/tinygp/kernels"
//	)
//
//	func main() {
//	    // Matern-3/2 with length scale 1.5, plus white noise
//	    k, err := kernels.Add(kernels.NewMatern32(1.5), 0.1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    X := mat.NewDense(3, 1, []float64{0.0, 0.5, 1.0})
//	    K, err := kernels.Apply(k, X, X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(K))
//	}
//
// # Packages
//
//   - kernels: the kernel abstraction, leaf kernels, combinators, and the
//     batched-evaluation engine
//   - metrics: input-coordinate transformations applied before evaluation
//   - gp: assembly of Gaussian-process prior mean vectors and covariance
//     matrices from a kernel and a set of input points
//
// # Numeric Policy
//
// Pointwise evaluation is total: numeric domain errors (a negative base
// raised to a fractional power, division by a zero scale) propagate as
// NaN/Inf values rather than errors. Shape mismatches between points and
// kernel parameters are reported as errors at evaluation time.
package tinygp
