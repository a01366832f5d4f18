// Package gp はカーネルと入力点からガウス過程の事前分布（平均ベクトルと
// 共分散行列）を組み立てます。
//
// このパッケージは共分散行列の構築までを担当します。行列の分解・尤度計算・
// 予測は下流のコンポーネントの責務であり、ここでは行いません。
package gp

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/tkillestein/tinygp/kernels"
	"github.com/tkillestein/tinygp/pkg/errors"
	"github.com/tkillestein/tinygp/pkg/log"
)

// MeanFunc は1点の事前平均を返す純粋な関数です。
type MeanFunc func(x kernels.Point) float64

// GaussianProcess はカーネル・入力点・観測ノイズ・平均関数を束ねた
// 不変のガウス過程事前分布です。
type GaussianProcess struct {
	kernel kernels.Kernel
	x      *mat.Dense
	diag   []float64 // 対角に加える観測分散（空 / スカラー / 点ごと）
	mean   MeanFunc
	logger log.Logger
}

// Option はGaussianProcessのオプションパラメータを設定します。
type Option func(*GaussianProcess)

// WithDiag は共分散行列の対角へ加える観測分散を設定します。
// 値が1つなら全点で共有され、点数と同じ個数なら点ごとに適用されます。
func WithDiag(diag ...float64) Option {
	return func(g *GaussianProcess) {
		g.diag = diag
	}
}

// WithMeanFunc は事前平均関数を設定します。デフォルトはゼロ平均です。
func WithMeanFunc(mean MeanFunc) Option {
	return func(g *GaussianProcess) {
		g.mean = mean
	}
}

// WithConstantMean は定数の事前平均を設定します。
func WithConstantMean(c float64) Option {
	return func(g *GaussianProcess) {
		g.mean = func(_ kernels.Point) float64 { return c }
	}
}

// WithLogger はロガーを差し替えます。主にテスト用です。
func WithLogger(logger log.Logger) Option {
	return func(g *GaussianProcess) {
		g.logger = logger
	}
}

// New はカーネルと入力点（各行が1点）からガウス過程事前分布を構築します。
// 入力行列は防御的にコピーされ、以後の変更の影響を受けません。
func New(kernel kernels.Kernel, X mat.Matrix, opts ...Option) (*GaussianProcess, error) {
	n, c := X.Dims()
	if n == 0 || c == 0 {
		return nil, errors.NewValueError("gp.New", "empty input matrix")
	}

	g := &GaussianProcess{kernel: kernel}
	for _, opt := range opts {
		opt(g)
	}

	if len(g.diag) > 1 && len(g.diag) != n {
		return nil, errors.NewValidationError("diag", "must be empty, scalar, or one value per point", len(g.diag))
	}
	if g.mean == nil {
		g.mean = func(_ kernels.Point) float64 { return 0.0 }
	}
	if g.logger == nil {
		g.logger = log.GetLogger().With(
			log.ComponentKey, "gp",
			log.KernelNameKey, kernels.Name(kernel),
		)
	}

	g.x = mat.DenseCopyOf(X)
	return g, nil
}

// Kernel は構築に使われたカーネルを返します。
func (g *GaussianProcess) Kernel() kernels.Kernel {
	return g.kernel
}

// NumPoints は入力点の数を返します。
func (g *GaussianProcess) NumPoints() int {
	n, _ := g.x.Dims()
	return n
}

// Mean は各入力点における事前平均ベクトルを返します。
func (g *GaussianProcess) Mean() *mat.VecDense {
	n, c := g.x.Dims()
	out := mat.NewVecDense(n, nil)
	x := make(kernels.Point, c)
	for i := 0; i < n; i++ {
		mat.Row(x, i, g.x)
		out.SetVec(i, g.mean(x))
	}
	return out
}

// Covariance は入力点上のカーネル行列に観測分散の対角を加えた
// 事前共分散行列を返します。出力にNaN/Infが含まれる場合は
// NumericalWarning を発行します（エラーにはしません）。
func (g *GaussianProcess) Covariance() (*mat.SymDense, error) {
	start := time.Now()
	n, _ := g.x.Dims()

	K, err := kernels.Apply(g.kernel, g.x, g.x)
	if err != nil {
		return nil, errors.Wrap(err, "gp.Covariance")
	}

	// 組み込みカーネルは対称なので上三角から対称行列を構築する
	out := mat.NewSymDense(n, nil)
	nonFinite := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := K.At(i, j)
			if i == j {
				v += g.diagAt(i)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				nonFinite++
			}
			out.SetSym(i, j, v)
		}
	}

	if nonFinite > 0 {
		errors.Warn(errors.NewNumericalWarning("gp.Covariance", nonFinite, n*(n+1)/2))
	}

	g.logger.Debug("covariance assembled",
		log.OperationKey, "covariance",
		log.PointsKey, n,
		log.PairsKey, n*n,
		log.NonFiniteKey, nonFinite,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Variance は対角高速パスを使って各点の事前分散のみを返します。
// 完全な共分散行列は構築しません。
func (g *GaussianProcess) Variance() (*mat.VecDense, error) {
	start := time.Now()
	n, _ := g.x.Dims()

	v, err := kernels.Diagonal(g.kernel, g.x)
	if err != nil {
		return nil, errors.Wrap(err, "gp.Variance")
	}
	for i := 0; i < n; i++ {
		v.SetVec(i, v.AtVec(i)+g.diagAt(i))
	}

	g.logger.Debug("variance assembled",
		log.OperationKey, "variance",
		log.PointsKey, n,
		log.PairsKey, n,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return v, nil
}

// diagAt は点 i に加える観測分散を返します。
func (g *GaussianProcess) diagAt(i int) float64 {
	switch len(g.diag) {
	case 0:
		return 0.0
	case 1:
		return g.diag[0]
	default:
		return g.diag[i]
	}
}
