package kernels

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tkillestein/tinygp/pkg/errors"
)

// Constant は入力を無視して固定値 c を返すカーネルです。
// 数値オペランドをカーネル代数へ持ち上げるときにも使われます。
type Constant struct {
	Value float64
}

// NewConstant は定数カーネルを構築します。
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

// Evaluate は入力に依存せず常に Value を返します。
func (k *Constant) Evaluate(_, _ Point) (float64, error) {
	return k.Value, nil
}

func (k *Constant) String() string {
	return fmt.Sprintf("Constant(%g)", k.Value)
}

// DotProduct は内積カーネル k(x1, x2) = x1 · x2 です。パラメータを持ちません。
type DotProduct struct{}

// NewDotProduct は内積カーネルを構築します。
func NewDotProduct() *DotProduct {
	return &DotProduct{}
}

// Evaluate は2点の成分ごとの内積を返します。
func (k *DotProduct) Evaluate(x1, x2 Point) (float64, error) {
	if err := checkSameLen("DotProduct.Evaluate", x1, x2); err != nil {
		return 0, err
	}
	return floats.Dot(x1, x2), nil
}

func (k *DotProduct) String() string {
	return "DotProduct()"
}

// Polynomial は多項式カーネル ((x1/ℓ)·(x2/ℓ) + σ²)^P です。
// σ は構築時に二乗されて保持されます。
type Polynomial struct {
	Order  float64
	Scale  []float64
	Sigma2 float64
}

// PolynomialOption はPolynomialのオプションパラメータを設定します。
type PolynomialOption func(*Polynomial)

// WithScale は長さスケール ℓ を設定します（スカラーまたは次元ごと）。
func WithScale(scale ...float64) PolynomialOption {
	return func(k *Polynomial) {
		k.Scale = scale
	}
}

// WithSigma は σ を設定します。内部では σ² として保持されます。
func WithSigma(sigma float64) PolynomialOption {
	return func(k *Polynomial) {
		k.Sigma2 = sigma * sigma
	}
}

// NewPolynomial は次数 order の多項式カーネルを構築します。
// デフォルトは ℓ = 1, σ = 0 です。
//
//	k := kernels.NewPolynomial(2, kernels.WithScale(1.5), kernels.WithSigma(0.3))
func NewPolynomial(order float64, opts ...PolynomialOption) *Polynomial {
	k := &Polynomial{Order: order}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Evaluate は ((x1/ℓ)·(x2/ℓ) + σ²)^P を返します。負の基数と非整数の次数の
// 組み合わせは math.Pow の規約どおり NaN として伝播します。
func (k *Polynomial) Evaluate(x1, x2 Point) (float64, error) {
	if err := checkSameLen("Polynomial.Evaluate", x1, x2); err != nil {
		return 0, err
	}
	if err := checkScale("Polynomial.Evaluate", k.Scale, len(x1)); err != nil {
		return 0, err
	}

	var dot float64
	for i := range x1 {
		s := scaleAt(k.Scale, i)
		dot += (x1[i] / s) * (x2[i] / s)
	}
	return math.Pow(dot+k.Sigma2, k.Order), nil
}

func (k *Polynomial) String() string {
	return fmt.Sprintf("Polynomial(order=%g)", k.Order)
}

// EvaluateFunc はポイントワイズ評価の契約に適合する関数型です。
// 入力を単一の点として扱い、決定的かつ副作用なしでなければなりません。
type EvaluateFunc func(x1, x2 Point) (float64, error)

// Custom は任意のポイントワイズ関数をカーネルとしてラップします。
type Custom struct {
	Function EvaluateFunc
}

// NewCustom はユーザー定義のポイントワイズ関数からカーネルを構築します。
//
//	k := kernels.NewCustom(func(x1, x2 kernels.Point) (float64, error) {
//	    return x1[0] * x2[0], nil
//	})
func NewCustom(function EvaluateFunc) *Custom {
	return &Custom{Function: function}
}

// Evaluate はラップした関数へ委譲します。関数が設定されていない場合は
// NotImplementedError を返します。
func (k *Custom) Evaluate(x1, x2 Point) (float64, error) {
	if k.Function == nil {
		return 0, errors.NewNotImplementedError("Custom", "Evaluate")
	}
	return k.Function(x1, x2)
}

func (k *Custom) String() string {
	return "Custom()"
}
