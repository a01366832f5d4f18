package kernels

import (
	"fmt"
	"math"

	"github.com/tkillestein/tinygp/pkg/errors"
)

// 定常カーネルは成分ごとの差 d = x1 - x2 のみに依存します。
// scale はスカラー（全次元にブロードキャスト）または次元ごとのベクトルで、
// 検証は構築時ではなく評価時（初回使用時）に行われます。

// Exp は指数カーネル exp(-r), r = Σ|d/ℓ| （L1距離）です。
type Exp struct {
	Scale []float64
}

// NewExp は指数カーネルを構築します。引数なしで ℓ = 1 です。
func NewExp(scale ...float64) *Exp {
	return &Exp{Scale: scale}
}

// Evaluate は exp(-Σ|d/ℓ|) を返します。
func (k *Exp) Evaluate(x1, x2 Point) (float64, error) {
	r, err := scaledL1("Exp.Evaluate", x1, x2, k.Scale)
	if err != nil {
		return 0, err
	}
	return math.Exp(-r), nil
}

func (k *Exp) String() string {
	return "Exp(" + scaleString(k.Scale) + ")"
}

// ExpSquared は二乗指数（RBF）カーネル exp(-r²/2), r² = Σ(d/ℓ)² です。
type ExpSquared struct {
	Scale []float64
}

// NewExpSquared は二乗指数カーネルを構築します。引数なしで ℓ = 1 です。
func NewExpSquared(scale ...float64) *ExpSquared {
	return &ExpSquared{Scale: scale}
}

// Evaluate は exp(-Σ(d/ℓ)²/2) を返します。
func (k *ExpSquared) Evaluate(x1, x2 Point) (float64, error) {
	r2, err := scaledSqL2("ExpSquared.Evaluate", x1, x2, k.Scale)
	if err != nil {
		return 0, err
	}
	return math.Exp(-0.5 * r2), nil
}

func (k *ExpSquared) String() string {
	return "ExpSquared(" + scaleString(k.Scale) + ")"
}

// Matern32 は Matern-3/2 カーネル (1 + √3 r) exp(-√3 r), r = Σ|d/ℓ| です。
type Matern32 struct {
	Scale []float64
}

// NewMatern32 は Matern-3/2 カーネルを構築します。引数なしで ℓ = 1 です。
func NewMatern32(scale ...float64) *Matern32 {
	return &Matern32{Scale: scale}
}

// Evaluate は (1 + √3 r) exp(-√3 r) を返します。
func (k *Matern32) Evaluate(x1, x2 Point) (float64, error) {
	r, err := scaledL1("Matern32.Evaluate", x1, x2, k.Scale)
	if err != nil {
		return 0, err
	}
	arg := math.Sqrt(3.0) * r
	return (1.0 + arg) * math.Exp(-arg), nil
}

func (k *Matern32) String() string {
	return "Matern32(" + scaleString(k.Scale) + ")"
}

// Matern52 は Matern-5/2 カーネル (1 + √5 r + 5r²/3) exp(-√5 r) です。
type Matern52 struct {
	Scale []float64
}

// NewMatern52 は Matern-5/2 カーネルを構築します。引数なしで ℓ = 1 です。
func NewMatern52(scale ...float64) *Matern52 {
	return &Matern52{Scale: scale}
}

// Evaluate は (1 + √5 r + 5r²/3) exp(-√5 r) を返します。
func (k *Matern52) Evaluate(x1, x2 Point) (float64, error) {
	r, err := scaledL1("Matern52.Evaluate", x1, x2, k.Scale)
	if err != nil {
		return 0, err
	}
	arg := math.Sqrt(5.0) * r
	return (1.0 + arg + arg*arg/3.0) * math.Exp(-arg), nil
}

func (k *Matern52) String() string {
	return "Matern52(" + scaleString(k.Scale) + ")"
}

// RationalQuadratic は有理二次カーネル (1 + r²/(2α))^(-α) です。
// r² = Σd² はスケールなしのL2距離の二乗で、長さスケールパラメータを持ちません。
type RationalQuadratic struct {
	Alpha float64
}

// NewRationalQuadratic は有理二次カーネルを構築します。
func NewRationalQuadratic(alpha float64) *RationalQuadratic {
	return &RationalQuadratic{Alpha: alpha}
}

// Evaluate は (1 + r²/(2α))^(-α) を返します。α に起因する定義域エラーは
// math.Pow の規約どおり NaN/Inf として伝播します。
func (k *RationalQuadratic) Evaluate(x1, x2 Point) (float64, error) {
	if err := checkSameLen("RationalQuadratic.Evaluate", x1, x2); err != nil {
		return 0, err
	}
	var r2 float64
	for i := range x1 {
		d := x1[i] - x2[i]
		r2 += d * d
	}
	return math.Pow(1.0+0.5*r2/k.Alpha, -k.Alpha), nil
}

func (k *RationalQuadratic) String() string {
	return fmt.Sprintf("RationalQuadratic(%g)", k.Alpha)
}

// ===========================================================================
//
//	共有ヘルパー: 形状検証とスケール付き距離
//
// ===========================================================================

// checkSameLen は2点の次元が一致することを検証します。
func checkSameLen(op string, x1, x2 Point) error {
	if len(x1) != len(x2) {
		return errors.NewShapeMismatchError(op, len(x1), len(x2))
	}
	return nil
}

// checkScale はスケールが空・スカラー・点と同長のいずれかであることを検証します。
func checkScale(op string, scale []float64, dim int) error {
	if len(scale) > 1 && len(scale) != dim {
		return errors.NewShapeMismatchError(op, dim, len(scale))
	}
	return nil
}

// scaleAt はブロードキャスト規約に従い i 番目の成分のスケール値を返します。
func scaleAt(scale []float64, i int) float64 {
	switch len(scale) {
	case 0:
		return 1.0
	case 1:
		return scale[0]
	default:
		return scale[i]
	}
}

// scaledL1 は r = Σ|(x1-x2)/scale| を計算します。
func scaledL1(op string, x1, x2, scale Point) (float64, error) {
	if err := checkSameLen(op, x1, x2); err != nil {
		return 0, err
	}
	if err := checkScale(op, scale, len(x1)); err != nil {
		return 0, err
	}

	var r float64
	for i := range x1 {
		r += math.Abs((x1[i] - x2[i]) / scaleAt(scale, i))
	}
	return r, nil
}

// scaledSqL2 は r² = Σ((x1-x2)/scale)² を計算します。
func scaledSqL2(op string, x1, x2, scale Point) (float64, error) {
	if err := checkSameLen(op, x1, x2); err != nil {
		return 0, err
	}
	if err := checkScale(op, scale, len(x1)); err != nil {
		return 0, err
	}

	var r2 float64
	for i := range x1 {
		d := (x1[i] - x2[i]) / scaleAt(scale, i)
		r2 += d * d
	}
	return r2, nil
}

// scaleString はStringer用にスケールを表示します。
func scaleString(scale []float64) string {
	switch len(scale) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%g", scale[0])
	default:
		return fmt.Sprintf("%v", scale)
	}
}
