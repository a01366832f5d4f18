package kernels

import (
	"fmt"

	"github.com/tkillestein/tinygp/metrics"
	"github.com/tkillestein/tinygp/pkg/errors"
)

// Transform は子カーネルへ渡す前に入力座標へメトリックを適用します。
// 子カーネルの出力には一切手を加えません。
//
// 次の2つは等価です:
//
//	k1, _ := kernels.NewTransform(kernels.NewMatern32(), 4.5)
//	k2 := kernels.NewMatern32(4.5)
type Transform struct {
	Kernel Kernel
	Metric metrics.Metric
}

// NewTransform はメトリック付きカーネルを構築します。metric には以下を渡せます:
//
//   - nil                  → 恒等メトリック
//   - metrics.Metric / 関数 → そのまま使用
//   - 数値 / スライス       → 次元ごとの固定スケーリング（metrics.Diagonal）
//
// それ以外の型は UnsupportedOperandError になります。解決は構築時に一度だけ
// 行われ、以後は単一のメトリックとして保持されます。
func NewTransform(kernel Kernel, metric interface{}) (*Transform, error) {
	m, err := metrics.Resolve(metric)
	if err != nil {
		return nil, err
	}
	return &Transform{Kernel: kernel, Metric: m}, nil
}

// Evaluate は child.Evaluate(metric(x1), metric(x2)) を返します。
func (k *Transform) Evaluate(x1, x2 Point) (float64, error) {
	return k.Kernel.Evaluate(k.Metric(x1), k.Metric(x2))
}

func (k *Transform) String() string {
	return fmt.Sprintf("Transform(%s)", Name(k.Kernel))
}

// Subspace は入力点の一部の次元だけを子カーネルに見せるカーネルです。
// 軸の選択は両方の入力へ同一に適用されます。
type Subspace struct {
	Kernel Kernel
	Axis   []int
}

// NewSubspace は軸選択付きカーネルを構築します。軸を指定しない場合は
// 入力を変更せず委譲します。複数指定した場合は並べ替えや重複も許されます。
//
//	k := kernels.NewSubspace(kernels.NewMatern32(), 1) // 第2成分のみに依存
func NewSubspace(kernel Kernel, axis ...int) *Subspace {
	return &Subspace{Kernel: kernel, Axis: axis}
}

// Evaluate は選択した成分だけからなる点で子カーネルを評価します。
// 範囲外の軸インデックスは評価時に ShapeMismatchError になります。
func (k *Subspace) Evaluate(x1, x2 Point) (float64, error) {
	if len(k.Axis) == 0 {
		return k.Kernel.Evaluate(x1, x2)
	}

	s1, err := selectAxes("Subspace.Evaluate", x1, k.Axis)
	if err != nil {
		return 0, err
	}
	s2, err := selectAxes("Subspace.Evaluate", x2, k.Axis)
	if err != nil {
		return 0, err
	}
	return k.Kernel.Evaluate(s1, s2)
}

func (k *Subspace) String() string {
	if len(k.Axis) == 0 {
		return fmt.Sprintf("Subspace(%s)", Name(k.Kernel))
	}
	return fmt.Sprintf("Subspace(%s, axis=%v)", Name(k.Kernel), k.Axis)
}

func selectAxes(op string, x Point, axis []int) (Point, error) {
	out := make(Point, len(axis))
	for i, a := range axis {
		if a < 0 || a >= len(x) {
			return nil, errors.NewShapeMismatchError(op, a+1, len(x))
		}
		out[i] = x[a]
	}
	return out, nil
}
