// Package kernels はガウス過程の共分散関数（カーネル）の合成可能な代数を提供します。
//
// カーネルは2点間の類似度を測る純粋でパラメトリックな関数 k(x1, x2) -> scalar です。
// 葉カーネル（Constant, DotProduct, Matern32 など）を Add / Mul / Transform /
// Subspace で組み合わせて式木を構築し、Apply / Diagonal でバッチ評価します。
//
//	k, _ := kernels.Add(kernels.NewMatern32(1.5), 0.1)
//	K, _ := kernels.Apply(k, X, X) // 完全なペアワイズ共分散行列
//	d, _ := kernels.Diagonal(k, X) // 対角のみ、O(n)
package kernels

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/tkillestein/tinygp/core/parallel"
	"github.com/tkillestein/tinygp/metrics"
	"github.com/tkillestein/tinygp/pkg/errors"
)

// Point は入力空間の1点を表します。スカラー点は長さ1のスライスです。
type Point = metrics.Point

// Kernel は全てのカーネルが実装する単一ペア評価の契約です。
//
// Evaluate は x1 / x2 を（バッチではなく）単一の点として扱い、決定的かつ
// 副作用なしでスカラーを返さなければなりません。組み込みの葉カーネルは
// すべて対称です: Evaluate(a, b) == Evaluate(b, a)。
// バッチ評価は Apply / Diagonal が Evaluate の繰り返し呼び出しへ還元します。
type Kernel interface {
	Evaluate(x1, x2 Point) (float64, error)
}

// Base はユーザー定義カーネルが埋め込むための基底です。
// Evaluate をオーバーライドしない限り NotImplementedError を返します。
type Base struct{}

// Evaluate は抽象基底の呼び出しを未実装エラーとして報告します。
func (Base) Evaluate(_, _ Point) (float64, error) {
	return 0, errors.NewNotImplementedError("Base", "Evaluate")
}

// Name はログやエラーメッセージ用にカーネルの表示名を返します。
func Name(k Kernel) string {
	if s, ok := k.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", k)
}

// 並列化の閾値。これ以下の行数では逐次処理を使用する。
const parallelThreshold = 64

// Apply はカーネルを2つの点集合のクロス積上で評価し、(r1, r2) の
// ペアワイズ共分散行列を返します。X1 / X2 の各行が1点です。
// 出力の [i, j] 要素は Evaluate(X1の i 行, X2の j 行) に等しく、
// 行は X1 のインデックス順、列は X2 のインデックス順です。
//
// 各ポイントワイズ評価は互いに独立なため、行単位で並列に計算されます。
func Apply(k Kernel, X1, X2 mat.Matrix) (*mat.Dense, error) {
	r1, c1 := X1.Dims()
	r2, c2 := X2.Dims()

	if r1 == 0 || r2 == 0 {
		return nil, errors.NewValueError("kernels.Apply", "empty input matrix")
	}
	if c1 != c2 {
		return nil, errors.NewShapeMismatchError("kernels.Apply", c1, c2)
	}

	out := mat.NewDense(r1, r2, nil)

	var (
		errMu    sync.Mutex
		firstErr error
	)
	parallel.ParallelizeWithThreshold(r1, parallelThreshold, func(start, end int) {
		x1 := make(Point, c1)
		x2 := make(Point, c2)
		for i := start; i < end; i++ {
			mat.Row(x1, i, X1)
			for j := 0; j < r2; j++ {
				mat.Row(x2, j, X2)
				v, err := k.Evaluate(x1, x2)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = errors.Wrapf(err, "kernels.Apply: entry (%d, %d)", i, j)
					}
					errMu.Unlock()
					return
				}
				out.Set(i, j, v)
			}
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

// Diagonal は各点の自己類似度 Evaluate(X[i], X[i]) のみを計算して長さ n の
// ベクトルを返します。完全な行列を経由しない専用の高速パスで、コストは
// O(n) 回のポイントワイズ評価です。
func Diagonal(k Kernel, X mat.Matrix) (*mat.VecDense, error) {
	n, c := X.Dims()
	if n == 0 {
		return nil, errors.NewValueError("kernels.Diagonal", "empty input matrix")
	}

	out := mat.NewVecDense(n, nil)

	var (
		errMu    sync.Mutex
		firstErr error
	)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		x := make(Point, c)
		for i := start; i < end; i++ {
			mat.Row(x, i, X)
			v, err := k.Evaluate(x, x)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = errors.Wrapf(err, "kernels.Diagonal: entry %d", i)
				}
				errMu.Unlock()
				return
			}
			out.SetVec(i, v)
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
