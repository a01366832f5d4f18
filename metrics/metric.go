// Package metrics は入力座標の変換（メトリック）を提供します。
//
// メトリックはカーネル評価の前に各入力点へ独立に適用される純粋な写像です。
// 組み込みとして恒等写像 Unit と、次元ごとのスケーリング Diagonal を提供し、
// Resolve が「呼び出し可能 or スケール値」の設定境界を単一のMetricに正規化します。
package metrics

import (
	"math"

	"github.com/tkillestein/tinygp/pkg/errors"
)

// Point は入力空間の1点を表します。スカラー点は長さ1のスライスです。
type Point = []float64

// Metric は1つの入力座標を変換後の座標へ写す純粋な関数です。
// 副作用を持たず、引数のスライスを変更してはいけません。
type Metric func(x Point) Point

// Unit は恒等メトリックです。座標を変換せずそのまま返します。
func Unit(x Point) Point {
	return x
}

// Diagonal は固定の対角スケーリングメトリックを構築します。
// 各成分を対応するスケール値で割ります。スケールが1つだけ与えられた場合は
// 全次元にブロードキャストされます。
//
//	m := metrics.Diagonal(4.5)        // 全成分を4.5で割る
//	m := metrics.Diagonal(1.0, 2.0)   // 成分ごとに割る（2次元点用）
//
// メトリックはエラーを返せないため、スケール長と点の次元が一致しない場合は
// NaN で埋めた点を返します（NaN伝播ポリシー）。
func Diagonal(scale ...float64) Metric {
	// 構築後に呼び出し側がスライスを書き換えても固定のままにする
	s := make([]float64, len(scale))
	copy(s, scale)

	return func(x Point) Point {
		out := make(Point, len(x))
		switch {
		case len(s) == 0:
			copy(out, x)
		case len(s) == 1:
			for i, v := range x {
				out[i] = v / s[0]
			}
		case len(s) == len(x):
			for i, v := range x {
				out[i] = v / s[i]
			}
		default:
			for i := range out {
				out[i] = math.NaN()
			}
		}
		return out
	}
}

// Resolve は設定境界で受け取った値を単一のMetricへ正規化します。
//
//   - nil            → Unit（恒等メトリック）
//   - Metric / func  → そのまま使用
//   - 数値 / スライス → Diagonal による固定スケーリング
//
// それ以外の型は UnsupportedOperandError になります。
func Resolve(v interface{}) (Metric, error) {
	switch m := v.(type) {
	case nil:
		return Unit, nil
	case Metric:
		return m, nil
	case func(Point) Point:
		return m, nil
	case float64:
		return Diagonal(m), nil
	case float32:
		return Diagonal(float64(m)), nil
	case int:
		return Diagonal(float64(m)), nil
	case Point:
		return Diagonal(m...), nil
	default:
		return nil, errors.NewUnsupportedOperandError("metrics.Resolve", v)
	}
}
