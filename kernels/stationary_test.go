package kernels

import (
	"math"
	"testing"

	"github.com/tkillestein/tinygp/pkg/errors"
)

const tol = 1e-12

// stationaryKernels は自己類似度が1になる定常カーネル一式（単位パラメータ）
func stationaryKernels() map[string]Kernel {
	return map[string]Kernel{
		"Exp":               NewExp(),
		"ExpSquared":        NewExpSquared(),
		"Matern32":          NewMatern32(),
		"Matern52":          NewMatern52(),
		"RationalQuadratic": NewRationalQuadratic(1.5),
	}
}

func TestStationaryKernelsUnitSelfSimilarity(t *testing.T) {
	points := []Point{
		{0.0},
		{3.75},
		{-1.0, 2.0, 0.5},
	}

	for name, k := range stationaryKernels() {
		for _, x := range points {
			got, err := k.Evaluate(x, x)
			if err != nil {
				t.Fatalf("%s.Evaluate(x, x) error: %v", name, err)
			}
			if math.Abs(got-1.0) > tol {
				t.Errorf("%s.Evaluate(x, x) = %v, want 1.0", name, got)
			}
		}
	}
}

func TestLeafKernelSymmetry(t *testing.T) {
	leaves := map[string]Kernel{
		"Constant":          NewConstant(2.5),
		"DotProduct":        NewDotProduct(),
		"Polynomial":        NewPolynomial(2, WithScale(1.5), WithSigma(0.3)),
		"Exp":               NewExp(0.7),
		"ExpSquared":        NewExpSquared(0.7),
		"Matern32":          NewMatern32(0.7),
		"Matern52":          NewMatern52(0.7),
		"Cosine":            NewCosine(2.3),
		"ExpSineSquared":    NewExpSineSquared(1.2, 2.3),
		"RationalQuadratic": NewRationalQuadratic(0.8),
	}

	a := Point{0.5, -1.25, 3.0}
	b := Point{-0.4, 0.7, 1.1}

	for name, k := range leaves {
		ab, err := k.Evaluate(a, b)
		if err != nil {
			t.Fatalf("%s.Evaluate(a, b) error: %v", name, err)
		}
		ba, err := k.Evaluate(b, a)
		if err != nil {
			t.Fatalf("%s.Evaluate(b, a) error: %v", name, err)
		}
		if math.Abs(ab-ba) > tol {
			t.Errorf("%s is not symmetric: k(a,b)=%v, k(b,a)=%v", name, ab, ba)
		}
	}
}

func TestExpSquaredKnownValue(t *testing.T) {
	// k(0, 2) = exp(-2²/2) = exp(-2)
	k := NewExpSquared(1.0)
	got, err := k.Evaluate(Point{0.0}, Point{2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Exp(-2.0)
	if math.Abs(got-want) > tol {
		t.Errorf("ExpSquared(1).Evaluate(0, 2) = %v, want %v", got, want)
	}
}

func TestStationaryFormulas(t *testing.T) {
	x1 := Point{0.5}
	x2 := Point{0.1}
	r := 0.4

	tests := []struct {
		name string
		k    Kernel
		want float64
	}{
		{"Exp", NewExp(), math.Exp(-r)},
		{"ExpSquared", NewExpSquared(), math.Exp(-0.5 * r * r)},
		{"Matern32", NewMatern32(), (1 + math.Sqrt(3)*r) * math.Exp(-math.Sqrt(3)*r)},
		{"Matern52", NewMatern52(), (1 + math.Sqrt(5)*r + 5*r*r/3) * math.Exp(-math.Sqrt(5)*r)},
		{"RationalQuadratic", NewRationalQuadratic(2.0), math.Pow(1+0.5*r*r/2.0, -2.0)},
		{"Cosine", NewCosine(), math.Cos(2 * math.Pi * r)},
		{"ExpSineSquared", NewExpSineSquared(1.5), math.Exp(-1.5 * math.Pow(math.Sin(math.Pi*r), 2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.k.Evaluate(x1, x2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tol {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerDimensionScale(t *testing.T) {
	// 次元ごとのスケールはスカラーのスケールで割った座標と等価
	k1 := NewMatern32(2.0, 4.0)
	k2 := NewMatern32()

	x1 := Point{1.0, 2.0}
	x2 := Point{3.0, -2.0}

	got, err := k1.Evaluate(x1, x2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := k2.Evaluate(Point{1.0 / 2.0, 2.0 / 4.0}, Point{3.0 / 2.0, -2.0 / 4.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > tol {
		t.Errorf("per-dimension scale: got %v, want %v", got, want)
	}
}

func TestScaleShapeMismatch(t *testing.T) {
	// 3成分のスケール vs 2次元の点 → 評価時にShapeMismatchError
	k := NewExpSquared(1.0, 2.0, 3.0)
	_, err := k.Evaluate(Point{1.0, 2.0}, Point{3.0, 4.0})
	if err == nil {
		t.Fatal("expected shape mismatch error, got nil")
	}

	var sme *errors.ShapeMismatchError
	if !errors.As(err, &sme) {
		t.Errorf("got %T, want ShapeMismatchError", err)
	}
}

func TestPointShapeMismatch(t *testing.T) {
	k := NewMatern52()
	_, err := k.Evaluate(Point{1.0, 2.0}, Point{3.0})
	if err == nil {
		t.Fatal("expected shape mismatch error, got nil")
	}

	var sme *errors.ShapeMismatchError
	if !errors.As(err, &sme) {
		t.Errorf("got %T, want ShapeMismatchError", err)
	}
	if sme.Expected != 2 || sme.Got != 1 {
		t.Errorf("unexpected fields: %+v", sme)
	}
}

func TestDomainErrorsPropagateAsNaN(t *testing.T) {
	// 負の基数の非整数乗はエラーではなくNaNになる（全域関数ポリシー）
	k := NewRationalQuadratic(-0.5)
	got, err := k.Evaluate(Point{0.0}, Point{10.0})
	if err != nil {
		t.Fatalf("domain errors must not raise: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}

	// ゼロスケールでの除算もInf/NaNとして伝播する
	zero := NewExp(0.0)
	got, err = zero.Evaluate(Point{0.0}, Point{1.0})
	if err != nil {
		t.Fatalf("zero scale must not raise: %v", err)
	}
	if got != 0.0 {
		// exp(-Inf) = 0
		t.Errorf("Exp with zero scale: got %v, want 0", got)
	}
}
