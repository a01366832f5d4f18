package kernels

import (
	"math"
	"testing"

	"github.com/tkillestein/tinygp/pkg/errors"
)

func TestConstantIgnoresInputs(t *testing.T) {
	k := NewConstant(3.25)

	inputs := []struct{ x1, x2 Point }{
		{Point{0.0}, Point{0.0}},
		{Point{1.0, -2.0}, Point{100.0, 42.0}},
	}
	for _, in := range inputs {
		got, err := k.Evaluate(in.x1, in.x2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 3.25 {
			t.Errorf("Constant.Evaluate(%v, %v) = %v, want 3.25", in.x1, in.x2, got)
		}
	}
}

func TestDotProduct(t *testing.T) {
	k := NewDotProduct()

	got, err := k.Evaluate(Point{1.0, 2.0}, Point{3.0, 4.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-11.0) > tol {
		t.Errorf("got %v, want 11.0", got)
	}

	if _, err := k.Evaluate(Point{1.0, 2.0}, Point{1.0}); err == nil {
		t.Error("expected shape mismatch error for different point lengths")
	}
}

func TestConstantTimesDotProduct(t *testing.T) {
	// 2 * (1*3 + 2*4) == 22
	k, err := Mul(NewConstant(2.0), NewDotProduct())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := k.Evaluate(Point{1.0, 2.0}, Point{3.0, 4.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-22.0) > tol {
		t.Errorf("got %v, want 22.0", got)
	}
}

func TestPolynomial(t *testing.T) {
	tests := []struct {
		name string
		k    *Polynomial
		x1   Point
		x2   Point
		want float64
	}{
		{
			name: "defaults: unit scale, zero sigma",
			k:    NewPolynomial(2),
			x1:   Point{1.0, 2.0},
			x2:   Point{3.0, 4.0},
			want: 121.0, // (1*3 + 2*4)²
		},
		{
			name: "with scale and sigma",
			k:    NewPolynomial(3, WithScale(2.0), WithSigma(0.5)),
			x1:   Point{2.0},
			x2:   Point{4.0},
			want: math.Pow((2.0/2.0)*(4.0/2.0)+0.25, 3),
		},
		{
			name: "order one is affine dot product",
			k:    NewPolynomial(1, WithSigma(1.0)),
			x1:   Point{1.0, 1.0},
			x2:   Point{2.0, 3.0},
			want: 6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.k.Evaluate(tt.x1, tt.x2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tol {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolynomialSigmaStoredSquared(t *testing.T) {
	k := NewPolynomial(1, WithSigma(3.0))
	if math.Abs(k.Sigma2-9.0) > tol {
		t.Errorf("Sigma2 = %v, want 9.0", k.Sigma2)
	}
}

func TestPolynomialNegativeBaseFractionalOrderIsNaN(t *testing.T) {
	// 基数 (dot + σ²) が負で次数が非整数ならNaNが伝播する
	k := NewPolynomial(0.5)
	got, err := k.Evaluate(Point{1.0}, Point{-2.0})
	if err != nil {
		t.Fatalf("domain errors must not raise: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
}

func TestCustomKernel(t *testing.T) {
	k := NewCustom(func(x1, x2 Point) (float64, error) {
		return x1[0] * x2[0], nil
	})

	got, err := k.Evaluate(Point{3.0}, Point{4.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12.0 {
		t.Errorf("got %v, want 12.0", got)
	}
}

func TestCustomWithoutFunctionIsNotImplemented(t *testing.T) {
	k := NewCustom(nil)
	_, err := k.Evaluate(Point{1.0}, Point{1.0})
	if err == nil {
		t.Fatal("expected not-implemented error, got nil")
	}

	var nie *errors.NotImplementedError
	if !errors.As(err, &nie) {
		t.Errorf("got %T, want NotImplementedError", err)
	}
}

func TestBaseEvaluateIsNotImplemented(t *testing.T) {
	// 抽象基底を直接呼び出すのはプログラミングエラー
	var k Base
	_, err := k.Evaluate(Point{1.0}, Point{1.0})
	if err == nil {
		t.Fatal("expected not-implemented error, got nil")
	}

	var nie *errors.NotImplementedError
	if !errors.As(err, &nie) {
		t.Errorf("got %T, want NotImplementedError", err)
	}
}
