package kernels

import (
	"fmt"

	"github.com/tkillestein/tinygp/pkg/errors"
)

// Sum は2つの子カーネルのポイントワイズな和です。
type Sum struct {
	Left  Kernel
	Right Kernel
}

// NewSum は2つのカーネルの和を構築します。オペランドは変更されません。
func NewSum(left, right Kernel) *Sum {
	return &Sum{Left: left, Right: right}
}

// Evaluate は left.Evaluate + right.Evaluate を返します。
func (k *Sum) Evaluate(x1, x2 Point) (float64, error) {
	a, err := k.Left.Evaluate(x1, x2)
	if err != nil {
		return 0, err
	}
	b, err := k.Right.Evaluate(x1, x2)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func (k *Sum) String() string {
	return fmt.Sprintf("Sum(%s, %s)", Name(k.Left), Name(k.Right))
}

// Product は2つの子カーネルのポイントワイズな積です。
type Product struct {
	Left  Kernel
	Right Kernel
}

// NewProduct は2つのカーネルの積を構築します。オペランドは変更されません。
func NewProduct(left, right Kernel) *Product {
	return &Product{Left: left, Right: right}
}

// Evaluate は left.Evaluate * right.Evaluate を返します。
func (k *Product) Evaluate(x1, x2 Point) (float64, error) {
	a, err := k.Left.Evaluate(x1, x2)
	if err != nil {
		return 0, err
	}
	b, err := k.Right.Evaluate(x1, x2)
	if err != nil {
		return 0, err
	}
	return a * b, nil
}

func (k *Product) String() string {
	return fmt.Sprintf("Product(%s, %s)", Name(k.Left), Name(k.Right))
}

// Add はカーネル同士、またはカーネルと数値の和を構築します。
// 数値オペランドは Constant カーネルへ持ち上げられます。オペランドの順序は
// そのまま保存されるため、Add(3, k) と Add(k, 3) はそれぞれ左右が異なる
// Sum を返します。カーネルでも数値でもないオペランドは合成時に
// UnsupportedOperandError になります。
//
//	k, err := kernels.Add(kernels.NewMatern32(), 0.1)
func Add(left, right interface{}) (Kernel, error) {
	l, err := asKernel("Add", left)
	if err != nil {
		return nil, err
	}
	r, err := asKernel("Add", right)
	if err != nil {
		return nil, err
	}
	return NewSum(l, r), nil
}

// Mul はカーネル同士、またはカーネルと数値の積を構築します。
// 数値の持ち上げとエラー方針は Add と同じです。
func Mul(left, right interface{}) (Kernel, error) {
	l, err := asKernel("Mul", left)
	if err != nil {
		return nil, err
	}
	r, err := asKernel("Mul", right)
	if err != nil {
		return nil, err
	}
	return NewProduct(l, r), nil
}

// asKernel はオペランドをKernelへ正規化します。数値はConstantに持ち上げます。
func asKernel(op string, v interface{}) (Kernel, error) {
	switch o := v.(type) {
	case Kernel:
		return o, nil
	case float64:
		return NewConstant(o), nil
	case float32:
		return NewConstant(float64(o)), nil
	case int:
		return NewConstant(float64(o)), nil
	default:
		return nil, errors.NewUnsupportedOperandError("kernels."+op, v)
	}
}
