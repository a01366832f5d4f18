package kernels

import (
	"fmt"
	"math"
)

// Cosine は余弦カーネル cos(2πr), r = Σ|d/P| です。
type Cosine struct {
	Period []float64
}

// NewCosine は周期 P の余弦カーネルを構築します。引数なしで P = 1 です。
// period は scale と同じブロードキャスト規約に従います。
func NewCosine(period ...float64) *Cosine {
	return &Cosine{Period: period}
}

// Evaluate は cos(2πΣ|d/P|) を返します。
func (k *Cosine) Evaluate(x1, x2 Point) (float64, error) {
	r, err := scaledL1("Cosine.Evaluate", x1, x2, k.Period)
	if err != nil {
		return 0, err
	}
	return math.Cos(2.0 * math.Pi * r), nil
}

func (k *Cosine) String() string {
	return "Cosine(" + scaleString(k.Period) + ")"
}

// ExpSineSquared は準周期カーネル exp(-Γ sin²(πr)), r = Σ|d/P| です。
type ExpSineSquared struct {
	Gamma  float64
	Period []float64
}

// NewExpSineSquared は Γ = gamma、周期 P の準周期カーネルを構築します。
// 引数なしで P = 1 です。
func NewExpSineSquared(gamma float64, period ...float64) *ExpSineSquared {
	return &ExpSineSquared{Gamma: gamma, Period: period}
}

// Evaluate は exp(-Γ sin²(πΣ|d/P|)) を返します。
func (k *ExpSineSquared) Evaluate(x1, x2 Point) (float64, error) {
	r, err := scaledL1("ExpSineSquared.Evaluate", x1, x2, k.Period)
	if err != nil {
		return 0, err
	}
	s := math.Sin(math.Pi * r)
	return math.Exp(-k.Gamma * s * s), nil
}

func (k *ExpSineSquared) String() string {
	return fmt.Sprintf("ExpSineSquared(gamma=%g, period=%s)", k.Gamma, scaleString(k.Period))
}
