package solver

import "math"

// weights are the per-iteration factors of a schedule. Cumulative values are
// scaled by the discount before the new contribution is added.
type weights struct {
	positive float64
	negative float64
	strategy float64

	regretScale   float64
	strategyScale float64
	clip          bool
}

// weightsFor returns the factors applied during iteration t, counted from 1.
func (s Schedule) weightsFor(t int) weights {
	w := weights{positive: 1, negative: 1, strategy: 1, regretScale: 1, strategyScale: 1}
	ft := float64(t)
	switch s.Kind {
	case RegretMatchingPlus:
		w.clip = true
		w.strategyScale = ft
	case Linear:
		w.regretScale = ft
		w.strategyScale = ft
	case Discounted:
		prev := ft - 1
		w.positive = discount(prev, s.Alpha)
		w.negative = discount(prev, s.Beta)
		w.strategy = math.Pow(prev/ft, s.Gamma)
	}
	return w
}

// discount is t^e / (t^e + 1).
func discount(t, e float64) float64 {
	p := math.Pow(t, e)
	return p / (p + 1)
}

func (w weights) regret(old float32, inst float64) float32 {
	acc := float64(old)
	if acc > 0 {
		acc *= w.positive
	} else {
		acc *= w.negative
	}
	acc += w.regretScale * inst
	if w.clip && acc < 0 {
		acc = 0
	}
	return float32(acc)
}

func (w weights) strategySum(old float32, add float64) float32 {
	return float32(float64(old)*w.strategy + w.strategyScale*add)
}
