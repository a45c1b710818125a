package encoder

import "math"

// adam carries first/second moment estimates for one flat parameter slice
// each and performs bias-corrected updates. State is private to a single
// Fit call; a fresh optimizer is built per training run.
type adam struct {
	beta1, beta2, eps float64

	m [][]float64 // first moments, one slice per parameter
	v [][]float64 // second moments
	t int         // step counter for bias correction
}

// newAdam allocates zeroed moments shaped like params.
func newAdam(params [][]float64) *adam {
	m := make([][]float64, len(params))
	v := make([][]float64, len(params))
	for i, p := range params {
		m[i] = make([]float64, len(p))
		v[i] = make([]float64, len(p))
	}

	return &adam{beta1: adamBeta1, beta2: adamBeta2, eps: adamEpsilon, m: m, v: v}
}

// step applies one Adam update to every parameter slice in place.
// grads must be shaped exactly like params.
func (a *adam) step(params, grads [][]float64, lr float64) {
	a.t++
	bias1 := 1 - math.Pow(a.beta1, float64(a.t))
	bias2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, p := range params {
		g := grads[i]
		for j := range p {
			a.m[i][j] = a.beta1*a.m[i][j] + (1-a.beta1)*g[j]
			a.v[i][j] = a.beta2*a.v[i][j] + (1-a.beta2)*g[j]*g[j]

			mHat := a.m[i][j] / bias1
			vHat := a.v[i][j] / bias2

			p[j] -= lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}
