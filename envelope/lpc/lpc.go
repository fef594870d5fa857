// Package lpc implements spec.md §4.M's linear predictive coding:
// autocorrelation estimation, Levinson-Durbin recursion (not Burg's
// method — spec.md pins the autocorrelation/Levinson-Durbin pairing for
// reproducibility), and LPC spectral envelope evaluation.
package lpc

import (
	"vv-dsp/core"
)

// Autocorrelate fills r (length order+1) with the biased autocorrelation
// estimate of x: r[k] = sum_n x[n]*x[n+k] for k=0..order.
func Autocorrelate(r []core.Real, x []core.Real, order int) error {
	if order < 0 || len(r) != order+1 {
		return core.NewError("lpc.Autocorrelate", core.InvalidSize, nil)
	}
	n := len(x)
	for k := 0; k <= order; k++ {
		var sum core.Real
		for i := 0; i < n-k; i++ {
			sum += x[i] * x[i+k]
		}
		r[k] = sum
	}
	return nil
}

// Result holds the outcome of Levinson-Durbin recursion: a[0]=1 is
// implicit, a[1..order] are the prediction coefficients such that
// x[n] ~= -sum_{k=1}^{order} a[k]*x[n-k]; reflection holds the
// per-stage reflection (PARCOR) coefficients, and error the final
// prediction error energy.
type Result struct {
	A            []core.Real // length order+1, A[0]==1
	Reflection   []core.Real // length order
	ErrorEnergy  core.Real
}

// LevinsonDurbin solves the Yule-Walker equations for autocorrelation r
// (length order+1) via the Levinson-Durbin recursion. Returns
// Unsupported-free results even for a singular (all-zero) input: the
// degenerate case order-0-equivalent is reported via ErrorEnergy == 0,
// not an error.
func LevinsonDurbin(r []core.Real, order int) (*Result, error) {
	if order < 0 || len(r) != order+1 {
		return nil, core.NewError("lpc.LevinsonDurbin", core.InvalidSize, nil)
	}
	res := &Result{
		A:          make([]core.Real, order+1),
		Reflection: make([]core.Real, order),
	}
	res.A[0] = 1
	errEnergy := r[0]
	if errEnergy == 0 {
		return res, nil
	}
	prevA := make([]core.Real, order+1)
	for i := 1; i <= order; i++ {
		var acc core.Real
		for j := 1; j < i; j++ {
			acc += res.A[j] * r[i-j]
		}
		k := -(r[i] + acc) / errEnergy
		res.Reflection[i-1] = k

		copy(prevA, res.A)
		for j := 1; j < i; j++ {
			res.A[j] = prevA[j] + k*prevA[i-j]
		}
		res.A[i] = k

		errEnergy *= 1 - k*k
		if errEnergy <= 0 {
			errEnergy = 1e-12
		}
	}
	res.ErrorEnergy = errEnergy
	return res, nil
}

// Spectrum evaluates the LPC all-pole spectral envelope
// |1 / A(e^{i*2*pi*f})|^2 * gain at len(out) linearly spaced normalized
// frequencies f in [0, 0.5], where gain is the prediction error energy
// (so the envelope matches the input signal's power spectral density up
// to the model order).
func Spectrum(out []core.Real, r *Result) error {
	n := len(out)
	if n == 0 {
		return core.NewError("lpc.Spectrum", core.InvalidSize, nil)
	}
	order := len(r.A) - 1
	for k := 0; k < n; k++ {
		f := 0.5 * core.Real(k) / core.Real(n-1)
		if n == 1 {
			f = 0
		}
		var reSum, imSum core.Real = 1, 0
		for j := 1; j <= order; j++ {
			theta := -2 * core.Pi * f * core.Real(j)
			s, c := core.Sincos(theta)
			reSum += r.A[j] * c
			imSum += r.A[j] * s
		}
		denom := reSum*reSum + imSum*imSum
		if denom < 1e-20 {
			denom = 1e-20
		}
		out[k] = r.ErrorEnergy / denom
	}
	return nil
}
