// Package minphase implements spec.md §4.M's minimum-phase
// reconstruction: given a magnitude spectrum (or a signal to derive one
// from), produce the unique causal, stable, minimum-phase signal sharing
// that magnitude spectrum via homomorphic cepstral folding.
package minphase

import (
	"vv-dsp/core"
	"vv-dsp/envelope/cepstrum"
	"vv-dsp/spectral/fft"
)

// Reconstruct computes the minimum-phase signal of length n sharing x's
// magnitude spectrum: fold the real cepstrum of x (causal part doubled,
// anticausal part discarded), then re-synthesize via
// exp(FFT(folded cepstrum)) and an inverse transform.
func Reconstruct(out []core.Real, x []core.Real) error {
	n := len(x)
	if n == 0 || len(out) != n {
		return core.NewError("minphase.Reconstruct", core.InvalidSize, nil)
	}
	c := make([]core.Real, n)
	if err := cepstrum.Real(c, x); err != nil {
		return err
	}
	folded := make([]core.Real, n)
	fold(folded, c)

	fwd, err := fft.MakePlan(n, fft.R2C, fft.Forward)
	if err != nil {
		return err
	}
	defer fwd.Destroy()
	bwd, err := fft.MakePlan(n, fft.C2R, fft.Backward)
	if err != nil {
		return err
	}
	defer bwd.Destroy()

	spec := make([]core.Complex, n/2+1)
	if err := fwd.ExecuteR2C(spec, folded); err != nil {
		return err
	}
	for k, v := range spec {
		mag := core.Exp(real(v))
		s, c2 := core.Sincos(imag(v))
		spec[k] = core.Complex(complex(mag*c2, mag*s))
	}
	return bwd.ExecuteC2R(out, spec)
}

// fold applies the standard homomorphic minimum-phase window to a real
// cepstrum c of length n: folded[0] = c[0], folded[k] = 2*c[k] for
// 1 <= k < n/2, folded[n/2] = c[n/2] if n is even (Nyquist bin keeps its
// own weight, unmirrored), and folded[k] = 0 for k > n/2 (the anticausal
// half is discarded entirely).
func fold(folded, c []core.Real) {
	n := len(c)
	folded[0] = c[0]
	half := n / 2
	for k := 1; k < half; k++ {
		folded[k] = 2 * c[k]
	}
	if n%2 == 0 {
		folded[half] = c[half]
	} else if half < n {
		folded[half] = 2 * c[half]
	}
	for k := half + 1; k < n; k++ {
		folded[k] = 0
	}
}
