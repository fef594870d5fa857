// Package hilbert implements spec.md §4.K: the discrete analytic signal
// via one-sided spectrum doubling, instantaneous phase, and
// instantaneous frequency.
package hilbert

import (
	"vv-dsp/core"
	"vv-dsp/spectral/fft"
)

// Analytic computes the discrete analytic signal of the real input x:
// forward R2C transform, double all positive-frequency bins (1..n/2-1),
// leave DC and (for even n) Nyquist unscaled, zero the negative
// frequencies implicitly by inverse-C2C-transforming only the
// constructed one-sided-doubled full spectrum. out must have length
// len(x).
func Analytic(out []core.Complex, x []core.Real) error {
	n := len(x)
	if n == 0 || len(out) != n {
		return core.NewError("hilbert.Analytic", core.InvalidSize, nil)
	}
	r2c, err := fft.MakePlan(n, fft.R2C, fft.Forward)
	if err != nil {
		return err
	}
	defer r2c.Destroy()
	bwd, err := fft.MakePlan(n, fft.C2C, fft.Backward)
	if err != nil {
		return err
	}
	defer bwd.Destroy()

	half := make([]core.Complex, n/2+1)
	if err := r2c.ExecuteR2C(half, x); err != nil {
		return err
	}

	full := make([]core.Complex, n)
	full[0] = half[0]
	nyquist := n / 2
	for k := 1; k < nyquist; k++ {
		full[k] = half[k] * 2
	}
	if n%2 == 0 {
		full[nyquist] = half[nyquist]
	} else {
		full[nyquist] = half[nyquist] * 2
	}
	// bins (nyquist, n) already zero (positive frequencies only)

	return bwd.ExecuteC2C(out, full)
}

// InstantaneousPhase integrates the analytic signal's conjugate-product
// phase increments into a continuous, unwrapped phase track: phase[0] is
// the raw atan2 of the first sample, and each later sample adds
// angle(z[i]*conj(z[i-1])) rather than taking atan2(Im,Re) directly,
// which is exactly the naive computation that needs an explicit 2*pi
// unwrap afterward. phase must have length len(analytic).
func InstantaneousPhase(phase []core.Real, analytic []core.Complex) error {
	n := len(analytic)
	if n == 0 || len(phase) != n {
		return core.NewError("hilbert.InstantaneousPhase", core.InvalidSize, nil)
	}
	phase[0] = core.Atan2(imag(analytic[0]), real(analytic[0]))
	for i := 1; i < n; i++ {
		prevConj := core.Complex(complex(real(analytic[i-1]), -imag(analytic[i-1])))
		prod := analytic[i] * prevConj
		increment := core.Atan2(imag(prod), real(prod))
		phase[i] = phase[i-1] + increment
	}
	return nil
}

// InstantaneousFrequency differentiates an unwrapped phase track (as
// produced by InstantaneousPhase) and scales by fs/(2*pi) into Hz.
// freq[0] is 0 (no prior sample to difference against). freq must have
// length len(phase).
func InstantaneousFrequency(freq []core.Real, phase []core.Real, fs core.Real) error {
	n := len(phase)
	if n == 0 || len(freq) != n {
		return core.NewError("hilbert.InstantaneousFrequency", core.InvalidSize, nil)
	}
	freq[0] = 0
	scale := fs / (2 * core.Pi)
	for i := 1; i < n; i++ {
		freq[i] = (phase[i] - phase[i-1]) * scale
	}
	return nil
}
