// Package cepstrum implements spec.md §4.M's real cepstrum: the inverse
// transform of the log-magnitude spectrum, used as the basis for
// minimum-phase reconstruction (envelope/minphase) and spectral envelope
// smoothing.
package cepstrum

import (
	"vv-dsp/core"
	"vv-dsp/spectral/fft"
)

// Real computes the real cepstrum of x (length n, a power of two is not
// required): c = IFFT(log(|FFT(x)| + eps)).real. eps guards against
// log(0) on exact spectral nulls; spec.md §4.M fixes it at 1e-9 so the
// floor is negligible for any signal with real dynamic range.
const epsilon = core.Real(1e-9)

func Real(c []core.Real, x []core.Real) error {
	n := len(x)
	if n == 0 || len(c) != n {
		return core.NewError("cepstrum.Real", core.InvalidSize, nil)
	}
	r2c, err := fft.MakePlan(n, fft.R2C, fft.Forward)
	if err != nil {
		return err
	}
	defer r2c.Destroy()
	bwd, err := fft.MakePlan(n, fft.C2R, fft.Backward)
	if err != nil {
		return err
	}
	defer bwd.Destroy()

	half := make([]core.Complex, n/2+1)
	if err := r2c.ExecuteR2C(half, x); err != nil {
		return err
	}
	logMag := make([]core.Complex, n/2+1)
	for k, v := range half {
		mag := core.Hypot(real(v), imag(v))
		logMag[k] = core.Complex(complex(core.Log(mag+epsilon), 0))
	}
	return bwd.ExecuteC2R(c, logMag)
}
