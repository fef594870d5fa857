// Package czt implements spec.md §4.L: the chirp-z transform via
// Bluestein's algorithm, evaluating the z-transform at m points along
// a spiral a * w^-k starting at a, and a convenience helper to derive
// Bluestein parameters for sampling an arbitrary frequency range.
package czt

import (
	"vv-dsp/core"
	"vv-dsp/spectral/fft"
)

// Params configures one chirp-z transform: m output points, starting
// point a = a0 * exp(i*2*pi*theta0), and per-step ratio
// w = w0 * exp(-i*2*pi*phi0) (the standard Bluestein parameterization;
// spec.md §4.L pins a0=w0=1, leaving theta0/phi0 free).
type Params struct {
	M      int
	Theta0 core.Real // starting angle, cycles (not radians)
	Phi0   core.Real // angle step per output bin, cycles
}

// ParamsForFreqRange derives Params that sample m points of an n-sample
// signal's spectrum linearly between normalized frequencies f0 and f1
// (cycles/sample, typically in [0,0.5]), per spec.md §4.L.
func ParamsForFreqRange(n, m int, f0, f1 core.Real) Params {
	step := core.Real(0)
	if m > 1 {
		step = (f1 - f0) / core.Real(m-1)
	}
	return Params{M: m, Theta0: f0, Phi0: step}
}

// Transform evaluates the chirp-z transform of x (length n) at p.M
// points via Bluestein's algorithm: pad the chirped input/kernel to a
// convolution-safe FFT size, multiply spectra, and de-chirp the result.
// out must have length p.M.
func Transform(out []core.Complex, x []core.Real, p Params) error {
	n := len(x)
	if n == 0 || p.M <= 0 || len(out) != p.M {
		return core.NewError("czt.Transform", core.InvalidSize, nil)
	}
	m := p.M
	l := nextPowerOfTwo(n + m - 1)

	// a[k] = x[k] * exp(-i*2*pi*(theta0*k + phi0*k^2/2))
	aSeq := make([]core.Complex, l)
	for k := 0; k < n; k++ {
		ang := p.Theta0*core.Real(k) + p.Phi0*core.Real(k*k)/2
		aSeq[k] = unitPhase(-ang) * core.Complex(complex(x[k], 0))
	}

	// b[k] = exp(+i*2*pi*phi0*k^2/2), the chirp kernel, wrapped both
	// forward (indices 0..m-1) and backward (indices l-n+1..l-1) so the
	// cyclic convolution reproduces the required linear one.
	bSeq := make([]core.Complex, l)
	maxIdx := n - 1
	if m-1 > maxIdx {
		maxIdx = m - 1
	}
	chirpTable := make([]core.Complex, maxIdx+1)
	for k := 0; k <= maxIdx; k++ {
		chirpTable[k] = unitPhase(p.Phi0 * core.Real(k*k) / 2)
	}
	for k := 0; k < m; k++ {
		bSeq[k] = chirpTable[k]
	}
	for k := 1; k < n; k++ {
		bSeq[l-k] = chirpTable[k]
	}

	fwd, err := fft.MakePlan(l, fft.C2C, fft.Forward)
	if err != nil {
		return err
	}
	defer fwd.Destroy()
	bwd, err := fft.MakePlan(l, fft.C2C, fft.Backward)
	if err != nil {
		return err
	}
	defer bwd.Destroy()

	aSpec := make([]core.Complex, l)
	bSpec := make([]core.Complex, l)
	if err := fwd.ExecuteC2C(aSpec, aSeq); err != nil {
		return err
	}
	if err := fwd.ExecuteC2C(bSpec, bSeq); err != nil {
		return err
	}
	prod := make([]core.Complex, l)
	for i := range prod {
		prod[i] = aSpec[i] * bSpec[i]
	}
	conv := make([]core.Complex, l)
	if err := bwd.ExecuteC2C(conv, prod); err != nil {
		return err
	}

	for k := 0; k < m; k++ {
		ang := p.Phi0 * core.Real(k*k) / 2
		out[k] = conv[k] * unitPhase(-ang)
	}
	return nil
}

func unitPhase(cycles core.Real) core.Complex {
	s, c := core.Sincos(2 * core.Pi * cycles)
	return core.Complex(complex(c, s))
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
