// Package dct implements spec.md §4.O: DCT-II, DCT-III (its inverse) and
// DCT-IV with 2/N-style orthogonal scaling.
//
// Forward2 is computed via FFT-of-extended-sequence, the approach
// algo-pde's r2r.DCT2Plan.Forward
// (_examples/MeKo-Christian-algo-pde/r2r/dct.go) uses: embed the N-point
// signal into an even-symmetric 2N-point sequence, FFT it, and multiply
// by a phase ramp to fold the result back to N real coefficients.
// Inverse3 and Forward4/Inverse4 follow that same file's own choice for
// its inverse transform: a direct weighted-sum evaluation rather than a
// second FFT, since DCT-II's inverse has no equally direct
// even-symmetric-extension reduction and the teacher itself does not
// bother deriving one.
package dct

import (
	"vv-dsp/core"
	"vv-dsp/spectral/fft"
)

// Forward2 computes the (unnormalized) DCT-II of src into dst:
// dst[k] = sum_n src[n] * cos(pi*(n+0.5)*k/N), for k=0..N-1, via a
// 2N-point real FFT of the even-symmetric extension of src.
func Forward2(dst, src []core.Real) error {
	n := len(src)
	if n == 0 || len(dst) != n {
		return core.NewError("dct.Forward2", core.InvalidSize, nil)
	}
	extN := 2 * n
	ext := make([]core.Real, extN)
	for i := 0; i < n; i++ {
		ext[i] = src[i]
		ext[extN-1-i] = src[i]
	}
	p, err := fft.MakePlan(extN, fft.R2C, fft.Forward)
	if err != nil {
		return err
	}
	defer p.Destroy()
	spec := make([]core.Complex, extN/2+1)
	if err := p.ExecuteR2C(spec, ext); err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		theta := -core.Pi * core.Real(k) / core.Real(extN)
		s, c := core.Sincos(theta)
		phase := core.Complex(complex(c, s))
		shifted := spec[k] * phase
		dst[k] = real(shifted) / 2
	}
	return nil
}

// Inverse3 computes the DCT-III of src into dst (the un-normalized
// inverse of Forward2, up to the standard 2/N scaling):
// dst[n] = src[0]/2 + sum_{k=1}^{N-1} src[k]*cos(pi*(n+0.5)*k/N), scaled
// by 2/N so that Inverse3(Forward2(x)) == x.
func Inverse3(dst, src []core.Real) error {
	n := len(src)
	if n == 0 || len(dst) != n {
		return core.NewError("dct.Inverse3", core.InvalidSize, nil)
	}
	scale := core.Real(2) / core.Real(n)
	for i := 0; i < n; i++ {
		sum := src[0] / 2
		for k := 1; k < n; k++ {
			sum += src[k] * core.Cos(core.Pi*(core.Real(i)+0.5)*core.Real(k)/core.Real(n))
		}
		dst[i] = sum * scale
	}
	return nil
}

// Forward4 computes the DCT-IV of src into dst:
// dst[k] = sum_n src[n] * cos(pi*(n+0.5)*(k+0.5)/N). DCT-IV is its own
// inverse up to the 2/N scale, so Inverse4 is Forward4 composed with
// that scale factor.
func Forward4(dst, src []core.Real) error {
	n := len(src)
	if n == 0 || len(dst) != n {
		return core.NewError("dct.Forward4", core.InvalidSize, nil)
	}
	for k := 0; k < n; k++ {
		var sum core.Real
		for i := 0; i < n; i++ {
			sum += src[i] * core.Cos(core.Pi*(core.Real(i)+0.5)*(core.Real(k)+0.5)/core.Real(n))
		}
		dst[k] = sum
	}
	return nil
}

// Inverse4 computes the inverse DCT-IV: Forward4 scaled by 2/N.
func Inverse4(dst, src []core.Real) error {
	n := len(src)
	if err := Forward4(dst, src); err != nil {
		return err
	}
	scale := core.Real(2) / core.Real(n)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}
