package fft

import (
	"gonum.org/v1/gonum/fourier"

	"vv-dsp/core"
)

// gonumBackend wraps gonum.org/v1/gonum/fourier's complex-to-complex FFT
// as the optional, potentially-accelerated backend the vtable in spec.md
// §9 anticipates alongside the mandatory reference backend. gonum's
// CmplxFFT only operates on []complex128, so this backend pays a
// conversion cost on the float32 build; that's the documented price of
// using it (DESIGN.md), not a correctness concern since the conversion is
// exact in the direction that matters (complex64 -> complex128 is
// lossless).
type gonumBackend struct{}

func (gonumBackend) id() BackendID   { return BackendGonum }
func (gonumBackend) name() string    { return "gonum" }
func (gonumBackend) available() bool { return true }

func (gonumBackend) makeC2C(n int, dir Direction) (c2cPlan, error) {
	if n <= 0 {
		return nil, core.NewError("fft.gonum.makeC2C", core.InvalidSize, nil)
	}
	return &gonumPlan{
		n:    n,
		dir:  dir,
		fft:  fourier.NewCmplxFFT(n),
		buf:  make([]complex128, n),
		obuf: make([]complex128, n),
	}, nil
}

type gonumPlan struct {
	n    int
	dir  Direction
	fft  *fourier.CmplxFFT
	buf  []complex128
	obuf []complex128
}

func (p *gonumPlan) execute(out, in []core.Complex) error {
	n := p.n
	if len(in) != n || len(out) != n {
		return core.NewError("fft.gonumPlan.execute", core.InvalidSize, nil)
	}
	for i, v := range in {
		p.buf[i] = complex(float64(real(v)), float64(imag(v)))
	}
	var res []complex128
	if p.dir == Forward {
		res = p.fft.Coefficients(p.obuf, p.buf)
	} else {
		// CmplxFFT.Sequence is unnormalized; apply the 1/n backward scale
		// here so this backend follows the same convention as the reference.
		res = p.fft.Sequence(p.obuf, p.buf)
		for i := range res {
			res[i] /= complex(float64(n), 0)
		}
	}
	for i, v := range res {
		out[i] = core.Complex(complex(core.Real(real(v)), core.Real(imag(v))))
	}
	return nil
}

func (p *gonumPlan) close() {}
