// Package window generates the symmetric window coefficient tables
// specified in spec.md §4.C: every window is normalized to peak 1.0, has
// length N, and satisfies w[n] = w[N-1-n]. Kaiser/Tukey/Planck-taper take
// a shape parameter; all others are parameter-free.
package window

import "vv-dsp/core"

// Kind enumerates the supported window shapes.
type Kind int

const (
	Rectangular Kind = iota
	Hann
	Hamming
	Blackman
	BlackmanHarris
	Nuttall
	Bartlett
	Bohman
	Cosine
	Flattop
	Kaiser
	Tukey
	Planck
)

// Generate fills out (length N = len(out)) with the coefficients for
// kind. param is the shape parameter for Kaiser (beta), Tukey (alpha,
// clamped to [0,1]) and Planck (epsilon, 0 means "use the 0.1 default").
// Unknown kinds return a Status OutOfRange error.
func Generate(out []core.Real, kind Kind, param core.Real) error {
	n := len(out)
	if n == 0 {
		return core.NewError("window.Generate", core.InvalidSize, nil)
	}
	if n == 1 {
		out[0] = 1
		return nil
	}

	switch kind {
	case Rectangular:
		for i := range out {
			out[i] = 1
		}
	case Hann:
		generalizedCosine(out, [2]core.Real{0.5, 0.5})
	case Hamming:
		generalizedCosine(out, [2]core.Real{0.54, 0.46})
	case Blackman:
		generalizedCosine3(out, [3]core.Real{0.42, 0.5, 0.08})
	case BlackmanHarris:
		generalizedCosine4(out, [4]core.Real{0.35875, 0.48829, 0.14128, 0.01168})
	case Nuttall:
		generalizedCosine4(out, [4]core.Real{0.355768, 0.487396, 0.144232, 0.012604})
	case Bartlett:
		bartlett(out)
	case Bohman:
		bohman(out)
	case Cosine:
		cosineWindow(out)
	case Flattop:
		generalizedCosine5(out, [5]core.Real{0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368})
	case Kaiser:
		kaiser(out, param)
	case Tukey:
		tukey(out, param)
	case Planck:
		eps := param
		if eps <= 0 {
			eps = 0.1
		}
		planckTaper(out, eps)
	default:
		return core.NewError("window.Generate", core.OutOfRange, nil)
	}
	return nil
}

// generalizedCosine evaluates a0 - a1*cos(2*pi*n/(N-1)), the shape shared
// by Hann and Hamming.
func generalizedCosine(out []core.Real, a [2]core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		phase := 2 * core.Pi * core.Real(i) / denom
		out[i] = a[0] - a[1]*core.Cos(phase)
	}
}

func generalizedCosine3(out []core.Real, a [3]core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		x := core.Real(i) / denom
		out[i] = a[0] - a[1]*core.Cos(2*core.Pi*x) + a[2]*core.Cos(4*core.Pi*x)
	}
}

func generalizedCosine4(out []core.Real, a [4]core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		x := core.Real(i) / denom
		out[i] = a[0] - a[1]*core.Cos(2*core.Pi*x) + a[2]*core.Cos(4*core.Pi*x) - a[3]*core.Cos(6*core.Pi*x)
	}
}

func generalizedCosine5(out []core.Real, a [5]core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		x := core.Real(i) / denom
		out[i] = a[0] - a[1]*core.Cos(2*core.Pi*x) + a[2]*core.Cos(4*core.Pi*x) -
			a[3]*core.Cos(6*core.Pi*x) + a[4]*core.Cos(8*core.Pi*x)
	}
}

func bartlett(out []core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		x := 2*core.Real(i)/denom - 1
		out[i] = 1 - core.Abs(x)
	}
}

func cosineWindow(out []core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		out[i] = core.Sin(core.Pi * core.Real(i) / denom)
	}
}

func bohman(out []core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	for i := range out {
		x := core.Abs(2*core.Real(i)/denom - 1)
		if x >= 1 {
			out[i] = 0
			continue
		}
		out[i] = (1-x)*core.Cos(core.Pi*x) + core.Sin(core.Pi*x)/core.Pi
	}
}

// kaiser evaluates I0(beta*sqrt(1-x^2)) / I0(beta) with x in [-1,1],
// using the BesselI0 series truncated at 1e-12 relative error per
// spec.md §4.C.
func kaiser(out []core.Real, beta core.Real) {
	n := len(out)
	denom := core.Real(n - 1)
	i0beta := core.BesselI0(beta)
	for i := range out {
		x := 2*core.Real(i)/denom - 1
		arg := beta * core.Sqrt(core.Max(0, 1-x*x))
		out[i] = core.BesselI0(arg) / i0beta
	}
}

// tukey is a cosine-tapered window: flat for the central (1-alpha)
// fraction, Hann-shaped tapers on each edge. alpha is clamped to [0,1];
// alpha=0 is rectangular, alpha=1 is Hann.
func tukey(out []core.Real, alpha core.Real) {
	n := len(out)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	if alpha == 0 {
		for i := range out {
			out[i] = 1
		}
		return
	}
	denom := core.Real(n - 1)
	taper := alpha * denom / 2
	for i := range out {
		x := core.Real(i)
		switch {
		case x < taper:
			out[i] = 0.5 * (1 + core.Cos(core.Pi*(x/taper-1)))
		case x > denom-taper:
			out[i] = 0.5 * (1 + core.Cos(core.Pi*((x-denom+taper)/taper)))
		default:
			out[i] = 1
		}
	}
}

// planckTaper implements the Planck-taper window with edge fraction
// epsilon (default 0.1): a smooth exponential-transition envelope that is
// exactly 0 at the edges and exactly 1 in the central plateau.
func planckTaper(out []core.Real, eps core.Real) {
	n := len(out)
	if eps <= 0 {
		eps = 0.1
	}
	if eps > 0.5 {
		eps = 0.5
	}
	last := core.Real(n - 1)
	edge := eps * last
	for i := range out {
		x := core.Real(i)
		switch {
		case x == 0 || x == last:
			out[i] = 0
		case x < edge:
			out[i] = 1 / (planckZ(x/edge)+1)
		case x > last-edge:
			out[i] = 1 / (planckZ((last-x)/edge)+1)
		default:
			out[i] = 1
		}
	}
}

// planckZ computes exp(1/t - 1/(1-t)) for t in (0,1), the kernel of the
// Planck-taper transition.
func planckZ(t core.Real) core.Real {
	if t <= 0 {
		return 1e30 // saturate: 1/(1+huge) -> 0
	}
	if t >= 1 {
		return 0
	}
	return core.Exp(1/t - 1/(1-t))
}
