// Package utils implements spec.md §4.E: spectrum reordering
// (fftshift/ifftshift) and phase wrap/unwrap, shared by the STFT,
// Hilbert, and CZT components.
package utils

import "vv-dsp/core"

// Fftshift swaps the left and right halves of a spectrum in place, moving
// the zero-frequency bin to the center. For odd n the extra bin goes to
// the right half, matching the convention Ifftshift reverses exactly.
func Fftshift(x []core.Complex) {
	n := len(x)
	mid := n - n/2
	rotateLeft(x, mid)
}

// IfftshiftReal is Fftshift's inverse, applied to real-valued sequences
// (used for shifting window/index arrays rather than spectra).
func IfftshiftReal(x []core.Real) {
	n := len(x)
	mid := n / 2
	rotateLeftReal(x, mid)
}

// FftshiftReal mirrors Fftshift for real-valued sequences.
func FftshiftReal(x []core.Real) {
	n := len(x)
	mid := n - n/2
	rotateLeftReal(x, mid)
}

// Ifftshift is Fftshift's inverse: for even n they are identical; for odd
// n the rotation direction differs by one bin.
func Ifftshift(x []core.Complex) {
	n := len(x)
	mid := n / 2
	rotateLeft(x, mid)
}

func rotateLeft(x []core.Complex, k int) {
	n := len(x)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	tmp := make([]core.Complex, n)
	for i := 0; i < n; i++ {
		tmp[i] = x[(i+k)%n]
	}
	copy(x, tmp)
}

func rotateLeftReal(x []core.Real, k int) {
	n := len(x)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	tmp := make([]core.Real, n)
	for i := 0; i < n; i++ {
		tmp[i] = x[(i+k)%n]
	}
	copy(x, tmp)
}

// UnwrapPhase removes 2*pi discontinuities from a sequence of phase
// samples (radians), in place, using the standard running-offset method:
// whenever the jump between consecutive samples exceeds pi in magnitude,
// shift all subsequent samples by the nearest multiple of 2*pi that
// brings the jump back within (-pi, pi].
func UnwrapPhase(phase []core.Real) {
	if len(phase) < 2 {
		return
	}
	offset := core.Real(0)
	for i := 1; i < len(phase); i++ {
		delta := phase[i] + offset - phase[i-1]
		for delta > core.Pi {
			offset -= 2 * core.Pi
			delta -= 2 * core.Pi
		}
		for delta < -core.Pi {
			offset += 2 * core.Pi
			delta += 2 * core.Pi
		}
		phase[i] += offset
	}
}

// WrapPhase reduces a single phase value (radians) into (-pi, pi].
func WrapPhase(theta core.Real) core.Real {
	theta = core.Mod(core.Pi-theta, 2*core.Pi)
	if theta < 0 {
		theta += 2 * core.Pi
	}
	return core.Pi - theta
}
