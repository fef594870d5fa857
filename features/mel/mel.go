// Package mel implements spec.md §4.N: HTK Hz<->Mel conversion, a
// triangular Mel filterbank over a power spectrum, log-mel energies, and
// MFCC via DCT-II with liftering.
//
// The HTK mel formula and the triangular-filter bin-edge construction
// are grounded on emer-auditory's Mel type
// (other_examples/d85eb1b3_emer-auditory__audio-mel.go.go):
// FreqToMel/MelToFreq use the same 1127*ln(1+f/700) constants, and
// InitFilters' "effective filter count = NFilters+2, filters span
// [bin[f], bin[f+2]] with a linear rise to bin[f+1] and fall to bin[f+2]"
// shape is reproduced directly rather than reinvented.
package mel

import (
	"vv-dsp/core"
	"vv-dsp/spectral/dct"
)

// HzToMel converts a frequency in Hz to the HTK mel scale.
func HzToMel(hz core.Real) core.Real {
	return 1127 * core.Log(1+hz/700)
}

// MelToHz is HzToMel's inverse.
func MelToHz(mel core.Real) core.Real {
	return 700 * (core.Exp(mel/1127) - 1)
}

// FilterBank is a triangular Mel filterbank spanning loHz..hiHz over a
// power spectrum of nBins == nfft/2+1 bins at the given sample rate.
type FilterBank struct {
	nFilters int
	nBins    int
	// edges[f] is the FFT bin index of filter f's left edge, edges[f+1]
	// its peak, edges[f+2] its right edge, for f=0..nFilters-1 — the
	// same "effective filters = nFilters+2" layout emer-auditory uses.
	edges []int
	// renorm, when enabled, rescales log-mel energies into [0,1] via a
	// fixed (min,max) range, the spec.md §4.N-ext addition grounded on
	// emer-auditory's RenormSpec; off by default since it requires a
	// corpus-specific calibrated range the library cannot assume.
	renormOn          bool
	renormMin         core.Real
	renormScale       core.Real
}

// NewFilterBank builds a filterbank with nFilters triangular filters
// spanning [loHz,hiHz] over nBins = nfft/2+1 power-spectrum bins sampled
// at sampleRate Hz.
func NewFilterBank(nFilters, nfft int, sampleRate, loHz, hiHz core.Real) (*FilterBank, error) {
	if nFilters <= 0 || nfft <= 0 {
		return nil, core.NewError("mel.NewFilterBank", core.InvalidSize, nil)
	}
	if hiHz <= loHz || hiHz > sampleRate/2 {
		return nil, core.NewError("mel.NewFilterBank", core.OutOfRange, nil)
	}
	nBins := nfft/2 + 1
	loMel := HzToMel(loHz)
	hiMel := HzToMel(hiHz)
	effN := nFilters + 2
	step := (hiMel - loMel) / core.Real(effN-1)

	edges := make([]int, effN)
	for i := 0; i < effN; i++ {
		hz := MelToHz(loMel + core.Real(i)*step)
		edges[i] = int(core.Floor(hz * core.Real(nfft) / sampleRate))
	}
	return &FilterBank{nFilters: nFilters, nBins: nBins, edges: edges}, nil
}

// EnableRenorm turns on the spec.md §4.N-ext optional renormalization
// step: log-mel output i is rescaled to (i-min)/(max-min), clamped to
// [0,1].
func (fb *FilterBank) EnableRenorm(min, max core.Real) {
	fb.renormOn = true
	fb.renormMin = min
	if max > min {
		fb.renormScale = 1 / (max - min)
	}
}

// NFilters returns the number of triangular filters.
func (fb *FilterBank) NFilters() int { return fb.nFilters }

// Apply computes the (optionally log-, optionally renormalized) mel
// energies of powerSpectrum (length nBins = nfft/2+1) into out (length
// NFilters()). logEnergy selects natural-log output (the conventional
// MFCC front end); logFloor bounds the log when a filter's energy sum is
// exactly zero.
func (fb *FilterBank) Apply(out []core.Real, powerSpectrum []core.Real, logEnergy bool, logFloor core.Real) error {
	if len(powerSpectrum) != fb.nBins || len(out) != fb.nFilters {
		return core.NewError("mel.FilterBank.Apply", core.InvalidSize, nil)
	}
	for f := 0; f < fb.nFilters; f++ {
		minBin, peakBin, maxBin := fb.edges[f], fb.edges[f+1], fb.edges[f+2]
		pkmin := peakBin - minBin
		pkmax := maxBin - peakBin
		var sum, weightSum core.Real
		for b := minBin; b <= peakBin && b < fb.nBins; b++ {
			if b < 0 {
				continue
			}
			w := core.Real(1)
			if pkmin > 0 {
				w = core.Real(b-minBin) / core.Real(pkmin)
			}
			sum += w * powerSpectrum[b]
			weightSum += w
		}
		for b := peakBin + 1; b <= maxBin && b < fb.nBins; b++ {
			if b < 0 {
				continue
			}
			w := core.Real(1)
			if pkmax > 0 {
				w = core.Real(maxBin-b) / core.Real(pkmax)
			}
			sum += w * powerSpectrum[b]
			weightSum += w
		}
		// Area-normalize so the filter's weights sum to 1, per spec.md
		// §4.N, rather than letting a filter's output scale with its
		// bandwidth (wider filters otherwise accumulate more bins).
		if weightSum > 0 {
			sum /= weightSum
		}

		val := sum
		if logEnergy {
			if sum <= 0 {
				val = logFloor
			} else {
				val = core.Log(sum)
			}
		}
		if fb.renormOn {
			val = (val - fb.renormMin) * fb.renormScale
			if val < 0 {
				val = 0
			}
			if val > 1 {
				val = 1
			}
		}
		out[f] = val
	}
	return nil
}

// MFCC computes MFCCs from log-mel energies via DCT-II followed by
// liftering: coefficient k is scaled by 1 + (lifter/2)*sin(pi*k/lifter),
// the standard HTK/librosa cepstral liftering formula. lifter <= 0
// disables liftering. len(out) must not exceed len(logMel); out receives
// the first len(out) coefficients of the full DCT.
func MFCC(out []core.Real, logMel []core.Real, lifter core.Real) error {
	n := len(logMel)
	if n == 0 || len(out) > n {
		return core.NewError("mel.MFCC", core.InvalidSize, nil)
	}
	full := make([]core.Real, n)
	if err := dct.Forward2(full, logMel); err != nil {
		return err
	}
	copy(out, full[:len(out)])
	if lifter > 0 {
		for k := range out {
			w := 1 + (lifter/2)*core.Sin(core.Pi*core.Real(k)/lifter)
			out[k] *= w
		}
	}
	return nil
}
