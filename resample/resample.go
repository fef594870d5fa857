// Package resample implements spec.md §4.J: exact-rational-ratio sample
// rate conversion with a streaming phase accumulator, in LINEAR and
// SINC(T) quality modes.
//
// The SINC(T) kernel shape (windowed sinc) is grounded on
// pkg/resampler/resampler.go's sinc/window combination, generalized here
// from a one-shot whole-buffer resample into a streaming operation over
// an exact integer ratio L/M (instead of a floating dstRate/srcRate) so
// repeated calls never accumulate phase drift across block boundaries.
// Per spec.md §4.J, the window is Hann (not the donor's Blackman), and
// the resampler owns a precomputed sinc-prototype table rather than
// recomputing sin/cos per output sample.
package resample

import "vv-dsp/core"

// Quality selects the interpolation kernel.
type Quality int

const (
	// Linear is 2-tap linear interpolation: fast, audible aliasing on
	// steep ratio changes.
	Linear Quality = iota
	// Sinc is windowed-sinc interpolation with a configurable tap count.
	Sinc
)

// sincTableOversample is the number of prototype-table samples stored per
// unit distance between taps; interpolateAt linearly interpolates between
// adjacent table entries rather than recomputing sin/cos.
const sincTableOversample = 256

// Resampler converts a stream from rate L*base/M... in practice: output
// rate / input rate == L/M exactly, via a streaming polyphase-style
// interpolator with a phase accumulator that never resets across Process
// calls.
type Resampler struct {
	l, m      int64
	quality   Quality
	sincLobes int
	sincTable []core.Real // precomputed Hann-windowed sinc prototype, Sinc quality only

	// history is a preallocated backing buffer; history[:historyLen] holds
	// the live samples the kernel may still need. trimHistory copies the
	// live window back to index 0 instead of reslicing from the front, and
	// appendHistory appends after it, so the usable capacity at the tail does
	// not shrink call over call — in steady state (stable block sizes),
	// appendHistory/trimHistory perform no heap allocation, per spec.md
	// §7's "resampler streaming" hot-path rule.
	history       []core.Real
	historyLen    int
	historyOrigin int64 // absolute input index of history[0]

	totalInput int64 // absolute index one past the last sample appended
	nextOutput int64 // absolute output sample index to produce next
	flushing   bool  // set by Flush: emit pending output without waiting for more input
}

// Flush marks the stream as ended: subsequent Process calls (with in ==
// nil) drain any output whose kernel support extends past the last fed
// sample instead of waiting indefinitely for input that will not arrive.
func (r *Resampler) Flush() { r.flushing = true }

// New builds a Resampler for the exact ratio l/m (output_rate =
// input_rate * l/m), with l,m >= 1. quality selects the kernel; sincLobes
// is the one-sided lobe count for Sinc (ignored for Linear, so the
// kernel spans 2*sincLobes taps), clamped to [4,64] as in the donor
// resampler.
func New(l, m int, quality Quality, sincLobes int) (*Resampler, error) {
	if l <= 0 || m <= 0 {
		return nil, core.NewError("resample.New", core.InvalidSize, nil)
	}
	if sincLobes < 4 {
		sincLobes = 4
	}
	if sincLobes > 64 {
		sincLobes = 64
	}
	r := &Resampler{
		l: int64(l), m: int64(m), quality: quality, sincLobes: sincLobes,
		history: make([]core.Real, 0, 4*sincLobes+64),
	}
	if quality != Linear {
		r.sincTable = buildSincTable(core.Real(sincLobes))
	}
	return r, nil
}

// Reset clears all streaming state, as if starting on a fresh signal.
func (r *Resampler) Reset() {
	r.history = r.history[:0]
	r.historyLen = 0
	r.historyOrigin = 0
	r.totalInput = 0
	r.nextOutput = 0
	r.flushing = false
}

func (r *Resampler) radius() core.Real {
	if r.quality == Linear {
		return 1
	}
	return core.Real(r.sincLobes)
}

// Process appends in to the stream and writes as many output samples as
// are now determinable into out, returning how many were written. Not
// every call produces output proportional to len(out): near the end of a
// finite signal, call Flush and then Process one final time with
// in == nil (after all real input has been fed) to flush the samples
// still resolvable without further input. After Flush, output stops at
// the first output position at or past the end of the fed input.
func (r *Resampler) Process(out []core.Real, in []core.Real) int {
	r.appendHistory(in)
	radius := r.radius()
	produced := 0
	for produced < len(out) {
		pos := r.outputPosition(r.nextOutput)
		if r.exhausted() && pos >= core.Real(r.totalInput) {
			break
		}
		hi := core.Ceil(pos + radius)
		if core.Real(r.totalInput-1) < hi && !r.exhausted() {
			break
		}
		out[produced] = r.interpolateAt(pos, radius)
		produced++
		r.nextOutput++
	}
	r.trimHistory(radius)
	return produced
}

// exhausted is a hook for Process(out, nil) flush calls: once the caller
// stops feeding new input, pending output is emitted even if the kernel
// support technically extends past the last real sample (those taps
// simply see no further contribution).
func (r *Resampler) exhausted() bool { return r.flushing }

func (r *Resampler) outputPosition(outIdx int64) core.Real {
	return core.Real(outIdx) * core.Real(r.m) / core.Real(r.l)
}

// appendHistory appends in after the live window, which trimHistory keeps
// at the front of the backing array. The backing array only grows if its
// preallocated
// capacity is exceeded, which steady-state streaming with stable block
// sizes never reaches once warmed up.
func (r *Resampler) appendHistory(in []core.Real) {
	if len(in) == 0 {
		return
	}
	needed := r.historyLen + len(in)
	if needed > cap(r.history) {
		grown := make([]core.Real, r.historyLen, needed*2)
		copy(grown, r.history[:r.historyLen])
		r.history = grown
	}
	r.history = r.history[:needed]
	copy(r.history[r.historyLen:needed], in)
	r.historyLen = needed
	r.totalInput += int64(len(in))
}

func (r *Resampler) trimHistory(radius core.Real) {
	keepFrom := r.nextOutput // conservative: never trim samples the next output might still need
	pos := r.outputPosition(keepFrom)
	lo := int64(core.Floor(pos - radius))
	if lo < r.historyOrigin {
		lo = r.historyOrigin
	}
	drop := lo - r.historyOrigin
	if drop <= 0 {
		return
	}
	if drop >= int64(r.historyLen) {
		r.history = r.history[:0]
		r.historyLen = 0
		r.historyOrigin = r.totalInput
		return
	}
	copy(r.history, r.history[drop:r.historyLen])
	r.historyLen -= int(drop)
	r.history = r.history[:r.historyLen]
	r.historyOrigin += drop
}

func (r *Resampler) sampleAt(absIdx int64) core.Real {
	i := absIdx - r.historyOrigin
	if i < 0 || i >= int64(r.historyLen) {
		return 0
	}
	return r.history[i]
}

func (r *Resampler) interpolateAt(pos core.Real, radius core.Real) core.Real {
	lo := int64(core.Floor(pos - radius))
	hi := int64(core.Ceil(pos + radius))
	var sum, weightSum core.Real
	for j := lo; j <= hi; j++ {
		d := pos - core.Real(j)
		var w core.Real
		switch r.quality {
		case Linear:
			w = linearWeight(d)
		default:
			w = r.sincTableLookup(d)
		}
		if w == 0 {
			continue
		}
		sum += r.sampleAt(j) * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}

func linearWeight(d core.Real) core.Real {
	ad := core.Abs(d)
	if ad >= 1 {
		return 0
	}
	return 1 - ad
}

func sinc(x core.Real) core.Real {
	if core.Abs(x) < 1e-8 {
		return 1
	}
	px := core.Pi * x
	return core.Sin(px) / px
}

// hann is the Hann taper over [-1,1] (0 outside), the window spec.md
// §4.J names for the SINC(T) kernel.
func hann(x core.Real) core.Real {
	if x < -1 || x > 1 {
		return 0
	}
	return 0.5 + 0.5*core.Cos(core.Pi*x)
}

// buildSincTable precomputes Hann-windowed sinc values at
// sincTableOversample samples per unit distance over [-radius, radius],
// the sinc-prototype table spec.md §3's resampler data model names —
// interpolateAt looks up (and linearly interpolates between) table
// entries instead of recomputing sin/cos per output sample.
func buildSincTable(radius core.Real) []core.Real {
	half := int(radius*sincTableOversample) + 1
	table := make([]core.Real, 2*half+1)
	for i := -half; i <= half; i++ {
		d := core.Real(i) / core.Real(sincTableOversample)
		table[i+half] = sinc(d) * hann(d/radius)
	}
	return table
}

// sincTableLookup interpolates r.sincTable at distance d, returning 0
// outside the table's support.
func (r *Resampler) sincTableLookup(d core.Real) core.Real {
	half := (len(r.sincTable) - 1) / 2
	idx := d * sincTableOversample
	lo := int(core.Floor(idx))
	frac := idx - core.Real(lo)
	loPos := lo + half
	if loPos < 0 || loPos+1 >= len(r.sincTable) {
		if loPos == len(r.sincTable)-1 {
			return r.sincTable[loPos]
		}
		return 0
	}
	return r.sincTable[loPos]*(1-frac) + r.sincTable[loPos+1]*frac
}
