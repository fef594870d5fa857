// Package iir implements spec.md §4.I: Direct-Form-II-Transposed biquad
// sections, cascaded application, bilinear-transform coefficient
// synthesis for lowpass/highpass/bandpass prototypes, a stability check,
// and zero-phase (filtfilt) filtering via reflection-padded forward/
// backward passes, mirroring filter/fir's FiltFilt shape.
package iir

import (
	"vv-dsp/core"
	"vv-dsp/framing"
)

// Biquad is one second-order IIR section in Direct-Form-II-Transposed,
// normalized so a0 == 1: y[n] = b0*x[n] + s0, with s0/s1 the two
// transposed delay states updated each sample.
type Biquad struct {
	B0, B1, B2 core.Real
	A1, A2     core.Real
	s0, s1     core.Real
}

// NewBiquad builds a section from coefficients already normalized to
// a0 == 1 (the caller divides by a0 before calling, as
// BilinearLowpass/Highpass/Bandpass do internally).
func NewBiquad(b0, b1, b2, a1, a2 core.Real) *Biquad {
	return &Biquad{B0: b0, B1: b1, B2: b2, A1: a1, A2: a2}
}

// Reset zeros the section's internal state.
func (bq *Biquad) Reset() {
	bq.s0, bq.s1 = 0, 0
}

// Process filters one sample through the section.
func (bq *Biquad) Process(x core.Real) core.Real {
	y := bq.B0*x + bq.s0
	bq.s0 = bq.B1*x - bq.A1*y + bq.s1
	bq.s1 = bq.B2*x - bq.A2*y
	return y
}

// IsStable reports whether the section's poles lie inside the unit
// circle, per the standard a1/a2 triangle-stability test for a
// normalized (a0=1) second-order section. Any non-finite coefficient
// (NaN or Inf, typically from a degenerate design input) is rejected
// outright rather than left to the magnitude comparisons, which would
// otherwise let a bad B0/B1/B2 slip through unstable-coefficient
// detection entirely.
func (bq *Biquad) IsStable() bool {
	if !isFinite(bq.B0) || !isFinite(bq.B1) || !isFinite(bq.B2) || !isFinite(bq.A1) || !isFinite(bq.A2) {
		return false
	}
	return core.Abs(bq.A2) < 1 && core.Abs(bq.A1) < 1+bq.A2
}

func isFinite(x core.Real) bool {
	return !core.IsNaN(x) && !core.IsInf(x)
}

// Cascade is a chain of Biquad sections applied in series, the standard
// way to realize higher-order IIR filters from second-order sections.
type Cascade struct {
	Sections []*Biquad
}

// NewCascade wraps sections (order 2*len(sections)) into a Cascade.
func NewCascade(sections ...*Biquad) *Cascade {
	return &Cascade{Sections: sections}
}

// Reset zeros every section's state.
func (c *Cascade) Reset() {
	for _, s := range c.Sections {
		s.Reset()
	}
}

// IsStable reports whether every section in the cascade is stable.
func (c *Cascade) IsStable() bool {
	for _, s := range c.Sections {
		if !s.IsStable() {
			return false
		}
	}
	return true
}

// Apply filters in into out (equal length, may alias) through the full
// cascade, sample by sample.
func (c *Cascade) Apply(out, in []core.Real) error {
	if len(out) != len(in) {
		return core.NewError("iir.Cascade.Apply", core.InvalidSize, nil)
	}
	for i, x := range in {
		v := x
		for _, s := range c.Sections {
			v = s.Process(v)
		}
		out[i] = v
	}
	return nil
}

// warp pre-warps a normalized cutoff frequency fc (in (0,1), fraction of
// Nyquist) to the analog-prototype frequency the bilinear transform
// requires to preserve the critical frequency exactly.
func warp(fc core.Real) core.Real {
	return core.Sin(core.Pi*fc/2) / core.Cos(core.Pi*fc/2)
}

// BilinearLowpass synthesizes a normalized (a0=1) second-order
// Butterworth lowpass section at normalized cutoff fc in (0,1), via the
// standard bilinear-transform biquad cookbook formulas.
func BilinearLowpass(fc, q core.Real) (*Biquad, error) {
	if fc <= 0 || fc >= 1 {
		return nil, core.NewError("iir.BilinearLowpass", core.OutOfRange, nil)
	}
	k := warp(fc)
	k2 := k * k
	norm := 1 / (1 + k/q + k2)
	b0 := k2 * norm
	b1 := 2 * b0
	b2 := b0
	a1 := 2 * (k2 - 1) * norm
	a2 := (1 - k/q + k2) * norm
	return NewBiquad(b0, b1, b2, a1, a2), nil
}

// BilinearHighpass mirrors BilinearLowpass for a highpass prototype.
func BilinearHighpass(fc, q core.Real) (*Biquad, error) {
	if fc <= 0 || fc >= 1 {
		return nil, core.NewError("iir.BilinearHighpass", core.OutOfRange, nil)
	}
	k := warp(fc)
	k2 := k * k
	norm := 1 / (1 + k/q + k2)
	b0 := norm
	b1 := -2 * b0
	b2 := b0
	a1 := 2 * (k2 - 1) * norm
	a2 := (1 - k/q + k2) * norm
	return NewBiquad(b0, b1, b2, a1, a2), nil
}

// BilinearBandpass synthesizes a constant-skirt-gain bandpass section
// centered at fc in (0,1) with quality factor q.
func BilinearBandpass(fc, q core.Real) (*Biquad, error) {
	if fc <= 0 || fc >= 1 {
		return nil, core.NewError("iir.BilinearBandpass", core.OutOfRange, nil)
	}
	k := warp(fc)
	k2 := k * k
	norm := 1 / (1 + k/q + k2)
	b0 := (k / q) * norm
	b1 := core.Real(0)
	b2 := -b0
	a1 := 2 * (k2 - 1) * norm
	a2 := (1 - k/q + k2) * norm
	return NewBiquad(b0, b1, b2, a1, a2), nil
}

// FiltFilt applies cascade to x twice — forward, then on the
// time-reversed intermediate result — producing zero-phase output y,
// with the signal reflection-padded at both ends to damp the filter's
// transient, mirroring filter/fir.FiltFilt.
func FiltFilt(y []core.Real, c *Cascade, x []core.Real) error {
	if len(y) != len(x) {
		return core.NewError("iir.FiltFilt", core.InvalidSize, nil)
	}
	pad := 3 * len(c.Sections) * 2
	if pad > len(x) {
		pad = len(x)
	}
	ext := make([]core.Real, len(x)+2*pad)
	if err := framing.FetchFrame(ext, x, -pad, framing.PadReflect); err != nil {
		return err
	}

	c.Reset()
	stage1 := make([]core.Real, len(ext))
	if err := c.Apply(stage1, ext); err != nil {
		return err
	}

	reverseInPlace(stage1)
	c.Reset()
	stage2 := make([]core.Real, len(stage1))
	if err := c.Apply(stage2, stage1); err != nil {
		return err
	}
	reverseInPlace(stage2)

	copy(y, stage2[pad:pad+len(x)])
	return nil
}

func reverseInPlace(x []core.Real) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
