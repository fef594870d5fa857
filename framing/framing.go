// Package framing implements spec.md §4.F: frame counting, frame
// extraction with edge padding, and overlap-add accumulation — the
// bookkeeping used by STFT frame counting/extraction and by the FIR and
// IIR FiltFilt reflection padding. The overlap-add accumulator mirrors the
// donor's OverlapAddEngine overlap-buffer discipline (dsp/convolution.go):
// a fixed-size running buffer that absorbs the tail of each frame and is
// drained sample-by-sample as frames are emitted.
package framing

import "vv-dsp/core"

// PadMode selects how FetchFrame fills samples that fall outside the
// signal when a frame straddles an edge.
type PadMode int

const (
	// PadZero fills out-of-range samples with 0.
	PadZero PadMode = iota
	// PadReflect mirrors the signal around its edges (no sample
	// repeated at the boundary), used by filtfilt-style edge handling.
	PadReflect
)

// NumFrames returns how many frames of length frameSize, spaced hop
// samples apart, are needed to cover a signal of signalLen samples.
// When center is true, frame i is conceptually centered at i*hop and the
// count is the ceiling division ⌈signalLen/hop⌉ (every sample falls
// under some frame once edge zero-padding/reflection is accounted for).
// When center is false, frame i starts at i*hop and the count is
// 1 + (signalLen-frameSize)/hop once signalLen >= frameSize, else 0 (no
// full frame fits, and no padding is implied). Returns 0 when signalLen,
// frameSize or hop is not positive.
func NumFrames(signalLen, frameSize, hop int, center bool) int {
	if signalLen <= 0 || frameSize <= 0 || hop <= 0 {
		return 0
	}
	if center {
		return (signalLen + hop - 1) / hop
	}
	if signalLen < frameSize {
		return 0
	}
	return 1 + (signalLen-frameSize)/hop
}

// FetchFrame copies frameSize samples from signal starting at start
// (which may be negative or extend past len(signal)) into out, applying
// mode at either edge. len(out) must equal frameSize.
func FetchFrame(out []core.Real, signal []core.Real, start int, mode PadMode) error {
	n := len(signal)
	frameSize := len(out)
	if frameSize == 0 {
		return core.NewError("framing.FetchFrame", core.InvalidSize, nil)
	}
	for i := 0; i < frameSize; i++ {
		idx := start + i
		out[i] = sampleAt(signal, idx, mode, n)
	}
	return nil
}

func sampleAt(signal []core.Real, idx int, mode PadMode, n int) core.Real {
	if n == 0 {
		return 0
	}
	if idx >= 0 && idx < n {
		return signal[idx]
	}
	switch mode {
	case PadReflect:
		return signal[reflectIndex(idx, n)]
	default:
		return 0
	}
}

// reflectIndex maps an out-of-range index into [0,n) by mirroring at
// each boundary without repeating the edge sample, e.g. for n=5:
// ..., 2,1,0,1,2,3,4,3,2,1,0,1,2, ...
func reflectIndex(idx, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	idx %= period
	if idx < 0 {
		idx += period
	}
	if idx >= n {
		idx = period - idx
	}
	return idx
}

// OverlapAdder accumulates successive, possibly overlapping frames into a
// continuous output stream, draining finished samples as they become
// final (i.e. once no later frame can still add to them).
type OverlapAdder struct {
	frameSize int
	hop       int
	buf       []core.Real // length frameSize, rolling accumulator
}

// NewOverlapAdder creates an accumulator for frames of length frameSize
// spaced hop samples apart. hop must be in (0, frameSize].
func NewOverlapAdder(frameSize, hop int) (*OverlapAdder, error) {
	if frameSize <= 0 || hop <= 0 || hop > frameSize {
		return nil, core.NewError("framing.NewOverlapAdder", core.InvalidSize, nil)
	}
	return &OverlapAdder{frameSize: frameSize, hop: hop, buf: make([]core.Real, frameSize)}, nil
}

// Reset clears the accumulator, e.g. between independent signals.
func (o *OverlapAdder) Reset() {
	for i := range o.buf {
		o.buf[i] = 0
	}
}

// AddFrame adds frame (length frameSize) into the accumulator, then
// drains and returns the first hop samples (now final, since no later
// frame added via subsequent AddFrame calls can reach back over them),
// shifting the remainder forward by hop.
func (o *OverlapAdder) AddFrame(frame []core.Real, out []core.Real) error {
	if len(frame) != o.frameSize || len(out) != o.hop {
		return core.NewError("framing.OverlapAdder.AddFrame", core.InvalidSize, nil)
	}
	for i, v := range frame {
		o.buf[i] += v
	}
	copy(out, o.buf[:o.hop])
	copy(o.buf, o.buf[o.hop:])
	for i := o.frameSize - o.hop; i < o.frameSize; i++ {
		o.buf[i] = 0
	}
	return nil
}
