// Package fir implements spec.md §4.H: windowed-sinc lowpass design,
// streaming direct-form FIR application, a single-shot FFT-accelerated
// apply, a streaming FFT-accelerated block convolver, and zero-phase
// (filtfilt) filtering.
//
// ApplyFFT and StreamingFFTConvolver are both grounded on the donor's
// OverlapAddEngine (dsp/convolution.go): R2C the zero-padded signal and
// impulse response, multiply spectra pointwise, C2R back. ApplyFFT is the
// donor's single-shot shape, carrying no state across calls; the
// streaming convolver generalizes it by precomputing the IR's spectrum
// once and carrying the tail of each fixed-size block into the next via
// a rolling overlap buffer of length irLen-1.
package fir

import (
	"vv-dsp/core"
	"vv-dsp/framing"
	"vv-dsp/spectral/fft"
	"vv-dsp/window"
)

// DesignLowpass fills coeffs (length determines filter order+1, must be
// odd for a Type-I linear-phase filter) with a windowed-sinc lowpass
// design: ideal sinc impulse response truncated to len(coeffs) taps,
// centered, and tapered by kind/param, then normalized to unity DC gain.
// fc is the cutoff normalized to Nyquist, in (0,1).
func DesignLowpass(coeffs []core.Real, fc core.Real, kind window.Kind, param core.Real) error {
	n := len(coeffs)
	if n == 0 {
		return core.NewError("fir.DesignLowpass", core.InvalidSize, nil)
	}
	if fc <= 0 || fc >= 1 {
		return core.NewError("fir.DesignLowpass", core.OutOfRange, nil)
	}
	w := make([]core.Real, n)
	if err := window.Generate(w, kind, param); err != nil {
		return err
	}
	center := core.Real(n-1) / 2
	for i := 0; i < n; i++ {
		x := core.Real(i) - center
		coeffs[i] = sinc(fc*x) * fc * w[i]
	}
	normalizeDCGain(coeffs)
	return nil
}

func sinc(x core.Real) core.Real {
	if x == 0 {
		return 1
	}
	px := core.Pi * x
	return core.Sin(px) / px
}

func normalizeDCGain(coeffs []core.Real) {
	var sum core.Real
	for _, c := range coeffs {
		sum += c
	}
	if sum == 0 {
		return
	}
	for i := range coeffs {
		coeffs[i] /= sum
	}
}

// FIR is a streaming direct-form FIR filter: each Apply call consumes a
// block of input and continues the convolution from the history left by
// the previous block.
type FIR struct {
	coeffs  []core.Real
	history []core.Real // last len(coeffs)-1 inputs, oldest first
}

// NewFIR copies coeffs into a new streaming filter with zeroed history.
func NewFIR(coeffs []core.Real) (*FIR, error) {
	if len(coeffs) == 0 {
		return nil, core.NewError("fir.NewFIR", core.InvalidSize, nil)
	}
	f := &FIR{
		coeffs:  append([]core.Real(nil), coeffs...),
		history: make([]core.Real, len(coeffs)-1),
	}
	return f, nil
}

// Reset zeros the filter's history, as if starting on a fresh signal.
func (f *FIR) Reset() {
	for i := range f.history {
		f.history[i] = 0
	}
}

// Order returns len(coeffs)-1.
func (f *FIR) Order() int { return len(f.coeffs) - 1 }

// Apply filters in into out (equal length) using direct-form convolution,
// carrying state across calls via the history buffer. out and in must not
// alias: out[n] is written before in[n] is read again for later outputs
// and for the history update.
func (f *FIR) Apply(out, in []core.Real) error {
	if len(out) != len(in) {
		return core.NewError("fir.FIR.Apply", core.InvalidSize, nil)
	}
	m := len(f.coeffs)
	h := len(f.history)
	for n := range in {
		var acc core.Real
		for k := 0; k < m; k++ {
			var x core.Real
			idx := n - k
			if idx >= 0 {
				x = in[idx]
			} else {
				hi := h + idx // idx is negative
				if hi >= 0 && hi < h {
					x = f.history[hi]
				}
			}
			acc += f.coeffs[k] * x
		}
		out[n] = acc
	}
	if h > 0 {
		if len(in) >= h {
			copy(f.history, in[len(in)-h:])
		} else {
			copy(f.history, f.history[len(in):])
			copy(f.history[h-len(in):], in)
		}
	}
	return nil
}

// FiltFilt applies coeffs to x twice — once forward, once on the
// time-reversed signal — producing zero-phase output y of the same
// length. The signal is extended at both ends by reflection (length
// 3*len(coeffs), capped to len(x)) to damp the filter's transient before
// the region of interest, per spec.md §4.H.
func FiltFilt(y []core.Real, coeffs []core.Real, x []core.Real) error {
	if len(y) != len(x) {
		return core.NewError("fir.FiltFilt", core.InvalidSize, nil)
	}
	pad := 3 * len(coeffs)
	if pad > len(x) {
		pad = len(x)
	}
	ext := make([]core.Real, len(x)+2*pad)
	if err := framing.FetchFrame(ext, x, -pad, framing.PadReflect); err != nil {
		return err
	}

	fwd, err := NewFIR(coeffs)
	if err != nil {
		return err
	}
	stage1 := make([]core.Real, len(ext))
	if err := fwd.Apply(stage1, ext); err != nil {
		return err
	}

	reverseInPlace(stage1)
	bwd, err := NewFIR(coeffs)
	if err != nil {
		return err
	}
	stage2 := make([]core.Real, len(stage1))
	if err := bwd.Apply(stage2, stage1); err != nil {
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

// ApplyFFT is spec.md §4.H's `fir_apply_fft`: a single-shot, zero-history
// FFT convolution of in with coeffs. Nfft is the next power of two >=
// len(in)+len(coeffs)-1; both signal and coefficients are zero-padded,
// R2C-transformed, multiplied pointwise, and C2R-transformed back. out
// receives the first len(in) samples (no circular wrap). This path is
// correct for offline blocks but carries no state across calls — callers
// requiring continuity must use FIR.Apply or StreamingFFTConvolver
// instead. Per spec.md §7's allocation discipline, this is documented
// scratch allocation, not a hot path.
func ApplyFFT(out, coeffs, in []core.Real) error {
	if len(out) != len(in) || len(in) == 0 || len(coeffs) == 0 {
		return core.NewError("fir.ApplyFFT", core.InvalidSize, nil)
	}
	nfft := nextPowerOfTwo(len(in) + len(coeffs) - 1)

	sigPadded := make([]core.Real, nfft)
	copy(sigPadded, in)
	coefPadded := make([]core.Real, nfft)
	copy(coefPadded, coeffs)

	fwd, err := fft.MakePlan(nfft, fft.R2C, fft.Forward)
	if err != nil {
		return err
	}
	defer fwd.Destroy()
	bwd, err := fft.MakePlan(nfft, fft.C2R, fft.Backward)
	if err != nil {
		return err
	}
	defer bwd.Destroy()

	sigSpec := make([]core.Complex, nfft/2+1)
	if err := fwd.ExecuteR2C(sigSpec, sigPadded); err != nil {
		return err
	}
	coefSpec := make([]core.Complex, nfft/2+1)
	if err := fwd.ExecuteR2C(coefSpec, coefPadded); err != nil {
		return err
	}
	product := make([]core.Complex, nfft/2+1)
	for i := range product {
		product[i] = sigSpec[i] * coefSpec[i]
	}
	full := make([]core.Real, nfft)
	if err := bwd.ExecuteC2R(full, product); err != nil {
		return err
	}
	copy(out, full[:len(in)])
	return nil
}

// StreamingFFTConvolver is an FFT-accelerated block convolver: the IR's
// spectrum is precomputed once, and each fixed-size input block is
// filtered via zero-padded forward/inverse transforms with the tail
// carried into the next block's overlap-add.
type StreamingFFTConvolver struct {
	blockSize int
	fftSize   int
	irLen     int

	fwd *fft.Plan
	bwd *fft.Plan

	irSpectrum []core.Complex
	overlap    []core.Real

	padded  []core.Real
	spec    []core.Complex
	product []core.Complex
	timeOut []core.Real
}

// NewStreamingFFTConvolver builds a convolver for the given impulse
// response and fixed block size. fftSize is chosen as the smallest power
// of two >= blockSize+len(ir)-1, matching the donor's
// nextPowerOf2(2*blockSize-1) sizing discipline.
func NewStreamingFFTConvolver(ir []core.Real, blockSize int) (*StreamingFFTConvolver, error) {
	if blockSize <= 0 || len(ir) == 0 {
		return nil, core.NewError("fir.NewStreamingFFTConvolver", core.InvalidSize, nil)
	}
	fftSize := nextPowerOfTwo(blockSize + len(ir) - 1)
	fwd, err := fft.MakePlan(fftSize, fft.R2C, fft.Forward)
	if err != nil {
		return nil, err
	}
	bwd, err := fft.MakePlan(fftSize, fft.C2R, fft.Backward)
	if err != nil {
		fwd.Destroy()
		return nil, err
	}
	c := &StreamingFFTConvolver{
		blockSize: blockSize,
		fftSize:   fftSize,
		irLen:     len(ir),
		fwd:       fwd,
		bwd:       bwd,
		overlap:   make([]core.Real, len(ir)-1),
		padded:    make([]core.Real, fftSize),
		spec:      make([]core.Complex, fftSize/2+1),
		product:   make([]core.Complex, fftSize/2+1),
		timeOut:   make([]core.Real, fftSize),
	}
	irPadded := make([]core.Real, fftSize)
	copy(irPadded, ir)
	c.irSpectrum = make([]core.Complex, fftSize/2+1)
	if err := fwd.ExecuteR2C(c.irSpectrum, irPadded); err != nil {
		fwd.Destroy()
		bwd.Destroy()
		return nil, err
	}
	return c, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Destroy releases the convolver's FFT plans.
func (c *StreamingFFTConvolver) Destroy() {
	c.fwd.Destroy()
	c.bwd.Destroy()
}

// Reset clears the rolling overlap buffer, as if starting a new signal.
func (c *StreamingFFTConvolver) Reset() {
	for i := range c.overlap {
		c.overlap[i] = 0
	}
}

// Latency returns the processing latency in samples (one block).
func (c *StreamingFFTConvolver) Latency() int { return c.blockSize }

// ProcessBlock filters one block of blockSize input samples into output
// of the same length, overlap-adding the IR tail from this block into
// the next.
func (c *StreamingFFTConvolver) ProcessBlock(out, in []core.Real) error {
	if len(in) != c.blockSize || len(out) != c.blockSize {
		return core.NewError("fir.StreamingFFTConvolver.ProcessBlock", core.InvalidSize, nil)
	}
	for i := range c.padded {
		if i < len(in) {
			c.padded[i] = in[i]
		} else {
			c.padded[i] = 0
		}
	}
	if err := c.fwd.ExecuteR2C(c.spec, c.padded); err != nil {
		return err
	}
	for i := range c.product {
		c.product[i] = c.spec[i] * c.irSpectrum[i]
	}
	if err := c.bwd.ExecuteC2R(c.timeOut, c.product); err != nil {
		return err
	}
	for i := 0; i < c.blockSize; i++ {
		out[i] = c.timeOut[i]
		if i < len(c.overlap) {
			out[i] += c.overlap[i]
		}
	}
	newOverlap := make([]core.Real, len(c.overlap))
	for i := range newOverlap {
		tailIdx := c.blockSize + i
		if tailIdx < len(c.timeOut) {
			newOverlap[i] = c.timeOut[tailIdx]
		}
		if i+c.blockSize < len(c.overlap) {
			newOverlap[i] += c.overlap[i+c.blockSize]
		}
	}
	copy(c.overlap, newOverlap)
	return nil
}
