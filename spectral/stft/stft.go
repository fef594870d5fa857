// Package stft implements spec.md §4.G: windowed short-time Fourier
// analysis/synthesis with overlap-add reconstruction and a spectrogram
// convenience wrapper. The per-frame primitives (Process/Reconstruct)
// mirror the donor's preference for explicit, caller-owned buffers over
// hidden state; the whole-signal convenience wrappers are built strictly
// on top of them, the same layering `Spectrogram` already used.
package stft

import (
	"vv-dsp/core"
	"vv-dsp/framing"
	"vv-dsp/spectral/fft"
	"vv-dsp/window"
)

// Transform is a reusable STFT analysis/synthesis context for a fixed
// FFT size, hop, and analysis/synthesis window.
type Transform struct {
	nfft int
	hop  int
	win  []core.Real

	fwd *fft.Plan // C2C, Forward
	bwd *fft.Plan // C2C, Backward

	// scratch is the single nfft-length complex buffer reused by both
	// Process (to embed the windowed real frame with a zero imaginary
	// part before the forward transform) and Reconstruct (to receive the
	// backward transform's output); Transform is exclusive-per-thread
	// (spec.md §5), so the two operations never interleave on one buffer.
	scratch []core.Complex
}

// Create builds a Transform for nfft-point frames hop samples apart,
// windowed by kind (param is the window's shape parameter, ignored for
// parameter-free kinds). Analysis and synthesis use the same window,
// per spec.md §4.G.
func Create(nfft, hop int, kind window.Kind, param core.Real) (*Transform, error) {
	if nfft <= 0 || hop <= 0 || hop > nfft {
		return nil, core.NewError("stft.Create", core.InvalidSize, nil)
	}
	w := make([]core.Real, nfft)
	if err := window.Generate(w, kind, param); err != nil {
		return nil, err
	}
	fwd, err := fft.MakePlan(nfft, fft.C2C, fft.Forward)
	if err != nil {
		return nil, err
	}
	bwd, err := fft.MakePlan(nfft, fft.C2C, fft.Backward)
	if err != nil {
		fwd.Destroy()
		return nil, err
	}
	return &Transform{
		nfft:    nfft,
		hop:     hop,
		win:     w,
		fwd:     fwd,
		bwd:     bwd,
		scratch: make([]core.Complex, nfft),
	}, nil
}

// Destroy releases the FFT plans backing the transform.
func (t *Transform) Destroy() {
	t.fwd.Destroy()
	t.bwd.Destroy()
}

// NumFrames returns the number of centered analysis frames a signal of
// the given length will produce (spec.md §4.F, center=true).
func (t *Transform) NumFrames(signalLen int) int {
	return framing.NumFrames(signalLen, t.nfft, t.hop, true)
}

// Process is spec.md §4.G's `process`: multiplies timeIn by the stored
// window, embeds it as a zero-imaginary complex frame, and runs the
// forward C2C FFT into specOut. specOut is the full-length nfft spectrum
// (not Hermitian-packed), so callers may apply spectral processing that
// does not preserve conjugate symmetry before calling Reconstruct.
// timeIn and specOut must both have length nfft. This is a hot path
// (spec.md §7 allocation discipline) and performs no heap allocation.
func (t *Transform) Process(timeIn []core.Real, specOut []core.Complex) error {
	if len(timeIn) != t.nfft || len(specOut) != t.nfft {
		return core.NewError("stft.Transform.Process", core.InvalidSize, nil)
	}
	for i, v := range timeIn {
		t.scratch[i] = core.Complex(complex(v*t.win[i], 0))
	}
	return t.fwd.ExecuteC2C(specOut, t.scratch)
}

// Reconstruct is spec.md §4.G's `reconstruct`: runs the backward C2C FFT
// of specIn (scaled by 1/n by the FFT layer), multiplies the real part
// by the window a second time, and adds the result into outAdd (frame
// index i is the caller's responsibility: position specIn/outAdd/normAdd
// so that element j of this nfft-length call corresponds to overall
// sample i*hop - nfft/2 + j before combining with other frames). If
// normAdd is non-nil, it accumulates window[j]^2 at the same positions,
// for the caller's final out[i] /= norm[i] division where norm[i] > eps.
// specIn and outAdd must have length nfft; normAdd, if non-nil, must too.
func (t *Transform) Reconstruct(specIn []core.Complex, outAdd []core.Real, normAdd []core.Real) error {
	if len(specIn) != t.nfft || len(outAdd) != t.nfft {
		return core.NewError("stft.Transform.Reconstruct", core.InvalidSize, nil)
	}
	if normAdd != nil && len(normAdd) != t.nfft {
		return core.NewError("stft.Transform.Reconstruct", core.InvalidSize, nil)
	}
	if err := t.bwd.ExecuteC2C(t.scratch, specIn); err != nil {
		return err
	}
	for j := 0; j < t.nfft; j++ {
		outAdd[j] += real(t.scratch[j]) * t.win[j]
		if normAdd != nil {
			normAdd[j] += t.win[j] * t.win[j]
		}
	}
	return nil
}

// ProcessSignal is a whole-signal convenience built on Process: it frames
// signal into NumFrames(len(signal)) centered, zero-padded nfft windows
// and writes each frame's full spectrum into frames[i] (length nfft).
func (t *Transform) ProcessSignal(signal []core.Real, frames [][]core.Complex) error {
	nFrames := t.NumFrames(len(signal))
	if len(frames) != nFrames {
		return core.NewError("stft.Transform.ProcessSignal", core.InvalidSize, nil)
	}
	half := t.nfft / 2
	frameBuf := make([]core.Real, t.nfft)
	for i := 0; i < nFrames; i++ {
		if len(frames[i]) != t.nfft {
			return core.NewError("stft.Transform.ProcessSignal", core.InvalidSize, nil)
		}
		start := i*t.hop - half
		if err := framing.FetchFrame(frameBuf, signal, start, framing.PadZero); err != nil {
			return err
		}
		if err := t.Process(frameBuf, frames[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReconstructSignal is a whole-signal convenience built on Reconstruct:
// it calls Reconstruct once per frame into a frame-local (outAdd, normAdd)
// pair, then overlap-adds each into out at frame i's position
// i*hop - nfft/2, silently dropping writes that fall outside out (spec.md
// §4.F's overlap_add contract), and finally divides by the accumulated
// norm wherever it exceeds a small epsilon.
func (t *Transform) ReconstructSignal(out []core.Real, frames [][]core.Complex) error {
	nFrames := len(frames)
	half := t.nfft / 2
	for i := range out {
		out[i] = 0
	}
	norm := make([]core.Real, len(out))
	frameOut := make([]core.Real, t.nfft)
	frameNorm := make([]core.Real, t.nfft)
	for i := 0; i < nFrames; i++ {
		if len(frames[i]) != t.nfft {
			return core.NewError("stft.Transform.ReconstructSignal", core.InvalidSize, nil)
		}
		for j := range frameOut {
			frameOut[j] = 0
			frameNorm[j] = 0
		}
		if err := t.Reconstruct(frames[i], frameOut, frameNorm); err != nil {
			return err
		}
		start := i*t.hop - half
		for j := 0; j < t.nfft; j++ {
			idx := start + j
			if idx < 0 || idx >= len(out) {
				continue
			}
			out[idx] += frameOut[j]
			norm[idx] += frameNorm[j]
		}
	}
	for i := range out {
		if norm[i] > 1e-8 {
			out[i] /= norm[i]
		}
	}
	return nil
}

// Spectrogram computes the magnitude spectrogram of signal: mags[i][k] =
// |STFT(signal)[i][k]| for k=0..nfft-1, convenience wrapper over
// ProcessSignal.
func (t *Transform) Spectrogram(signal []core.Real, mags [][]core.Real) error {
	nFrames := t.NumFrames(len(signal))
	if len(mags) != nFrames {
		return core.NewError("stft.Transform.Spectrogram", core.InvalidSize, nil)
	}
	frames := make([][]core.Complex, nFrames)
	for i := range frames {
		frames[i] = make([]core.Complex, t.nfft)
	}
	if err := t.ProcessSignal(signal, frames); err != nil {
		return err
	}
	for i, row := range frames {
		if len(mags[i]) != len(row) {
			return core.NewError("stft.Transform.Spectrogram", core.InvalidSize, nil)
		}
		for k, v := range row {
			mags[i][k] = core.Hypot(real(v), imag(v))
		}
	}
	return nil
}
