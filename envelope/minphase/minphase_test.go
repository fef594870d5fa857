package minphase

import (
	"math"
	"testing"

	"vv-dsp/core"
	"vv-dsp/spectral/fft"
)

func magnitudeSpectrum(x []core.Real) []core.Real {
	n := len(x)
	r2c, _ := fft.MakePlan(n, fft.R2C, fft.Forward)
	defer r2c.Destroy()
	spec := make([]core.Complex, n/2+1)
	r2c.ExecuteR2C(spec, x)
	mags := make([]core.Real, n/2+1)
	for i, v := range spec {
		mags[i] = core.Hypot(real(v), imag(v))
	}
	return mags
}

func TestReconstructPreservesMagnitudeSpectrum(t *testing.T) {
	n := 32
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(math.Exp(-float64(i)*0.2)) * core.Real(1+0.3*math.Sin(float64(i)))
	}
	wantMag := magnitudeSpectrum(x)

	out := make([]core.Real, n)
	if err := Reconstruct(out, x); err != nil {
		t.Fatal(err)
	}
	gotMag := magnitudeSpectrum(out)
	for k := range wantMag {
		if math.Abs(float64(gotMag[k]-wantMag[k])) > 1e-2*float64(wantMag[k]+1) {
			t.Errorf("mag[%d] = %v, want %v", k, gotMag[k], wantMag[k])
		}
	}
}

func TestReconstructInvalidSize(t *testing.T) {
	out := make([]core.Real, 3)
	if err := Reconstruct(out, make([]core.Real, 4)); core.StatusOf(err) != core.InvalidSize {
		t.Fatal("expected InvalidSize for mismatched lengths")
	}
}
