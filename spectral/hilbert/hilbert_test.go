package hilbert

import (
	"math"
	"testing"

	"vv-dsp/core"
)

func TestAnalyticSignalOfCosineIsComplexExponential(t *testing.T) {
	n := 64
	freq := 4.0
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(math.Cos(2 * math.Pi * freq * float64(i) / float64(n)))
	}
	out := make([]core.Complex, n)
	if err := Analytic(out, x); err != nil {
		t.Fatal(err)
	}
	for i := 10; i < n-10; i++ {
		mag := math.Hypot(float64(real(out[i])), float64(imag(out[i])))
		if math.Abs(mag-1) > 0.1 {
			t.Errorf("|analytic[%d]| = %v, want ~1", i, mag)
		}
	}
}

func TestInstantaneousPhaseMatchesKnownTone(t *testing.T) {
	n := 128
	freq := 5.0
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(math.Cos(2 * math.Pi * freq * float64(i) / float64(n)))
	}
	analytic := make([]core.Complex, n)
	Analytic(analytic, x)
	phase := make([]core.Real, n)
	if err := InstantaneousPhase(phase, analytic); err != nil {
		t.Fatal(err)
	}
	// A tone at freq cycles over n samples advances phase by
	// 2*pi*freq/n radians per sample; the unwrapped track should grow
	// roughly linearly rather than wrap back into (-pi,pi] each cycle.
	perSample := 2 * math.Pi * freq / float64(n)
	for i := 10; i < n-10; i++ {
		want := perSample * float64(i)
		if math.Abs(float64(phase[i])-want) > 0.2 {
			t.Errorf("phase[%d] = %v, want ~%v (unwrapped)", i, phase[i], want)
		}
	}
}

func TestInstantaneousFrequencyMatchesToneFrequency(t *testing.T) {
	n := 256
	freq := 0.05 // cycles/sample, i.e. Hz at fs=1
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(math.Cos(2 * math.Pi * freq * float64(i)))
	}
	analytic := make([]core.Complex, n)
	Analytic(analytic, x)
	phase := make([]core.Real, n)
	if err := InstantaneousPhase(phase, analytic); err != nil {
		t.Fatal(err)
	}
	instFreq := make([]core.Real, n)
	if err := InstantaneousFrequency(instFreq, phase, 1); err != nil {
		t.Fatal(err)
	}
	var mean float64
	count := 0
	for i := 20; i < n-20; i++ {
		mean += float64(instFreq[i])
		count++
	}
	mean /= float64(count)
	if math.Abs(mean-freq) > 0.01 {
		t.Errorf("mean instantaneous frequency = %v, want ~%v", mean, freq)
	}
}
