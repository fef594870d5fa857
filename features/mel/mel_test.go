package mel

import (
	"math"
	"testing"

	"vv-dsp/core"
)

func TestHzMelRoundTrip(t *testing.T) {
	for _, hz := range []core.Real{0, 100, 440, 1000, 8000} {
		m := HzToMel(hz)
		back := MelToHz(m)
		if math.Abs(float64(back-hz)) > 1e-2 {
			t.Errorf("round trip(%v) = %v, want %v", hz, back, hz)
		}
	}
}

func TestHzToMelKnownValue(t *testing.T) {
	// 1000 Hz is the classic ~1000 mel reference point for HTK-style mel.
	got := HzToMel(1000)
	if math.Abs(float64(got)-1000) > 50 {
		t.Errorf("HzToMel(1000) = %v, want near 1000", got)
	}
}

func TestFilterBankOutputNonNegative(t *testing.T) {
	nfft := 512
	fb, err := NewFilterBank(26, nfft, 16000, 300, 8000)
	if err != nil {
		t.Fatal(err)
	}
	power := make([]core.Real, nfft/2+1)
	for i := range power {
		power[i] = core.Real(i % 5)
	}
	out := make([]core.Real, fb.NFilters())
	if err := fb.Apply(out, power, false, -10); err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v < 0 {
			t.Errorf("filter %d output %v is negative", i, v)
		}
	}
}

func TestFilterBankAreaNormalized(t *testing.T) {
	nfft := 512
	fb, err := NewFilterBank(26, nfft, 16000, 300, 8000)
	if err != nil {
		t.Fatal(err)
	}
	// A flat unit power spectrum makes each filter's weighted sum equal
	// its own weight sum; area normalization (sum of weights = 1, per
	// spec.md §4.N) should then make every filter output exactly 1.
	power := make([]core.Real, nfft/2+1)
	for i := range power {
		power[i] = 1
	}
	out := make([]core.Real, fb.NFilters())
	if err := fb.Apply(out, power, false, -10); err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if math.Abs(float64(v)-1) > 1e-4 {
			t.Errorf("filter %d output %v on flat spectrum, want 1 (area-normalized)", i, v)
		}
	}
}

func TestFilterBankInvalidRange(t *testing.T) {
	if _, err := NewFilterBank(26, 512, 16000, 300, 20000); core.StatusOf(err) != core.OutOfRange {
		t.Fatal("expected OutOfRange for hiHz > Nyquist")
	}
}

func TestMFCCLiftering(t *testing.T) {
	logMel := make([]core.Real, 26)
	for i := range logMel {
		logMel[i] = core.Real(math.Sin(float64(i)))
	}
	out := make([]core.Real, 13)
	if err := MFCC(out, logMel, 22); err != nil {
		t.Fatal(err)
	}
	unliftered := make([]core.Real, 13)
	MFCC(unliftered, logMel, 0)
	same := true
	for i := range out {
		if out[i] != unliftered[i] {
			same = false
		}
	}
	if same {
		t.Fatal("liftering had no effect")
	}
}
