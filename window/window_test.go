package window

import (
	"math"
	"testing"

	"vv-dsp/core"
)

func TestHannN8ConcreteValues(t *testing.T) {
	out := make([]core.Real, 8)
	if err := Generate(out, Hann, 0); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.1883, 0.6113, 0.9505, 0.9505, 0.6113, 0.1883, 0}
	for i, w := range want {
		if math.Abs(float64(out[i])-w) > 1e-4 {
			t.Errorf("Hann[%d] = %v, want %v", i, out[i], w)
		}
	}
}

func TestHannEdges(t *testing.T) {
	out := make([]core.Real, 16)
	Generate(out, Hann, 0)
	if math.Abs(float64(out[0]))+math.Abs(float64(out[len(out)-1])) > 2e-6 {
		t.Fatalf("Hann edges not ~0: %v %v", out[0], out[len(out)-1])
	}
}

func TestBoxcarAllOnes(t *testing.T) {
	out := make([]core.Real, 10)
	Generate(out, Rectangular, 0)
	for i, v := range out {
		if v != 1 {
			t.Errorf("Rectangular[%d] = %v, want 1", i, v)
		}
	}
}

func TestSymmetryAllKinds(t *testing.T) {
	kinds := []Kind{Rectangular, Hann, Hamming, Blackman, BlackmanHarris, Nuttall,
		Bartlett, Bohman, Cosine, Flattop, Kaiser, Tukey, Planck}
	for _, k := range kinds {
		for _, n := range []int{2, 3, 7, 16, 33} {
			out := make([]core.Real, n)
			param := core.Real(0)
			if k == Kaiser {
				param = 8.6
			}
			if k == Tukey {
				param = 0.5
			}
			if err := Generate(out, k, param); err != nil {
				t.Fatalf("kind %d n=%d: %v", k, n, err)
			}
			for i := 0; i < n/2; i++ {
				d := out[i] - out[n-1-i]
				if d < 0 {
					d = -d
				}
				if float64(d) > 1e-6 {
					t.Errorf("kind %d n=%d not symmetric at %d: %v vs %v", k, n, i, out[i], out[n-1-i])
				}
			}
			maxv := out[0]
			for _, v := range out {
				if v > maxv {
					maxv = v
				}
			}
			if float64(maxv) > 1.0+1e-3 {
				t.Errorf("kind %d n=%d peak %v exceeds 1.0+1e-3", k, n, maxv)
			}
		}
	}
}

func TestWindowLengthOne(t *testing.T) {
	out := make([]core.Real, 1)
	if err := Generate(out, Hann, 0); err != nil {
		t.Fatal(err)
	}
	if out[0] != 1 {
		t.Fatalf("N=1 window = %v, want 1", out[0])
	}
}

func TestInvalidSizeZero(t *testing.T) {
	var out []core.Real
	if err := Generate(out, Hann, 0); err == nil {
		t.Fatal("expected error for zero-length window")
	} else if core.StatusOf(err) != core.InvalidSize {
		t.Fatalf("status = %v, want InvalidSize", core.StatusOf(err))
	}
}

func TestUnknownKind(t *testing.T) {
	out := make([]core.Real, 4)
	if err := Generate(out, Kind(999), 0); err == nil {
		t.Fatal("expected error for unknown kind")
	} else if core.StatusOf(err) != core.OutOfRange {
		t.Fatalf("status = %v, want OutOfRange", core.StatusOf(err))
	}
}

func TestTukeyExtremes(t *testing.T) {
	n := 16
	rect := make([]core.Real, n)
	Generate(rect, Tukey, 0)
	for i, v := range rect {
		if v != 1 {
			t.Errorf("Tukey(alpha=0)[%d] = %v, want 1 (rectangular)", i, v)
		}
	}

	hann := make([]core.Real, n)
	tukeyHann := make([]core.Real, n)
	Generate(hann, Hann, 0)
	Generate(tukeyHann, Tukey, 1.0)
	for i := range hann {
		if math.Abs(float64(hann[i]-tukeyHann[i])) > 1e-5 {
			t.Errorf("Tukey(alpha=1)[%d] = %v, want Hann %v", i, tukeyHann[i], hann[i])
		}
	}
}

func TestPlanckEdgesAreZero(t *testing.T) {
	out := make([]core.Real, 32)
	Generate(out, Planck, 0.1)
	if out[0] != 0 || out[len(out)-1] != 0 {
		t.Fatalf("Planck-taper edges = %v, %v, want 0, 0", out[0], out[len(out)-1])
	}
}
