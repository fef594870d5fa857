package dct

import (
	"math"
	"testing"

	"vv-dsp/core"
)

func TestForward2Inverse3RoundTrip(t *testing.T) {
	n := 16
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(math.Sin(float64(i) * 0.7))
	}
	spec := make([]core.Real, n)
	if err := Forward2(spec, x); err != nil {
		t.Fatal(err)
	}
	back := make([]core.Real, n)
	if err := Inverse3(back, spec); err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if math.Abs(float64(back[i]-x[i])) > 1e-3 {
			t.Errorf("round trip[%d] = %v, want %v", i, back[i], x[i])
		}
	}
}

func TestForward2MatchesDirectDefinition(t *testing.T) {
	n := 8
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(i + 1)
	}
	got := make([]core.Real, n)
	Forward2(got, x)
	for k := 0; k < n; k++ {
		var want float64
		for i := 0; i < n; i++ {
			want += float64(x[i]) * math.Cos(math.Pi*(float64(i)+0.5)*float64(k)/float64(n))
		}
		if math.Abs(float64(got[k])-want) > 1e-3 {
			t.Errorf("bin %d = %v, want %v", k, got[k], want)
		}
	}
}

func TestForward4Inverse4RoundTrip(t *testing.T) {
	n := 8
	x := make([]core.Real, n)
	for i := range x {
		x[i] = core.Real(math.Cos(float64(i) * 0.4))
	}
	spec := make([]core.Real, n)
	Forward4(spec, x)
	back := make([]core.Real, n)
	Inverse4(back, spec)
	for i := range x {
		if math.Abs(float64(back[i]-x[i])) > 1e-3 {
			t.Errorf("round trip[%d] = %v, want %v", i, back[i], x[i])
		}
	}
}
