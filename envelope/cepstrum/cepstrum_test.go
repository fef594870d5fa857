package cepstrum

import (
	"math"
	"testing"

	"vv-dsp/core"
)

func TestRealCepstrumOfImpulseIsZero(t *testing.T) {
	n := 32
	x := make([]core.Real, n)
	x[0] = 1
	c := make([]core.Real, n)
	if err := Real(c, x); err != nil {
		t.Fatal(err)
	}
	for i, v := range c {
		if math.Abs(float64(v)) > 1e-3 {
			t.Errorf("c[%d] = %v, want ~0 for a flat-magnitude impulse", i, v)
		}
	}
}

func TestRealCepstrumInvalidSize(t *testing.T) {
	c := make([]core.Real, 3)
	if err := Real(c, make([]core.Real, 4)); core.StatusOf(err) != core.InvalidSize {
		t.Fatal("expected InvalidSize for mismatched lengths")
	}
}
