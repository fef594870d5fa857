package fft

import (
	"math"
	"testing"

	"vv-dsp/core"
)

func approxEqual(a, b core.Real, tol float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tol
}

func TestImpulseForwardIsAllOnes(t *testing.T) {
	n := 8
	in := make([]core.Complex, n)
	in[0] = core.Complex(complex(core.Real(1), 0))
	out := make([]core.Complex, n)

	p, err := MakePlan(n, C2C, Forward)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Destroy()
	if err := p.ExecuteC2C(out, in); err != nil {
		t.Fatal(err)
	}
	for k, v := range out {
		if !approxEqual(real(v), 1, 1e-5) || !approxEqual(imag(v), 0, 1e-5) {
			t.Errorf("bin %d = %v, want 1+0i", k, v)
		}
	}
}

func TestC2CRoundTrip(t *testing.T) {
	for _, n := range []int{8, 16, 32} {
		in := make([]core.Complex, n)
		for i := range in {
			in[i] = core.Complex(complex(core.Real(math.Sin(2*math.Pi*float64(i)/float64(n))), 0))
		}
		fwd, err := MakePlan(n, C2C, Forward)
		if err != nil {
			t.Fatal(err)
		}
		defer fwd.Destroy()
		bwd, err := MakePlan(n, C2C, Backward)
		if err != nil {
			t.Fatal(err)
		}
		defer bwd.Destroy()

		spec := make([]core.Complex, n)
		if err := fwd.ExecuteC2C(spec, in); err != nil {
			t.Fatal(err)
		}
		back := make([]core.Complex, n)
		if err := bwd.ExecuteC2C(back, spec); err != nil {
			t.Fatal(err)
		}
		for i := range in {
			if !approxEqual(real(back[i]), real(in[i]), 1e-3) {
				t.Errorf("n=%d round trip[%d] = %v, want %v", n, i, back[i], in[i])
			}
		}
	}
}

func TestNonPowerOfTwoRoundTrip(t *testing.T) {
	n := 12
	in := make([]core.Complex, n)
	for i := range in {
		in[i] = core.Complex(complex(core.Real(i), core.Real(-i)))
	}
	fwd, _ := MakePlan(n, C2C, Forward)
	defer fwd.Destroy()
	bwd, _ := MakePlan(n, C2C, Backward)
	defer bwd.Destroy()

	spec := make([]core.Complex, n)
	fwd.ExecuteC2C(spec, in)
	back := make([]core.Complex, n)
	bwd.ExecuteC2C(back, spec)
	for i := range in {
		if !approxEqual(real(back[i]), real(in[i]), 1e-3) || !approxEqual(imag(back[i]), imag(in[i]), 1e-3) {
			t.Errorf("round trip[%d] = %v, want %v", i, back[i], in[i])
		}
	}
}

func TestR2CC2RRoundTrip(t *testing.T) {
	n := 8
	in := make([]core.Real, n)
	for i := range in {
		in[i] = core.Real(math.Sin(2 * math.Pi * float64(i) / 8))
	}
	r2c, err := MakePlan(n, R2C, Forward)
	if err != nil {
		t.Fatal(err)
	}
	defer r2c.Destroy()
	c2r, err := MakePlan(n, C2R, Backward)
	if err != nil {
		t.Fatal(err)
	}
	defer c2r.Destroy()

	spec := make([]core.Complex, n/2+1)
	if err := r2c.ExecuteR2C(spec, in); err != nil {
		t.Fatal(err)
	}
	back := make([]core.Real, n)
	if err := c2r.ExecuteC2R(back, spec); err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if !approxEqual(back[i], in[i], 1e-3) {
			t.Errorf("R2C/C2R round trip[%d] = %v, want %v", i, back[i], in[i])
		}
	}
}

func TestForwardIsUnscaled(t *testing.T) {
	n := 16
	in := make([]core.Complex, n)
	in[3] = core.Complex(complex(core.Real(1), 0))
	fwd, _ := MakePlan(n, C2C, Forward)
	defer fwd.Destroy()
	spec := make([]core.Complex, n)
	fwd.ExecuteC2C(spec, in)

	// forward is unscaled: sum of |X[k]|^2 relates to energy without 1/n.
	var energy core.Real
	for _, v := range spec {
		energy += real(v)*real(v) + imag(v)*imag(v)
	}
	want := core.Real(n) // Parseval: sum|x|^2 * n == sum|X|^2 for unit impulse, |x|^2 sum = 1
	if !approxEqual(energy, want, 1e-3) {
		t.Errorf("unscaled forward energy = %v, want %v", energy, want)
	}
}

func TestGonumBackendMatchesReference(t *testing.T) {
	if !IsBackendAvailable(BackendGonum) {
		t.Skip("gonum backend not available")
	}
	n := 16
	in := make([]core.Complex, n)
	for i := range in {
		in[i] = core.Complex(complex(core.Real(math.Cos(float64(i))), core.Real(math.Sin(float64(i)))))
	}
	ref, _ := MakePlan(n, C2C, Forward, WithBackend(BackendReference))
	defer ref.Destroy()
	gon, _ := MakePlan(n, C2C, Forward, WithBackend(BackendGonum))
	defer gon.Destroy()

	refOut := make([]core.Complex, n)
	gonOut := make([]core.Complex, n)
	ref.ExecuteC2C(refOut, in)
	gon.ExecuteC2C(gonOut, in)
	for k := range refOut {
		if !approxEqual(real(refOut[k]), real(gonOut[k]), 1e-2) ||
			!approxEqual(imag(refOut[k]), imag(gonOut[k]), 1e-2) {
			t.Errorf("bin %d: reference=%v gonum=%v", k, refOut[k], gonOut[k])
		}
	}

	// Backward direction exercises the 1/n scaling convention explicitly:
	// the reference backend scales by 1/n internally, so if the gonum
	// backend's Sequence call used a different convention this would
	// disagree by a factor of n.
	refBwd, _ := MakePlan(n, C2C, Backward, WithBackend(BackendReference))
	defer refBwd.Destroy()
	gonBwd, _ := MakePlan(n, C2C, Backward, WithBackend(BackendGonum))
	defer gonBwd.Destroy()

	refBack := make([]core.Complex, n)
	gonBack := make([]core.Complex, n)
	refBwd.ExecuteC2C(refBack, refOut)
	gonBwd.ExecuteC2C(gonBack, refOut)
	for k := range refBack {
		if !approxEqual(real(refBack[k]), real(gonBack[k]), 1e-2) ||
			!approxEqual(imag(refBack[k]), imag(gonBack[k]), 1e-2) {
			t.Errorf("backward bin %d: reference=%v gonum=%v", k, refBack[k], gonBack[k])
		}
	}
}

func TestMakePlanInvalidSize(t *testing.T) {
	if _, err := MakePlan(0, C2C, Forward); core.StatusOf(err) != core.InvalidSize {
		t.Fatalf("status = %v, want InvalidSize", core.StatusOf(err))
	}
}

func TestExecuteWrongKindRejected(t *testing.T) {
	p, _ := MakePlan(8, C2C, Forward)
	defer p.Destroy()
	in := make([]core.Real, 8)
	out := make([]core.Complex, 5)
	if err := p.ExecuteR2C(out, in); core.StatusOf(err) != core.OutOfRange {
		t.Fatalf("status = %v, want OutOfRange", core.StatusOf(err))
	}
}
