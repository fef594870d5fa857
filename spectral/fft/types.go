// Package fft implements spec.md §4.D: plan creation/execution/destruction,
// multi-backend dispatch through a closed vtable, R2C/C2R Hermitian
// packing, and the forward-unscaled / backward-1/n scaling convention.
//
// The reference backend (radix-2 Cooley-Tukey for powers of two, naive
// O(n^2) DFT otherwise) is hand-written here, because building it is this
// component's own deliverable (spec.md §1, §4.D) — it is not delegated to
// an external FFT crate. A second, optional backend wraps
// gonum.org/v1/gonum/fourier as the "FFTW-like" accelerated path the
// vtable design in spec.md §9 anticipates.
package fft

import "vv-dsp/core"

// Kind is the transform shape, per spec.md §3.
type Kind int

const (
	C2C Kind = iota
	R2C
	C2R
)

func (k Kind) String() string {
	switch k {
	case C2C:
		return "C2C"
	case R2C:
		return "R2C"
	case C2R:
		return "C2R"
	default:
		return "UNKNOWN_KIND"
	}
}

// Direction is the transform direction, per spec.md §3.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "FORWARD"
	case Backward:
		return "BACKWARD"
	default:
		return "UNKNOWN_DIRECTION"
	}
}

// BackendID identifies one member of the closed backend family (spec.md
// §9: "a small enum", not open dynamic dispatch).
type BackendID int

const (
	// BackendReference is the hand-written radix-2 + naive-DFT backend.
	// Always available.
	BackendReference BackendID = iota
	// BackendGonum wraps gonum.org/v1/gonum/fourier as an optional,
	// potentially-accelerated backend. Available whenever the module is
	// compiled in (no hardware requirement), unlike a true FFTW/FFTS
	// binding which could be absent at link time.
	BackendGonum
)

func (b BackendID) String() string {
	switch b {
	case BackendReference:
		return "reference"
	case BackendGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// c2cPlan is the minimal per-backend resource: a plan that executes one
// fixed direction of a complex-to-complex transform of a fixed size n.
// R2C/C2R packing (spec.md §4.D) is implemented once, generically, on top
// of c2cPlan in plan.go — it is not a per-backend concern.
type c2cPlan interface {
	execute(out, in []core.Complex) error
	close()
}

// backend is the vtable entry spec.md §9 describes: {make, execute
// (via the returned plan), free, is_available, name}.
type backend interface {
	id() BackendID
	name() string
	available() bool
	makeC2C(n int, dir Direction) (c2cPlan, error)
}
