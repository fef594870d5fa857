//go:build !vvdsp_f64

// Package core provides the numeric primitives shared across every vv-dsp
// package: the library-wide real/complex scalar choice, the closed Status
// taxonomy, and the per-thread floating-point environment control.
package core

// Real is the library-wide floating point precision. It is fixed at
// compile time by the vvdsp_f64 build tag; there is no per-call override
// anywhere in this module, matching the single compile-time switch the
// spec requires.
type Real = float32

// Complex is the library-wide complex pair. Go's complex64 already stores
// its real and imaginary parts as two contiguous float32 values, which is
// exactly the interleaved re/im layout the R2C/C2R packing rules depend
// on — no custom struct is needed.
type Complex = complex64

// Precision64 reports whether this build uses float64 (vvdsp_f64 tag).
const Precision64 = false
