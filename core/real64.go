//go:build vvdsp_f64

package core

// Real is the library-wide floating point precision for the vvdsp_f64 build.
type Real = float64

// Complex is the library-wide complex pair for the vvdsp_f64 build.
type Complex = complex128

// Precision64 reports whether this build uses float64 (vvdsp_f64 tag).
const Precision64 = true
