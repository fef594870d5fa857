//go:build !vvdsp_f64

package core

import "github.com/chewxy/math32"

// Scalar math routing for the float32 build. Every transcendental used on
// the audio-rate path (windows, resampler kernel, Mel/MFCC, biquad
// synthesis) goes through chewxy/math32 instead of converting through
// float64 and back, which is the whole point of choosing Real = float32.

const Pi = math32.Pi

func Sin(x Real) Real          { return math32.Sin(x) }
func Cos(x Real) Real          { return math32.Cos(x) }
func Sincos(x Real) (Real, Real) { return math32.Sincos(x) }
func Exp(x Real) Real          { return math32.Exp(x) }
func Log(x Real) Real          { return math32.Log(x) }
func Log10(x Real) Real        { return math32.Log10(x) }
func Sqrt(x Real) Real         { return math32.Sqrt(x) }
func Atan2(y, x Real) Real     { return math32.Atan2(y, x) }
func Hypot(x, y Real) Real     { return math32.Hypot(x, y) }
func Abs(x Real) Real          { return math32.Abs(x) }
func Floor(x Real) Real        { return math32.Floor(x) }
func Ceil(x Real) Real         { return math32.Ceil(x) }
func Round(x Real) Real        { return math32.Round(x) }
func Mod(x, y Real) Real       { return math32.Mod(x, y) }
func Pow(x, y Real) Real       { return math32.Pow(x, y) }
func IsNaN(x Real) bool        { return math32.IsNaN(x) }
func IsInf(x Real) bool        { return math32.IsInf(x, 0) }
func Max(x, y Real) Real       { return math32.Max(x, y) }
func Min(x, y Real) Real       { return math32.Min(x, y) }

// BesselI0 evaluates the zeroth-order modified Bessel function of the
// first kind via its power series, truncated when the next term falls
// below 1e-12 relative to the running sum (per spec.md §4.C, Kaiser
// window construction).
func BesselI0(x Real) Real {
	var sum Real = 1
	var term Real = 1
	halfX := x / 2
	for k := 1; k < 64; k++ {
		term *= (halfX * halfX) / Real(k*k)
		sum += term
		if term < 1e-12*sum {
			break
		}
	}
	return sum
}
