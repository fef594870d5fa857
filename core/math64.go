//go:build vvdsp_f64

package core

import "math"

const Pi = math.Pi

func Sin(x Real) Real            { return math.Sin(x) }
func Cos(x Real) Real            { return math.Cos(x) }
func Sincos(x Real) (Real, Real) { return math.Sincos(x) }
func Exp(x Real) Real            { return math.Exp(x) }
func Log(x Real) Real            { return math.Log(x) }
func Log10(x Real) Real          { return math.Log10(x) }
func Sqrt(x Real) Real           { return math.Sqrt(x) }
func Atan2(y, x Real) Real       { return math.Atan2(y, x) }
func Hypot(x, y Real) Real       { return math.Hypot(x, y) }
func Abs(x Real) Real            { return math.Abs(x) }
func Floor(x Real) Real          { return math.Floor(x) }
func Ceil(x Real) Real           { return math.Ceil(x) }
func Round(x Real) Real          { return math.Round(x) }
func Mod(x, y Real) Real         { return math.Mod(x, y) }
func Pow(x, y Real) Real         { return math.Pow(x, y) }
func IsNaN(x Real) bool          { return math.IsNaN(x) }
func IsInf(x Real) bool          { return math.IsInf(x, 0) }
func Max(x, y Real) Real         { return math.Max(x, y) }
func Min(x, y Real) Real         { return math.Min(x, y) }

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
