// Package math32 provides float32 math utilities for the draw paths.
package math32

import "math"

// Pi is the float32 circle constant.
const Pi = float32(math.Pi)

// Sqrt computes the square root of a float32.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Log computes the natural log of a float32.
func Log(x float32) float32 {
	return float32(math.Log(float64(x)))
}

// Cos computes the cosine of a float32.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Sin computes the sine of a float32.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Abs returns the absolute value of a float32.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// IsNaN checks whether a float32 is NaN.
func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}

// IsInf checks whether a float32 is infinite.
func IsInf(x float32) bool {
	return math.IsInf(float64(x), 0)
}
