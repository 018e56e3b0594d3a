package xorwow

import (
	"math"

	"github.com/nozzle/xorwow/internal/math32"
)

// Float64 returns a uniform float64 in [0, 1) with full 53-bit precision,
// consuming two values of the stream.
func (e *Engine) Float64() float64 {
	a := e.Next() >> 5
	b := e.Next() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Float32 returns a uniform float32 in [0, 1), consuming one value.
func (e *Engine) Float32() float32 {
	return float32(e.Next()>>8) / (1 << 24)
}

// Uniform returns a uniform float64 in [low, high).
func (e *Engine) Uniform(low, high float64) float64 {
	return low + (high-low)*e.Float64()
}

// UniformFloat32 returns a uniform float32 in [low, high).
func (e *Engine) UniformFloat32(low, high float32) float32 {
	return low + (high-low)*e.Float32()
}

// NormFloat64 returns a normally distributed float64 with mean 0 and
// stddev 1 using the Box-Muller transform. The transform yields a pair;
// one value is returned and the other is cached, so every second call is
// answered from the cache without consuming the stream.
func (e *Engine) NormFloat64() float64 {
	if e.n64.ok {
		e.n64.ok = false
		return e.n64.val
	}
	for {
		u1 := e.Float64()
		if u1 <= 1e-10 {
			continue
		}
		u2 := e.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		theta := 2.0 * math.Pi * u2
		e.n64 = normalCache[float64]{val: r * math.Sin(theta), ok: true}
		return r * math.Cos(theta)
	}
}

// NormFloat32 returns a normally distributed float32 with mean 0 and
// stddev 1. It keeps its own one-slot cache, independent of the float64
// cache.
func (e *Engine) NormFloat32() float32 {
	if e.n32.ok {
		e.n32.ok = false
		return e.n32.val
	}
	for {
		u1 := e.Float32()
		if u1 == 0 {
			continue
		}
		u2 := e.Float32()
		r := math32.Sqrt(-2.0 * math32.Log(u1))
		theta := 2.0 * math32.Pi * u2
		e.n32 = normalCache[float32]{val: r * math32.Sin(theta), ok: true}
		return r * math32.Cos(theta)
	}
}
