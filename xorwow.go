// Package xorwow implements the XORWOW pseudo-random number generator with
// logarithmic skip-ahead, designed for assigning thousands of independent
// streams from one seed.
//
// XORWOW combines a 160-bit xorshift register with a 32-bit Weyl sequence
// (G. Marsaglia, "Xorshift RNGs", 2003). The overall period is split into
// subsequences of 2^67 values; an engine is positioned by (seed,
// subsequence, offset) and engines created with distinct subsequence
// indices never overlap in any practical run. Positioning uses precomputed
// GF(2) jump matrices, so construction costs O(log offset) matrix
// applications rather than replaying the stream.
//
// Each Engine is owned by a single goroutine; the shared jump tables are
// built once and read-only afterwards, so any number of engines can run
// concurrently without locking.
//
// Basic usage, one stream per worker:
//
//	eng := xorwow.New(seed, uint64(worker), 0)
//	v := eng.Next()
package xorwow

import "github.com/nozzle/xorwow/internal/gf2"

// Initial register and accumulator constants, and the seed scramble
// constants, match cuRAND so that identical (seed, subsequence, offset)
// tuples reproduce the same stream as device-side generators.
const (
	init0 = 123456789
	init1 = 362436069
	init2 = 521288629
	init3 = 88675123
	init4 = 5783321

	weylInit = 6615241
	weylStep = 362437

	scramble0 = 0xaad26b49
	scramble1 = 0xf7dcefdd
	mult0     = 1099087573
	mult1     = 2591861531
)

// SequenceLog2 is the log2 of the number of values in one subsequence.
const SequenceLog2 = gf2.SequenceLog2

// Engine is one XORWOW stream. The zero value is not positioned; use New.
type Engine struct {
	x [gf2.N]uint32 // xorshift register
	d uint32        // Weyl sequence value

	// One-slot caches for the unconsumed half of a Box-Muller pair,
	// one per output width. See NormFloat64 and NormFloat32.
	n32 normalCache[float32]
	n64 normalCache[float64]
}

// normalCache holds the second output of a Box-Muller pair until the next
// normal draw of the same width consumes it.
type normalCache[T float32 | float64] struct {
	val T
	ok  bool
}

// New returns an engine positioned at the given offset within the given
// subsequence. A subsequence is 2^67 values long. Construction is
// deterministic: identical arguments always yield an identical stream.
func New(seed, subsequence, offset uint64) *Engine {
	e := &Engine{
		x: [gf2.N]uint32{init0, init1, init2, init3, init4},
		d: weylInit,
	}

	// Scramble the fixed starting state with the two seed halves so that
	// distinct seeds land on decorrelated points of the period.
	s0 := uint32(seed) ^ scramble0
	s1 := uint32(seed>>32) ^ scramble1
	t0 := mult0 * s0
	t1 := mult1 * s1
	e.x[0] += t0
	e.x[1] ^= t0
	e.x[2] += t1
	e.x[3] ^= t1
	e.x[4] += t0
	e.d += t1 + t0

	e.SkipSubsequence(subsequence)
	e.Skip(offset)
	return e
}

// Next returns the next value of the stream. It mutates the register in
// place, advances the Weyl accumulator, and cannot fail.
func (e *Engine) Next() uint32 {
	t := e.x[0] ^ (e.x[0] >> 2)
	e.x[0] = e.x[1]
	e.x[1] = e.x[2]
	e.x[2] = e.x[3]
	e.x[3] = e.x[4]
	e.x[4] = (e.x[4] ^ (e.x[4] << 4)) ^ (t ^ (t << 1))

	e.d += weylStep

	return e.d + e.x[4]
}

// Skip advances the stream by offset values, exactly as if Next had been
// called offset times with the results discarded, in O(log offset) matrix
// applications. Skip(0) is a no-op.
func (e *Engine) Skip(offset uint64) {
	e.jump(offset, gf2.StepTable())

	// offset Weyl steps collapse to a single multiply mod 2^32.
	e.d += uint32(offset) * weylStep
}

// SkipSubsequence advances the stream by count whole subsequences, i.e.
// count * 2^67 values. The Weyl accumulator needs no adjustment: the
// subsequence length is an exact multiple of 2^32, so its value is
// invariant under whole-subsequence jumps.
func (e *Engine) SkipSubsequence(count uint64) {
	e.jump(count, gf2.SequenceTable())
}

// jump advances the register by v logical steps, where one logical step is
// whatever one application of table entry 0 represents (one transition for
// the step table, one subsequence for the sequence table).
//
// v is consumed in 2-bit windows, one per table entry, applying entry i
// between 0 and 3 times; the final entry is allotted the 1-bit window that
// remains of a 64-bit count. Any magnitude past the table's reach is
// handled by exponentiation by squaring on the last precomputed matrix.
func (e *Engine) jump(v uint64, table *gf2.Table) {
	x := (*gf2.Vector)(&e.x)

	mi := 0
	for v > 0 && mi < gf2.TableLen {
		l := gf2.JumpLog2
		if mi == gf2.TableLen-1 {
			l = 1
		}
		window := v & (uint64(1)<<l - 1)
		for i := uint64(0); i < window; i++ {
			gf2.MulVec(&table[mi], x)
		}
		mi++
		v >>= l
	}
	if v == 0 {
		return
	}

	var a, sq gf2.Matrix
	gf2.CopyMat(&a, &table[gf2.TableLen-1])
	for {
		gf2.CopyMat(&sq, &a)
		gf2.MulMat(&sq, &a)
		gf2.CopyMat(&a, &sq)
		if v&1 != 0 {
			gf2.MulVec(&a, x)
		}
		v >>= 1
		if v == 0 {
			return
		}
	}
}
