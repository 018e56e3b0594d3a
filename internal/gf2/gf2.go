// Package gf2 provides the fixed-size linear algebra over GF(2) that backs
// XORWOW skip-ahead, together with the two precomputed jump tables.
//
// A state vector is the 160-bit xorshift register viewed as 5 uint32 words.
// Because the register transition is linear over GF(2) (XOR is addition,
// AND is multiplication), advancing the register by any fixed number of
// steps is a matrix, and advancing by an arbitrary count reduces to matrix
// products instead of literal iteration.
//
// A matrix stores the image of each of the 160 basis bits: for input word i
// and bit j, the 5-word column at index (i*32+j)*5 is the transform applied
// to the vector with only that bit set. Applying a matrix to a vector
// XOR-accumulates the columns selected by the set bits of the vector.
package gf2

import "sync"

const (
	// N is the number of 32-bit words in a state vector.
	N = 5
	// WordBits is the width of one state word.
	WordBits = 32
	// MatrixSize is the number of uint32 words in one jump matrix.
	MatrixSize = N * WordBits * N
	// TableLen is the number of precomputed matrices per jump table.
	TableLen = 32
	// JumpLog2 is the bit width of one jump-table window: each successive
	// table entry advances the state 4 times as far as the previous one.
	JumpLog2 = 2
	// SequenceLog2 is the log2 of the subsequence length. One entry of the
	// sequence table advances the register a whole subsequence (2^67 steps).
	SequenceLog2 = 67
)

// Vector is the 160-bit register state.
type Vector [N]uint32

// Matrix is a linear map over Vector, word-packed as described in the
// package comment.
type Matrix [MatrixSize]uint32

// Table is one precomputed ladder of jump matrices. Entry i is entry i-1
// raised to the 4th power, so entry i of the step table is A^(4^i) and
// entry i of the sequence table is A^(4^i * 2^67).
type Table [TableLen]Matrix

// CopyVec copies src into dst.
func CopyVec(dst, src *Vector) {
	*dst = *src
}

// CopyMat copies src into dst.
func CopyMat(dst, src *Matrix) {
	*dst = *src
}

// MulVec computes v = m·v over GF(2).
func MulVec(m *Matrix, v *Vector) {
	var r Vector
	for i := 0; i < N; i++ {
		w := v[i]
		if w == 0 {
			continue
		}
		for j := 0; j < WordBits; j++ {
			if w&(1<<j) != 0 {
				c := (i*WordBits + j) * N
				for k := 0; k < N; k++ {
					r[k] ^= m[c+k]
				}
			}
		}
	}
	CopyVec(v, &r)
}

// MulMat computes a = b·a by transforming every column of a by b.
// a and b must not alias.
func MulMat(a, b *Matrix) {
	for c := 0; c < N*WordBits; c++ {
		var col Vector
		copy(col[:], a[c*N:c*N+N])
		MulVec(b, &col)
		copy(a[c*N:c*N+N], col[:])
	}
}

// Step applies one register transition in place. This is the recurrence
// the jump matrices are derived from; it deliberately excludes the Weyl
// accumulator, which is not part of the linear system.
func Step(v *Vector) {
	t := v[0] ^ (v[0] >> 2)
	v[0], v[1], v[2], v[3] = v[1], v[2], v[3], v[4]
	v[4] = (v[4] ^ (v[4] << 4)) ^ (t ^ (t << 1))
}

// Identity returns the identity map.
func Identity() *Matrix {
	m := new(Matrix)
	for i := 0; i < N; i++ {
		for j := 0; j < WordBits; j++ {
			m[(i*WordBits+j)*N+i] = 1 << j
		}
	}
	return m
}

// StepMatrix returns the one-step transition matrix A, built by running the
// recurrence over each basis vector.
func StepMatrix() *Matrix {
	m := new(Matrix)
	for i := 0; i < N; i++ {
		for j := 0; j < WordBits; j++ {
			var v Vector
			v[i] = 1 << j
			Step(&v)
			copy(m[(i*WordBits+j)*N:], v[:])
		}
	}
	return m
}

var (
	tablesOnce sync.Once
	stepTable  *Table
	seqTable   *Table
)

// StepTable returns the jump table whose entry i advances the register by
// 4^i steps. The table is built on first use and read-only afterwards;
// concurrent readers need no locking.
func StepTable() *Table {
	tablesOnce.Do(buildTables)
	return stepTable
}

// SequenceTable returns the jump table whose entry i advances the register
// by 4^i whole subsequences (4^i * 2^67 steps). Built together with the
// step table on first use.
func SequenceTable() *Table {
	tablesOnce.Do(buildTables)
	return seqTable
}

func buildTables() {
	st := new(Table)
	CopyMat(&st[0], StepMatrix())
	for i := 1; i < TableLen; i++ {
		matPow4(&st[i], &st[i-1])
	}

	// The sequence base is A squared 67 times: A^(2^67).
	base := StepMatrix()
	var tmp Matrix
	for i := 0; i < SequenceLog2; i++ {
		CopyMat(&tmp, base)
		MulMat(&tmp, base)
		CopyMat(base, &tmp)
	}
	sq := new(Table)
	CopyMat(&sq[0], base)
	for i := 1; i < TableLen; i++ {
		matPow4(&sq[i], &sq[i-1])
	}

	stepTable, seqTable = st, sq
}

// matPow4 computes dst = src^4.
func matPow4(dst, src *Matrix) {
	var sq Matrix
	CopyMat(&sq, src)
	MulMat(&sq, src)
	CopyMat(dst, &sq)
	MulMat(dst, &sq)
}
