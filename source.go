package xorwow

import "math/rand"

// NewSource returns a rand.Source64 backed by an engine at subsequence 0,
// offset 0, so xorwow streams can drive math/rand consumers.
func NewSource(seed uint64) rand.Source {
	return &source{e: New(seed, 0, 0)}
}

type source struct {
	e *Engine
}

var _ rand.Source64 = (*source)(nil)

// Uint64 concatenates two consecutive stream values, high word first.
func (s *source) Uint64() uint64 {
	hi := uint64(s.e.Next())
	lo := uint64(s.e.Next())
	return hi<<32 | lo
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *source) Seed(seed int64) {
	s.e = New(uint64(seed), 0, 0)
}
