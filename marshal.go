package xorwow

import (
	"encoding/binary"
	"fmt"
	"math"
)

// StateSize is the length in bytes of a marshaled engine: the 5-word
// register, the Weyl accumulator, the two cache-validity flags, and the two
// cached normal values, all little-endian.
const StateSize = 44

// MarshalBinary encodes the full engine state so a caller can checkpoint a
// stream and resume it later with UnmarshalBinary. The layout matches the
// in-memory state of device-side XORWOW generators word for word.
func (e *Engine) MarshalBinary() ([]byte, error) {
	buf := make([]byte, StateSize)
	for i, w := range e.x {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	binary.LittleEndian.PutUint32(buf[20:], e.d)
	binary.LittleEndian.PutUint32(buf[24:], flagWord(e.n32.ok))
	binary.LittleEndian.PutUint32(buf[28:], flagWord(e.n64.ok))
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(e.n32.val))
	binary.LittleEndian.PutUint64(buf[36:], math.Float64bits(e.n64.val))
	return buf, nil
}

// UnmarshalBinary restores an engine from MarshalBinary output.
func (e *Engine) UnmarshalBinary(data []byte) error {
	if len(data) != StateSize {
		return fmt.Errorf("xorwow: invalid state length %d, want %d", len(data), StateSize)
	}
	for i := range e.x {
		e.x[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	e.d = binary.LittleEndian.Uint32(data[20:])
	e.n32.ok = binary.LittleEndian.Uint32(data[24:]) != 0
	e.n64.ok = binary.LittleEndian.Uint32(data[28:]) != 0
	e.n32.val = math.Float32frombits(binary.LittleEndian.Uint32(data[32:]))
	e.n64.val = math.Float64frombits(binary.LittleEndian.Uint64(data[36:]))
	return nil
}

func flagWord(ok bool) uint32 {
	if ok {
		return 1
	}
	return 0
}
