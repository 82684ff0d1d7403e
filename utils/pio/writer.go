package pio

import "math"

// PutU16BE put uint16 to big-endian byte slice
func PutU16BE(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// PutI16BE put int16 to big-endian byte slice
func PutI16BE(b []byte, v int16) {
	PutU16BE(b, uint16(v))
}

// PutU32BE put uint32 to big-endian byte slice
func PutU32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// PutU64BE put uint64 to big-endian byte slice
func PutU64BE(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// PutF64BE put float64 to big-endian byte slice
func PutF64BE(b []byte, v float64) {
	PutU64BE(b, math.Float64bits(v))
}
