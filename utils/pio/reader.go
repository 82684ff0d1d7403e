package pio

import "math"

// U16BE converts big-endian byte slice to uint16
func U16BE(b []byte) (i uint16) {
	i = uint16(b[0])
	i <<= 8
	i |= uint16(b[1])
	return
}

// I16BE converts big-endian byte slice to int16
func I16BE(b []byte) (i int16) {
	return int16(U16BE(b))
}

// U32BE converts big-endian byte slice to uint32
func U32BE(b []byte) (i uint32) {
	i = uint32(b[0])
	i <<= 8
	i |= uint32(b[1])
	i <<= 8
	i |= uint32(b[2])
	i <<= 8
	i |= uint32(b[3])
	return
}

// U64BE converts big-endian byte slice to uint64
func U64BE(b []byte) (i uint64) {
	for _, c := range b[:8] {
		i <<= 8
		i |= uint64(c)
	}
	return
}

// F64BE converts big-endian byte slice to an IEEE-754 float64
func F64BE(b []byte) float64 {
	return math.Float64frombits(U64BE(b))
}
