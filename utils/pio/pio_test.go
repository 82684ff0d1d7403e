package pio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigEndianIntegers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x0102), U16BE([]byte{0x01, 0x02}))
	assert.Equal(int16(-2), I16BE([]byte{0xff, 0xfe}))
	assert.Equal(uint32(0x01020304), U32BE([]byte{0x01, 0x02, 0x03, 0x04}))
	assert.Equal(uint64(0x0102030405060708), U64BE([]byte{1, 2, 3, 4, 5, 6, 7, 8}))

	b := make([]byte, 8)
	PutU16BE(b, 0xabcd)
	assert.Equal([]byte{0xab, 0xcd}, b[:2])
	PutI16BE(b, -2)
	assert.Equal([]byte{0xff, 0xfe}, b[:2])
	PutU32BE(b, 0xdeadbeef)
	assert.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, b[:4])
	PutU64BE(b, 0x0102030405060708)
	assert.Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
}

func TestFloat64(t *testing.T) {
	b := []byte{0x40, 0x09, 0x21, 0xfb, 0x54, 0x44, 0x2d, 0x18}
	assert.Equal(t, math.Pi, F64BE(b))

	out := make([]byte, 8)
	PutF64BE(out, math.Pi)
	assert.Equal(t, b, out)
}
