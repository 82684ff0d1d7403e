package amf

import (
	"bytes"
	"errors"
	"io"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadScalars(t *testing.T) {
	r := bytes.NewReader(mustHex(t, "7f 01 02 ff fe 00 00 01 00 3f f0 00 00 00 00 00 00"))

	u8, err := ReadU8(r)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7f), u8)

	u16, err := ReadU16BE(r)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	i16, err := ReadI16BE(r)
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	u32, err := ReadU32BE(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x100), u32)

	f, err := ReadF64BE(r)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	_, err = ReadU8(r)
	assert.True(t, errors.Is(err, ErrTruncated))
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReadShortInput(t *testing.T) {
	_, err := ReadU32BE(bytes.NewReader([]byte{1, 2}))
	assert.True(t, errors.Is(err, ErrTruncated))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	_, err = ReadFixedString(bytes.NewReader([]byte("ab")), 3)
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestReadFixedStringInvalid(t *testing.T) {
	_, err := ReadFixedString(bytes.NewReader([]byte{0xc3, 0x28}), 2)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}

func TestReadTimestamp(t *testing.T) {
	// 1500.25 ms after the epoch, offset -120
	r := bytes.NewReader(mustHex(t, "40 97 71 00 00 00 00 00 ff 88"))

	ts, err := ReadTimestamp(r)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1, 500250000).UTC(), ts)
	assert.Equal(t, 0, r.Len())
}

func TestReadMarker(t *testing.T) {
	m, err := ReadMarker(bytes.NewReader([]byte{0x0a}))
	require.NoError(t, err)
	assert.Equal(t, AMF0StrictArrayMarker, m)

	_, err = ReadMarker(bytes.NewReader([]byte{0x42}))
	assert.True(t, errors.Is(err, ErrBadMarker))
}

func TestReadTimestampNotFinite(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"nan", "7f f8 00 00 00 00 00 00 00 00"},
		{"+inf", "7f f0 00 00 00 00 00 00 00 00"},
		{"-inf", "ff f0 00 00 00 00 00 00 00 00"},
		{"1e300", "7e 37 e4 3c 88 00 75 9c 00 00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(mustHex(t, tt.input))
			ts, err := ReadTimestamp(r)
			require.NoError(t, err)
			assert.True(t, ts.IsZero(), "got %v", ts)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestReadBytesHugeLength(t *testing.T) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	_, err := ReadBytes(bytes.NewReader([]byte("a")), math.MaxUint32)
	assert.True(t, errors.Is(err, ErrTruncated))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	runtime.ReadMemStats(&after)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))

	_, err = ReadBytes(bytes.NewReader(nil), 4)
	assert.True(t, errors.Is(err, io.EOF))
}
