package amf

import (
	"bytes"
	"io"
	"math"
	"time"
	"unicode/utf8"

	"github.com/gwuhaolin/amfdecode/utils/pio"
)

// ReadBytes reads exactly n bytes from reader.
// The buffer grows with the data actually read, never from n alone.
func ReadBytes(r io.Reader, n int64) ([]byte, error) {
	var buf bytes.Buffer
	m, err := io.CopyN(&buf, r, n)
	if m == n {
		return buf.Bytes(), nil
	}
	if err == io.EOF && m > 0 {
		err = io.ErrUnexpectedEOF
	}
	return nil, truncated(err)
}

func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return truncated(err)
	}
	return nil
}

// ReadU8 reads one byte from reader
func ReadU8(r io.Reader) (byte, error) {
	var b [1]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16BE reads a big-endian uint16
func ReadU16BE(r io.Reader) (uint16, error) {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return pio.U16BE(b[:]), nil
}

// ReadI16BE reads a big-endian int16
func ReadI16BE(r io.Reader) (int16, error) {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return pio.I16BE(b[:]), nil
}

// ReadU32BE reads a big-endian uint32
func ReadU32BE(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return pio.U32BE(b[:]), nil
}

// ReadF64BE reads a big-endian IEEE-754 double
func ReadF64BE(r io.Reader) (float64, error) {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return pio.F64BE(b[:]), nil
}

// ReadFixedString reads n bytes of UTF-8 text.
// A zero length does not touch the reader.
func ReadFixedString(r io.Reader, n uint32) (string, error) {
	if n == 0 {
		return "", nil
	}

	b, err := ReadBytes(r, int64(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", invalidEncoding(nil)
	}
	return string(b), nil
}

// keeps time.Unix clear of int64 overflow
const maxTimestampSeconds = 1 << 62

// ReadTimestamp reads a date payload: a big-endian double holding
// milliseconds since the epoch, then a 16-bit timezone offset which is
// read and ignored. The result is in UTC.
// A NaN, infinite or out of range count yields the zero time.
func ReadTimestamp(r io.Reader) (time.Time, error) {
	millis, err := ReadF64BE(r)
	if err != nil {
		return time.Time{}, err
	}
	if _, err = ReadI16BE(r); err != nil {
		return time.Time{}, err
	}

	secs := math.Floor(millis / 1000)
	if math.IsNaN(secs) || math.Abs(secs) > maxTimestampSeconds {
		return time.Time{}, nil
	}
	nsecs := (millis - secs*1000) * float64(time.Millisecond)
	return time.Unix(int64(secs), int64(nsecs)).UTC(), nil
}

// ReadMarker reads the marker from reader
func ReadMarker(r io.Reader) (Marker, error) {
	b, err := ReadU8(r)
	if err != nil {
		return 0, err
	}
	m, ok := MarkerFromByte(b)
	if !ok {
		return 0, badMarker(b)
	}
	return m, nil
}

// WriteBytes write byte array to writer
func WriteBytes(w io.Writer, bytes []byte) (int, error) {
	return w.Write(bytes)
}

// WriteMarker write marker to writer
func WriteMarker(w io.Writer, m Marker) error {
	_, err := WriteBytes(w, []byte{m.Byte()})
	return err
}
