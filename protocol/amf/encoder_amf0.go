package amf

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gwuhaolin/amfdecode/utils/pio"
)

// EncodeAmf0 encodes amf0 to Writer
// amf0 polymorphic router
func (e *Encoder) EncodeAmf0(w io.Writer, val Value) (int, error) {
	switch v := val.(type) {
	case nil, Null:
		return e.EncodeAmf0Null(w, true)
	case Undefined:
		return e.EncodeAmf0Undefined(w, true)
	case Unsupported:
		return e.EncodeAmf0Unsupported(w, true)
	case Number:
		return e.EncodeAmf0Number(w, float64(v), true)
	case Boolean:
		return e.EncodeAmf0Boolean(w, bool(v), true)
	case String:
		if len(v) <= AMF0StringMax {
			return e.EncodeAmf0String(w, string(v), true)
		}
		return e.EncodeAmf0LongString(w, string(v), true)
	case XMLDocument:
		return e.EncodeAmf0XMLDocument(w, string(v), true)
	case Reference:
		return e.EncodeAmf0Reference(w, uint16(v), true)
	case Date:
		return e.EncodeAmf0Date(w, v.Time, true)
	case Array:
		return e.EncodeAmf0StrictArray(w, v, true)
	case ECMAArray:
		return e.EncodeAmf0EcmaArray(w, Properties(v), true)
	case Object:
		return e.EncodeAmf0Object(w, Properties(v), true)
	case TypedObject:
		return e.EncodeAmf0TypedObject(w, v, true)
	}

	return 0, fmt.Errorf("encode amf0: unsupported type %T", val)
}

func (e *Encoder) writeMarker(w io.Writer, m Marker, encodeMarker bool) (int, error) {
	if !encodeMarker {
		return 0, nil
	}
	if err := WriteMarker(w, m); err != nil {
		return 0, err
	}
	return 1, nil
}

// EncodeAmf0Number encodes amf0 number
// marker: 1 byte 0x00
// format: 8 byte big endian float64
func (e *Encoder) EncodeAmf0Number(w io.Writer, val float64, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0NumberMarker, encodeMarker); err != nil {
		return
	}

	var m int
	buf := make([]byte, 8)
	pio.PutF64BE(buf, val)
	m, err = WriteBytes(w, buf)
	n += m

	return
}

// EncodeAmf0Boolean encodes amf0 boolean
// marker: 1 byte 0x01
// format: 1 byte, 0x00 = false, 0x01 = true
func (e *Encoder) EncodeAmf0Boolean(w io.Writer, val bool, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0BooleanMarker, encodeMarker); err != nil {
		return
	}

	var m int
	buf := []byte{AMF0BooleanFalse}
	if val {
		buf[0] = AMF0BooleanTrue
	}
	m, err = WriteBytes(w, buf)
	n += m

	return
}

// EncodeAmf0String encodes amf0 string
// marker: 1 byte 0x02
// format:
// - 2 byte big endian uint16 header to determine size
// - n (size) byte utf8 string
func (e *Encoder) EncodeAmf0String(w io.Writer, val string, encodeMarker bool) (n int, err error) {
	if len(val) > AMF0StringMax {
		return 0, fmt.Errorf("encode amf0: string of %d bytes exceeds %d", len(val), AMF0StringMax)
	}
	if n, err = e.writeMarker(w, AMF0StringMarker, encodeMarker); err != nil {
		return
	}

	var m int
	buf := make([]byte, 2+len(val))
	pio.PutU16BE(buf, uint16(len(val)))
	copy(buf[2:], val)
	m, err = WriteBytes(w, buf)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode string: %s", err)
	}

	return
}

// EncodeAmf0LongString encodes amf0 long string
// marker: 1 byte 0x0c
// format:
// - 4 byte big endian uint32 header to determine size
// - n (size) byte utf8 string
func (e *Encoder) EncodeAmf0LongString(w io.Writer, val string, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0LongStringMarker, encodeMarker); err != nil {
		return
	}

	var m int
	m, err = e.writeLongString(w, val)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode long string: %s", err)
	}

	return
}

// EncodeAmf0XMLDocument encodes amf0 xml document
// marker: 1 byte 0x0f
// format: same as long string
func (e *Encoder) EncodeAmf0XMLDocument(w io.Writer, val string, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0XMLDocumentMarker, encodeMarker); err != nil {
		return
	}

	var m int
	m, err = e.writeLongString(w, val)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode xml document: %s", err)
	}

	return
}

func (e *Encoder) writeLongString(w io.Writer, val string) (int, error) {
	if uint64(len(val)) > math.MaxUint32 {
		return 0, fmt.Errorf("string of %d bytes is too long", len(val))
	}
	buf := make([]byte, 4+len(val))
	pio.PutU32BE(buf, uint32(len(val)))
	copy(buf[4:], val)
	return WriteBytes(w, buf)
}

// EncodeAmf0Null encodes amf0 null
// marker: 1 byte 0x05
// no additional data
func (e *Encoder) EncodeAmf0Null(w io.Writer, encodeMarker bool) (int, error) {
	return e.writeMarker(w, AMF0NullMarker, encodeMarker)
}

// EncodeAmf0Undefined encodes amf0 undefined
// marker: 1 byte 0x06
// no additional data
func (e *Encoder) EncodeAmf0Undefined(w io.Writer, encodeMarker bool) (int, error) {
	return e.writeMarker(w, AMF0UndefinedMarker, encodeMarker)
}

// EncodeAmf0Unsupported encodes amf0 unsupported
// marker: 1 byte 0x0d
// no additional data
func (e *Encoder) EncodeAmf0Unsupported(w io.Writer, encodeMarker bool) (int, error) {
	return e.writeMarker(w, AMF0UnsupportedMarker, encodeMarker)
}

// EncodeAmf0Reference encodes amf0 reference
// marker: 1 byte 0x07
// format: 2 byte big endian uint16 index
func (e *Encoder) EncodeAmf0Reference(w io.Writer, val uint16, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0ReferenceMarker, encodeMarker); err != nil {
		return
	}

	var m int
	buf := make([]byte, 2)
	pio.PutU16BE(buf, val)
	m, err = WriteBytes(w, buf)
	n += m

	return
}

// EncodeAmf0Date encodes amf0 date
// marker: 1 byte 0x0b
// format:
// - 8 byte big endian float64 milliseconds since epoch
// - 2 byte big endian int16 timezone offset, always 0
func (e *Encoder) EncodeAmf0Date(w io.Writer, val time.Time, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0DateMarker, encodeMarker); err != nil {
		return
	}

	var m int
	millis := float64(val.Unix())*1000 + float64(val.Nanosecond())/float64(time.Millisecond)
	buf := make([]byte, 10)
	pio.PutF64BE(buf, millis)
	pio.PutI16BE(buf[8:], 0)
	m, err = WriteBytes(w, buf)
	n += m

	return
}

// EncodeAmf0Object encodes amf0 object
// marker: 1 byte 0x03
// format:
// - loop encoded string followed by encoded value
// - terminated with empty string followed by 1 byte 0x09
//
// Properties are written in ascending key order.
func (e *Encoder) EncodeAmf0Object(w io.Writer, val Properties, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0ObjectMarker, encodeMarker); err != nil {
		return
	}

	var m int
	m, err = e.writeProperties(w, val)
	n += m

	return
}

// EncodeAmf0TypedObject encodes amf0 typed object
// marker: 1 byte 0x10
// format:
// - class name encoded as string without marker
// - normal object format
func (e *Encoder) EncodeAmf0TypedObject(w io.Writer, val TypedObject, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0TypedObjectMarker, encodeMarker); err != nil {
		return
	}

	var m int
	m, err = e.EncodeAmf0String(w, val.Class, false)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode typed object class: %s", err)
	}

	m, err = e.writeProperties(w, val.Properties)
	n += m

	return
}

// EncodeAmf0EcmaArray encodes amf0 ecma array
// marker: 1 byte 0x08
// format:
// - 4 byte big endian uint32 with length of associative array
// - normal object format:
//   - loop encoded string followed by encoded value
//   - terminated with empty string followed by 1 byte 0x09
func (e *Encoder) EncodeAmf0EcmaArray(w io.Writer, val Properties, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0EcmaArrayMarker, encodeMarker); err != nil {
		return
	}

	var m int
	buf := make([]byte, 4)
	pio.PutU32BE(buf, uint32(len(val)))
	m, err = WriteBytes(w, buf)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode ecma array length: %s", err)
	}

	m, err = e.writeProperties(w, val)
	n += m

	return
}

// EncodeAmf0StrictArray encodes amf0 strict array
// marker: 1 byte 0x0a
// format:
// - 4 byte big endian uint32 to determine length of array
// - n (length) encoded values
func (e *Encoder) EncodeAmf0StrictArray(w io.Writer, val Array, encodeMarker bool) (n int, err error) {
	if n, err = e.writeMarker(w, AMF0StrictArrayMarker, encodeMarker); err != nil {
		return
	}

	var m int
	buf := make([]byte, 4)
	pio.PutU32BE(buf, uint32(len(val)))
	m, err = WriteBytes(w, buf)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode strict array length: %s", err)
	}

	for _, v := range val {
		m, err = e.EncodeAmf0(w, v)
		n += m
		if err != nil {
			return n, fmt.Errorf("encode amf0: unable to encode strict array element: %s", err)
		}
	}

	return
}

func (e *Encoder) writeProperties(w io.Writer, val Properties) (n int, err error) {
	var m int
	for _, k := range val.Keys() {
		if k == "" {
			return n, fmt.Errorf("encode amf0: empty object key")
		}

		m, err = e.EncodeAmf0String(w, k, false)
		n += m
		if err != nil {
			return n, fmt.Errorf("encode amf0: unable to encode object key: %s", err)
		}

		m, err = e.EncodeAmf0(w, val[k])
		n += m
		if err != nil {
			return n, fmt.Errorf("encode amf0: unable to encode object value: %s", err)
		}
	}

	m, err = e.EncodeAmf0String(w, "", false)
	n += m
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to encode object empty string: %s", err)
	}

	err = WriteMarker(w, AMF0ObjectEndMarker)
	if err != nil {
		return n, fmt.Errorf("encode amf0: unable to object end marker: %s", err)
	}
	n++

	return
}
