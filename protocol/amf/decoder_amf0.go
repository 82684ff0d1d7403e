package amf

import (
	"io"
)

// DecodeValue decodes one AMF0 value from r.
// On failure no partial value is returned and r is left wherever the
// failing read stopped.
func DecodeValue(r io.Reader) (Value, error) {
	marker, err := ReadMarker(r)
	if err != nil {
		return nil, err
	}
	return decodeAmf0(r, marker)
}

// decodeAmf0 decodes the payload following marker
// amf0 polymorphic router
func decodeAmf0(r io.Reader, marker Marker) (Value, error) {
	switch marker {
	case AMF0NullMarker:
		return Null{}, nil
	case AMF0UndefinedMarker:
		return Undefined{}, nil
	case AMF0UnsupportedMarker, AMF0MovieclipMarker, AMF0RecordsetMarker:
		return Unsupported{}, nil
	case AMF0BooleanMarker:
		return decodeAmf0Boolean(r)
	case AMF0NumberMarker:
		return decodeAmf0Number(r)
	case AMF0StringMarker:
		return decodeAmf0String(r)
	case AMF0LongStringMarker:
		return decodeAmf0LongString(r)
	case AMF0XMLDocumentMarker:
		return decodeAmf0XMLDocument(r)
	case AMF0ReferenceMarker:
		return decodeAmf0Reference(r)
	case AMF0DateMarker:
		return decodeAmf0Date(r)
	case AMF0ObjectMarker:
		return decodeAmf0Object(r)
	case AMF0TypedObjectMarker:
		return decodeAmf0TypedObject(r)
	case AMF0EcmaArrayMarker:
		return decodeAmf0EcmaArray(r)
	case AMF0StrictArrayMarker:
		return decodeAmf0StrictArray(r)
	}

	// ObjectEnd and AvmplusObject never start a value
	return nil, unexpectedMarker(marker)
}

// marker: 1 byte 0x01
// format: 1 byte, 0x00 = false, anything else = true
func decodeAmf0Boolean(r io.Reader) (Value, error) {
	b, err := ReadU8(r)
	if err != nil {
		return nil, err
	}
	return Boolean(b != AMF0BooleanFalse), nil
}

// marker: 1 byte 0x00
// format: 8 byte big endian float64
func decodeAmf0Number(r io.Reader) (Value, error) {
	f, err := ReadF64BE(r)
	if err != nil {
		return nil, err
	}
	return Number(f), nil
}

// marker: 1 byte 0x02
// format:
// - 2 byte big endian uint16 header to determine size
// - n (size) byte utf8 string
func decodeAmf0String(r io.Reader) (Value, error) {
	s, err := readShortString(r)
	if err != nil {
		return nil, err
	}
	return String(s), nil
}

// marker: 1 byte 0x0c
// format:
// - 4 byte big endian uint32 header to determine size
// - n (size) byte utf8 string
func decodeAmf0LongString(r io.Reader) (Value, error) {
	s, err := readLongString(r)
	if err != nil {
		return nil, err
	}
	return String(s), nil
}

// marker: 1 byte 0x0f
// format: same as long string
func decodeAmf0XMLDocument(r io.Reader) (Value, error) {
	s, err := readLongString(r)
	if err != nil {
		return nil, err
	}
	return XMLDocument(s), nil
}

// marker: 1 byte 0x07
// format: 2 byte big endian uint16 index
func decodeAmf0Reference(r io.Reader) (Value, error) {
	idx, err := ReadU16BE(r)
	if err != nil {
		return nil, err
	}
	return Reference(idx), nil
}

// marker: 1 byte 0x0b
// format:
// - 8 byte big endian float64 milliseconds since epoch
// - 2 byte big endian int16 timezone offset, ignored
func decodeAmf0Date(r io.Reader) (Value, error) {
	t, err := ReadTimestamp(r)
	if err != nil {
		return nil, err
	}
	return Date{Time: t}, nil
}

// marker: 1 byte 0x03
// format:
// - loop encoded string followed by encoded value
// - terminated with empty string followed by 1 byte 0x09
func decodeAmf0Object(r io.Reader) (Value, error) {
	props, err := readProperties(r)
	if err != nil {
		return nil, err
	}
	return Object(props), nil
}

// marker: 1 byte 0x10
// format:
// - 2 byte big endian uint16 header to determine class name size
// - n (size) byte utf8 class name
// - normal object format
func decodeAmf0TypedObject(r io.Reader) (Value, error) {
	class, err := readShortString(r)
	if err != nil {
		return nil, err
	}
	props, err := readProperties(r)
	if err != nil {
		return nil, err
	}
	return TypedObject{Class: class, Properties: props}, nil
}

// marker: 1 byte 0x08
// format:
// - 4 byte big endian uint32 with length of associative array
// - normal object format
//
// The length is only a hint. The property list runs until the object end
// sentinel whatever the length says.
func decodeAmf0EcmaArray(r io.Reader) (Value, error) {
	if _, err := ReadU32BE(r); err != nil {
		return nil, err
	}
	props, err := readProperties(r)
	if err != nil {
		return nil, err
	}
	return ECMAArray(props), nil
}

// marker: 1 byte 0x0a
// format:
// - 4 byte big endian uint32 to determine length of array
// - n (length) encoded values
func decodeAmf0StrictArray(r io.Reader) (Value, error) {
	count, err := ReadU32BE(r)
	if err != nil {
		return nil, err
	}
	items, err := readExactly(r, count, DecodeValue)
	if err != nil {
		return nil, err
	}
	return Array(items), nil
}

func readShortString(r io.Reader) (string, error) {
	size, err := ReadU16BE(r)
	if err != nil {
		return "", err
	}
	return ReadFixedString(r, uint32(size))
}

func readLongString(r io.Reader) (string, error) {
	size, err := ReadU32BE(r)
	if err != nil {
		return "", err
	}
	return ReadFixedString(r, size)
}

type property struct {
	key   string
	value Value
}

// readProperty reads one key/value pair of a property list.
// ok is false once the empty key and object end marker were consumed.
func readProperty(r io.Reader) (p property, ok bool, err error) {
	size, err := ReadU16BE(r)
	if err != nil {
		return p, false, err
	}

	if size == 0 {
		marker, err := ReadMarker(r)
		if err != nil {
			return p, false, err
		}
		if marker != AMF0ObjectEndMarker {
			return p, false, unexpectedMarker(marker)
		}
		return p, false, nil
	}

	if p.key, err = ReadFixedString(r, uint32(size)); err != nil {
		return p, false, err
	}
	if p.value, err = DecodeValue(r); err != nil {
		return p, false, err
	}
	return p, true, nil
}

func readProperties(r io.Reader) (Properties, error) {
	items, err := readUntilDone(r, readProperty)
	if err != nil {
		return nil, err
	}
	props := make(Properties, len(items))
	for _, p := range items {
		props[p.key] = p.value
	}
	return props, nil
}

// readUntilDone calls f until it reports it is done.
// The first error discards everything read so far.
func readUntilDone(r io.Reader, f func(io.Reader) (property, bool, error)) ([]property, error) {
	var items []property
	for {
		item, ok, err := f(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, item)
	}
}

// readExactly calls f count times.
// The first error discards everything read so far.
func readExactly(r io.Reader, count uint32, f func(io.Reader) (Value, error)) ([]Value, error) {
	size := 1024
	if count < 1024 {
		size = int(count)
	}
	items := make([]Value, 0, size)
	for i := uint32(0); i < count; i++ {
		item, err := f(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
