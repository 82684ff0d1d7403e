package amf

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a decode failure
type ErrorKind uint8

const (
	// Truncated means the source ended before a read completed
	Truncated ErrorKind = iota + 1
	// InvalidEncoding means a text payload is not valid UTF-8
	InvalidEncoding
	// BadMarker means a marker byte is not a defined AMF0 marker
	BadMarker
	// UnexpectedMarker means a defined marker appeared where the grammar forbids it
	UnexpectedMarker
)

func (k ErrorKind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case InvalidEncoding:
		return "invalid encoding"
	case BadMarker:
		return "bad marker"
	case UnexpectedMarker:
		return "unexpected marker"
	}
	return "unknown"
}

// DecodeError is returned by every failing decode operation
type DecodeError struct {
	Kind ErrorKind
	// Byte is the offending byte of a BadMarker error
	Byte byte
	// Marker is the offending marker of an UnexpectedMarker error
	Marker Marker

	err error
}

// Sentinels matched by kind through errors.Is
var (
	ErrTruncated        = &DecodeError{Kind: Truncated}
	ErrInvalidEncoding  = &DecodeError{Kind: InvalidEncoding}
	ErrBadMarker        = &DecodeError{Kind: BadMarker}
	ErrUnexpectedMarker = &DecodeError{Kind: UnexpectedMarker}
)

func (e *DecodeError) Error() string {
	var msg string
	switch e.Kind {
	case BadMarker:
		msg = fmt.Sprintf("decode amf0: bad marker value 0x%02x", e.Byte)
	case UnexpectedMarker:
		msg = fmt.Sprintf("decode amf0: unexpected marker %s", e.Marker)
	default:
		msg = "decode amf0: " + e.Kind.String()
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap returns the underlying I/O or encoding error, if any
func (e *DecodeError) Unwrap() error {
	return e.err
}

// Is matches any DecodeError of the same kind
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a decode failure, looking through context
// added with github.com/pkg/errors.
func KindOf(err error) (ErrorKind, bool) {
	if de, ok := errors.Cause(err).(*DecodeError); ok {
		return de.Kind, true
	}
	return 0, false
}

func truncated(err error) error {
	return &DecodeError{Kind: Truncated, err: err}
}

func invalidEncoding(err error) error {
	return &DecodeError{Kind: InvalidEncoding, err: err}
}

func badMarker(b byte) error {
	return &DecodeError{Kind: BadMarker, Byte: b}
}

func unexpectedMarker(m Marker) error {
	return &DecodeError{Kind: UnexpectedMarker, Marker: m}
}
