package amf

import (
	"bytes"
	"io"
)

// Encoder writes values in the form the decoder reads them back
type Encoder struct {
}

// Encode encodes each value to w in order
func (e *Encoder) Encode(w io.Writer, vals ...Value) (int, error) {
	var n int
	for _, v := range vals {
		m, err := e.EncodeAmf0(w, v)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Marshal returns the encoding of vals
func Marshal(vals ...Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := (&Encoder{}).Encode(buf, vals...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
