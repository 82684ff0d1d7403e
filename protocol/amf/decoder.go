package amf

import (
	"io"

	"github.com/gwuhaolin/amfdecode/configure"
	"github.com/gwuhaolin/amfdecode/utils/uid"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Decoder decodes AMF0 values and logs what it does.
// A Decoder keeps no state between calls besides its log fields.
type Decoder struct {
	log *log.Entry
}

// NewDecoder return a decoder
func NewDecoder() *Decoder {
	return &Decoder{
		log: log.WithField("session", uid.NewID()),
	}
}

// Decode decodes one value from r
func (d *Decoder) Decode(r io.Reader) (Value, error) {
	v, err := DecodeValue(r)
	if err != nil {
		d.log.Debugf("decode amf0 failed: %v", err)
		return nil, err
	}
	d.trace(0, v)
	return v, nil
}

// DecodeAll decodes values until r ends at a value boundary.
// An end of input anywhere inside a value is a Truncated error.
func (d *Decoder) DecodeAll(r io.Reader) ([]Value, error) {
	var values []Value
	for i := 0; ; i++ {
		b, err := ReadU8(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.log.Debugf("decoded %d amf0 values", len(values))
				return values, nil
			}
			return nil, errors.WithMessagef(err, "value #%d", i)
		}

		marker, ok := MarkerFromByte(b)
		if !ok {
			err = badMarker(b)
		}
		var v Value
		if err == nil {
			v, err = decodeAmf0(r, marker)
		}
		if err != nil {
			d.log.Debugf("decode amf0 value #%d failed: %v", i, err)
			return nil, errors.WithMessagef(err, "value #%d", i)
		}

		d.trace(i, v)
		values = append(values, v)
	}
}

func (d *Decoder) trace(i int, v Value) {
	if !configure.Config.GetBool("amf.trace") {
		return
	}
	d.log.Debugf("amf0 value #%d: %# v", i, pretty.Formatter(v))
}
