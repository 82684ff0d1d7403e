package amf

import (
	"github.com/pkg/errors"
)

// ErrUnresolvedReference is returned by ReferenceTable.Resolve for an index
// past the end of the table
var ErrUnresolvedReference = errors.New("resolve amf0: reference out of range")

// ReferenceTable is the table of complex values a Reference points into.
// Objects, typed objects, ECMA arrays and strict arrays are numbered from
// zero in the order their markers appear in the stream.
type ReferenceTable struct {
	values []Value
}

// Collect adds the complex values of v to the table, outermost first
func (t *ReferenceTable) Collect(v Value) {
	switch vv := v.(type) {
	case Array:
		t.values = append(t.values, vv)
		for _, e := range vv {
			t.Collect(e)
		}
	case ECMAArray:
		t.values = append(t.values, vv)
		t.collectProperties(Properties(vv))
	case Object:
		t.values = append(t.values, vv)
		t.collectProperties(Properties(vv))
	case TypedObject:
		t.values = append(t.values, vv)
		t.collectProperties(vv.Properties)
	}
}

// Properties are visited in key order. The wire order of a property list
// is lost once decoded, so tables built from values holding several
// complex properties may differ from the producer's numbering.
func (t *ReferenceTable) collectProperties(p Properties) {
	for _, k := range p.Keys() {
		t.Collect(p[k])
	}
}

// Len returns the number of collected values
func (t *ReferenceTable) Len() int {
	return len(t.values)
}

// Get returns the value a reference points to
func (t *ReferenceTable) Get(ref Reference) (Value, error) {
	if int(ref) >= len(t.values) {
		return nil, errors.Wrapf(ErrUnresolvedReference, "index %d, table size %d", ref, len(t.values))
	}
	return t.values[ref], nil
}

// Resolve returns a copy of v with every Reference replaced by the table
// entry it points to. Table entries are inserted as collected, their own
// references are left as they are, so the result is always a finite tree.
func (t *ReferenceTable) Resolve(v Value) (Value, error) {
	switch vv := v.(type) {
	case Reference:
		return t.Get(vv)
	case Array:
		arr := make(Array, len(vv))
		for i, e := range vv {
			r, err := t.Resolve(e)
			if err != nil {
				return nil, err
			}
			arr[i] = r
		}
		return arr, nil
	case ECMAArray:
		p, err := t.resolveProperties(Properties(vv))
		if err != nil {
			return nil, err
		}
		return ECMAArray(p), nil
	case Object:
		p, err := t.resolveProperties(Properties(vv))
		if err != nil {
			return nil, err
		}
		return Object(p), nil
	case TypedObject:
		p, err := t.resolveProperties(vv.Properties)
		if err != nil {
			return nil, err
		}
		return TypedObject{Class: vv.Class, Properties: p}, nil
	}
	return v, nil
}

func (t *ReferenceTable) resolveProperties(p Properties) (Properties, error) {
	out := make(Properties, len(p))
	for k, v := range p {
		r, err := t.Resolve(v)
		if err != nil {
			return nil, errors.WithMessagef(err, "property %q", k)
		}
		out[k] = r
	}
	return out, nil
}
