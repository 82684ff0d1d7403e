package amf

import (
	"sort"
	"time"
)

// Kind is the variant of a decoded Value
type Kind uint8

// Value kinds
const (
	KindNull Kind = iota
	KindUndefined
	KindUnsupported
	KindNumber
	KindBoolean
	KindString
	KindDate
	KindXMLDocument
	KindReference
	KindArray
	KindECMAArray
	KindObject
	KindTypedObject
)

var kindNames = [...]string{
	KindNull:        "Null",
	KindUndefined:   "Undefined",
	KindUnsupported: "Unsupported",
	KindNumber:      "Number",
	KindBoolean:     "Boolean",
	KindString:      "String",
	KindDate:        "Date",
	KindXMLDocument: "XmlDocument",
	KindReference:   "Reference",
	KindArray:       "Array",
	KindECMAArray:   "ECMAArray",
	KindObject:      "Object",
	KindTypedObject: "TypedObject",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Value is a decoded AMF0 value.
// A Value tree is a snapshot: nothing in this package mutates it once built.
type Value interface {
	Kind() Kind
}

// Null is the AMF0 null
type Null struct{}

// Undefined is the AMF0 undefined
type Undefined struct{}

// Unsupported stands for the unsupported marker and the reserved
// MovieClip and RecordSet markers
type Unsupported struct{}

// Number is an IEEE-754 double
type Number float64

// Boolean is a boolean
type Boolean bool

// String is a string, short or long on the wire
type String string

// XMLDocument is an XML document carried as text
type XMLDocument string

// Reference is an index into the table of complex values seen earlier
// in the same stream. It is not resolved by the decoder, see ReferenceTable.
type Reference uint16

// Date is an instant in UTC
type Date struct {
	Time time.Time
}

// Array is a strict array
type Array []Value

// Properties maps property names to values. Keys are unique.
type Properties map[string]Value

// ECMAArray is an associative array
type ECMAArray Properties

// Object is an anonymous object
type Object Properties

// TypedObject is an object with a class name
type TypedObject struct {
	Class      string
	Properties Properties
}

func (Null) Kind() Kind        { return KindNull }
func (Undefined) Kind() Kind   { return KindUndefined }
func (Unsupported) Kind() Kind { return KindUnsupported }
func (Number) Kind() Kind      { return KindNumber }
func (Boolean) Kind() Kind     { return KindBoolean }
func (String) Kind() Kind      { return KindString }
func (XMLDocument) Kind() Kind { return KindXMLDocument }
func (Reference) Kind() Kind   { return KindReference }
func (Date) Kind() Kind        { return KindDate }
func (Array) Kind() Kind       { return KindArray }
func (ECMAArray) Kind() Kind   { return KindECMAArray }
func (Object) Kind() Kind      { return KindObject }
func (TypedObject) Kind() Kind { return KindTypedObject }

// Keys returns the property names in ascending order
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether a and b are structurally equal.
// Dates compare as instants. References compare by index.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null, Undefined, Unsupported:
		return true
	case Number:
		return av == b.(Number)
	case Boolean:
		return av == b.(Boolean)
	case String:
		return av == b.(String)
	case XMLDocument:
		return av == b.(XMLDocument)
	case Reference:
		return av == b.(Reference)
	case Date:
		return av.Time.Equal(b.(Date).Time)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case ECMAArray:
		return equalProperties(Properties(av), Properties(b.(ECMAArray)))
	case Object:
		return equalProperties(Properties(av), Properties(b.(Object)))
	case TypedObject:
		bv := b.(TypedObject)
		return av.Class == bv.Class && equalProperties(av.Properties, bv.Properties)
	}
	return false
}

func equalProperties(a, b Properties) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

// ClassKey holds the class name of a TypedObject in the map built by Plain
const ClassKey = "__class"

// Plain converts v into plain Go values: nil, float64, bool, string,
// time.Time, uint16, []interface{} and map[string]interface{}.
// Undefined and Unsupported become nil as well.
func Plain(v Value) interface{} {
	switch vv := v.(type) {
	case Number:
		return float64(vv)
	case Boolean:
		return bool(vv)
	case String:
		return string(vv)
	case XMLDocument:
		return string(vv)
	case Reference:
		return uint16(vv)
	case Date:
		return vv.Time
	case Array:
		arr := make([]interface{}, len(vv))
		for i, e := range vv {
			arr[i] = Plain(e)
		}
		return arr
	case ECMAArray:
		return plainProperties(Properties(vv))
	case Object:
		return plainProperties(Properties(vv))
	case TypedObject:
		m := plainProperties(vv.Properties)
		m[ClassKey] = vv.Class
		return m
	}
	return nil
}

func plainProperties(p Properties) map[string]interface{} {
	m := make(map[string]interface{}, len(p))
	for k, v := range p {
		m[k] = Plain(v)
	}
	return m
}
