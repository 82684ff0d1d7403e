package amf

import "fmt"

// Marker is the leading byte identifying the type of an AMF0 value
type Marker uint8

// AMF0 Marker
const (
	// AMF0NumberMarker is the number marker for AMF0
	AMF0NumberMarker Marker = 0x00
	// AMF0BooleanMarker is the boolean marker for AMF0
	AMF0BooleanMarker Marker = 0x01
	// AMF0StringMarker is the string marker for AMF0
	AMF0StringMarker Marker = 0x02
	// AMF0ObjectMarker is the object marker for AMF0
	AMF0ObjectMarker Marker = 0x03
	// AMF0MovieclipMarker is the movieclip marker for AMF0, reserved
	AMF0MovieclipMarker Marker = 0x04
	// AMF0NullMarker is the null marker for AMF0
	AMF0NullMarker Marker = 0x05
	// AMF0UndefinedMarker is the undefined marker for AMF0
	AMF0UndefinedMarker Marker = 0x06
	// AMF0ReferenceMarker is the reference marker for AMF0
	AMF0ReferenceMarker Marker = 0x07
	// AMF0EcmaArrayMarker is the ECMA array marker for AMF0
	AMF0EcmaArrayMarker Marker = 0x08
	// AMF0ObjectEndMarker is the object end marker for AMF0
	AMF0ObjectEndMarker Marker = 0x09
	// AMF0StrictArrayMarker is the strict array marker for AMF0
	AMF0StrictArrayMarker Marker = 0x0a
	// AMF0DateMarker is the date marker for AMF0
	AMF0DateMarker Marker = 0x0b
	// AMF0LongStringMarker is the long string marker for AMF0
	AMF0LongStringMarker Marker = 0x0c
	// AMF0UnsupportedMarker is the unsupported marker for AMF0
	AMF0UnsupportedMarker Marker = 0x0d
	// AMF0RecordsetMarker is the record set marker for AMF0, reserved
	AMF0RecordsetMarker Marker = 0x0e
	// AMF0XMLDocumentMarker is the XML document marker for AMF0
	AMF0XMLDocumentMarker Marker = 0x0f
	// AMF0TypedObjectMarker is the typed object marker for AMF0
	AMF0TypedObjectMarker Marker = 0x10
	// AMF0AvmplusObjectMarker switches the stream from AMF0 to AMF3
	AMF0AvmplusObjectMarker Marker = 0x11
)

// AMF0 constants
const (
	// AMF0BooleanFalse denotes false in AMF0
	AMF0BooleanFalse = 0x00
	// AMF0BooleanTrue denotes true in AMF0
	AMF0BooleanTrue = 0x01
	// AMF0StringMax denotes max string length
	AMF0StringMax = 65535
)

var markerNames = [...]string{
	AMF0NumberMarker:        "Number",
	AMF0BooleanMarker:       "Boolean",
	AMF0StringMarker:        "String",
	AMF0ObjectMarker:        "Object",
	AMF0MovieclipMarker:     "MovieClip",
	AMF0NullMarker:          "Null",
	AMF0UndefinedMarker:     "Undefined",
	AMF0ReferenceMarker:     "Reference",
	AMF0EcmaArrayMarker:     "ECMAArray",
	AMF0ObjectEndMarker:     "ObjectEnd",
	AMF0StrictArrayMarker:   "StrictArray",
	AMF0DateMarker:          "Date",
	AMF0LongStringMarker:    "LongString",
	AMF0UnsupportedMarker:   "Unsupported",
	AMF0RecordsetMarker:     "RecordSet",
	AMF0XMLDocumentMarker:   "XmlDocument",
	AMF0TypedObjectMarker:   "TypedObject",
	AMF0AvmplusObjectMarker: "AVMPlusObject",
}

// MarkerFromByte returns the marker encoded by b.
// ok is false when b is not a defined AMF0 marker.
func MarkerFromByte(b byte) (m Marker, ok bool) {
	if int(b) >= len(markerNames) {
		return 0, false
	}
	return Marker(b), true
}

// Byte returns the wire byte of the marker
func (m Marker) Byte() byte {
	return byte(m)
}

func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("Marker(0x%02x)", uint8(m))
}
