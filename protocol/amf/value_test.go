package amf

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nulls", Null{}, Null{}, true},
		{"null undefined", Null{}, Undefined{}, false},
		{"numbers", Number(1), Number(1), true},
		{"nan", Number(math.NaN()), Number(math.NaN()), false},
		{"string xml", String("a"), XMLDocument("a"), false},
		{"dates in other zones", Date{Time: now}, Date{Time: now.In(time.FixedZone("x", 3600))}, true},
		{"arrays", Array{Number(1), String("a")}, Array{Number(1), String("a")}, true},
		{"array length", Array{Number(1)}, Array{}, false},
		{"nil and empty array", Array(nil), Array{}, true},
		{"object ecma array", Object{}, ECMAArray{}, false},
		{"objects", Object{"a": Array{Null{}}}, Object{"a": Array{Null{}}}, true},
		{"object keys", Object{"a": Null{}}, Object{"b": Null{}}, false},
		{"typed class", TypedObject{Class: "A"}, TypedObject{Class: "B"}, false},
		{"typed", TypedObject{Class: "A", Properties: Properties{"x": Boolean(true)}},
			TypedObject{Class: "A", Properties: Properties{"x": Boolean(true)}}, true},
		{"references", Reference(1), Reference(2), false},
		{"nil", nil, Null{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestPropertiesKeys(t *testing.T) {
	p := Properties{"b": Null{}, "a": Null{}, "c": Null{}}
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
}

func TestPlain(t *testing.T) {
	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	v := Object{
		"n":    Number(2),
		"s":    String("x"),
		"null": Null{},
		"arr":  Array{Boolean(true), Reference(3)},
		"t":    TypedObject{Class: "Foo", Properties: Properties{"d": Date{Time: when}}},
	}

	assert.Equal(t, map[string]interface{}{
		"n":    float64(2),
		"s":    "x",
		"null": nil,
		"arr":  []interface{}{true, uint16(3)},
		"t":    map[string]interface{}{"d": when, ClassKey: "Foo"},
	}, Plain(v))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ECMAArray", ECMAArray{}.Kind().String())
	assert.Equal(t, "TypedObject", TypedObject{}.Kind().String())
}
