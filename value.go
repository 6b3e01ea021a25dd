package inputform

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Kind identifies the widget family a seed value is edited with.
type Kind int

const (
	KindBool Kind = iota
	KindColor
	KindFloat
	KindInt
	KindText
	KindList
	KindVector2
	KindVector3
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindColor:   "color",
	KindFloat:   "float",
	KindInt:     "int",
	KindText:    "text",
	KindList:    "list",
	KindVector2: "vector2",
	KindVector3: "vector3",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a seed value of a form field. The set of implementations is
// closed: Bool, Color, Float, Int, Text, List, Vector2 and Vector3.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	Bool    bool
	Color   color.NRGBA
	Float   float64
	Int     int
	Text    string
	List    []string
	Vector2 [2]float64
	Vector3 [3]float64
)

func (Bool) Kind() Kind    { return KindBool }
func (Color) Kind() Kind   { return KindColor }
func (Float) Kind() Kind   { return KindFloat }
func (Int) Kind() Kind     { return KindInt }
func (Text) Kind() Kind    { return KindText }
func (List) Kind() Kind    { return KindList }
func (Vector2) Kind() Kind { return KindVector2 }
func (Vector3) Kind() Kind { return KindVector3 }

func (Bool) isValue()    {}
func (Color) isValue()   {}
func (Float) isValue()   {}
func (Int) isValue()     {}
func (Text) isValue()    {}
func (List) isValue()    {}
func (Vector2) isValue() {}
func (Vector3) isValue() {}

// RGBA implements color.Color so a Color can be handed to Fyne directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// ColorOf converts any color.Color to a Color. Non-premultiplied colors
// are kept exactly, including translucent ones.
func ColorOf(c color.Color) Color {
	switch t := c.(type) {
	case nil:
		return Color{}
	case Color:
		return t
	case color.NRGBA:
		return Color(t)
	}
	return Color(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// ValueOf infers a Value from an untyped Go value. The checks run in a
// fixed order: bool, color, float, integer, string, string list, then
// 2 or 3 component float vectors. A Value is returned unchanged.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case color.Color:
		return ColorOf(t), nil
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case int:
		return Int(t), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int(reflect.ValueOf(t).Convert(reflect.TypeOf(0)).Int()), nil
	case string:
		return Text(t), nil
	case []string:
		return List(append([]string(nil), t...)), nil
	case [2]float64:
		return Vector2(t), nil
	case [3]float64:
		return Vector3(t), nil
	case []float64:
		if vec, ok := vectorOf(t); ok {
			return vec, nil
		}
	case []any:
		var list []string
		if err := mapstructure.Decode(t, &list); err == nil {
			return List(list), nil
		}
		var nums []float64
		if err := mapstructure.Decode(t, &nums); err == nil {
			if vec, ok := vectorOf(nums); ok {
				return vec, nil
			}
		}
	}

	return nil, &UnsupportedValueTypeError{Type: typeName(v)}
}

func vectorOf(nums []float64) (Value, bool) {
	switch len(nums) {
	case 2:
		return Vector2{nums[0], nums[1]}, true
	case 3:
		return Vector3{nums[0], nums[1], nums[2]}, true
	}
	return nil, false
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
