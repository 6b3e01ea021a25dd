package commands

import (
	"image/color"

	"inputform.app/inputform"
)

func exampleData() *inputform.Data {
	return inputform.NewData(
		inputform.Entry{Name: "Bool", Value: inputform.Bool(true)},
		inputform.Entry{Name: "Color", Value: inputform.ColorOf(color.NRGBA{R: 0xff, A: 0xff})},
		inputform.Entry{Name: "Int", Value: inputform.Int(1)},
		inputform.Entry{Name: "Float", Value: inputform.Float(0.5)},
		inputform.Entry{Name: "String", Value: inputform.Text("Test")},
		inputform.Entry{Name: "ComboBox", Value: inputform.List{"One", "Two"}},
		inputform.Entry{Name: "Vector2", Value: inputform.Vector2{10, 5}},
		inputform.Entry{Name: "Vector3", Value: inputform.Vector3{1, 2, 3}},
	)
}
