package inputform

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ColorSwatch is a flat button filled with its current color. Tapping it
// opens a color picker seeded with that color.
type ColorSwatch struct {
	widget.BaseWidget

	// OnChanged is called after the user picks a different color.
	OnChanged func(color.Color)

	button *widget.Button
	fill   *canvas.Rectangle
	color  Color
	parent fyne.Window
	picker ColorPicker
}

// NewColorSwatch creates a swatch showing c. parent hosts the picker dialog.
func NewColorSwatch(c color.Color, parent fyne.Window) *ColorSwatch {
	s := &ColorSwatch{
		parent: parent,
		picker: DialogPicker{},
		fill:   canvas.NewRectangle(color.Transparent),
	}
	s.button = widget.NewButton("", s.changeColor)
	s.button.Importance = widget.LowImportance
	s.fill.SetMinSize(fyne.NewSize(48, 16))
	s.ExtendBaseWidget(s)
	s.SetColor(c)
	return s
}

// SetPicker replaces the color picker used on tap.
func (s *ColorSwatch) SetPicker(p ColorPicker) {
	if p == nil {
		p = DialogPicker{}
	}
	s.picker = p
}

func (s *ColorSwatch) Color() Color {
	return s.color
}

// SetColor stores c and repaints the fill.
func (s *ColorSwatch) SetColor(c color.Color) {
	s.color = ColorOf(c)
	s.fill.FillColor = color.NRGBA(s.color)
	s.fill.Refresh()
}

func (s *ColorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.button, container.NewPadded(s.fill)))
}

func (s *ColorSwatch) changeColor() {
	s.picker.PickColor(s.color, s.parent, func(c color.Color) {
		picked := ColorOf(c)
		if picked == s.color {
			return
		}
		s.SetColor(picked)
		if s.OnChanged != nil {
			s.OnChanged(picked)
		}
	})
}
