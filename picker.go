package inputform

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/ncruces/zenity"
)

// ColorPicker asks the user for a color. picked runs on the UI goroutine
// and only when the user confirms a choice.
type ColorPicker interface {
	PickColor(current color.Color, parent fyne.Window, picked func(color.Color))
}

// DialogPicker shows the Fyne color picker dialog over parent.
type DialogPicker struct {
	Title string
}

func (p DialogPicker) PickColor(current color.Color, parent fyne.Window, picked func(color.Color)) {
	title := p.Title
	if title == "" {
		title = "Select Color"
	}

	d := dialog.NewColorPicker(title, "", picked, parent)
	d.Advanced = true
	d.SetColor(current)
	d.Show()
}

// NativePicker uses the operating system color chooser. The chooser blocks,
// so it runs on its own goroutine.
type NativePicker struct {
	Title string
}

func (p NativePicker) PickColor(current color.Color, _ fyne.Window, picked func(color.Color)) {
	title := p.Title
	if title == "" {
		title = "Select Color"
	}

	go func() {
		c, err := zenity.SelectColor(zenity.Title(title), zenity.Color(current))
		if err != nil || c == nil {
			return
		}
		fyne.Do(func() {
			picked(c)
		})
	}()
}

func pickerFor(opts FormOptions) ColorPicker {
	if opts.NativeColorPicker {
		return NativePicker{}
	}
	return DialogPicker{}
}
