package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Themes lists the theme names accepted in the settings file.
var Themes = []string{"System Default", "Light", "Dark"}

type formTheme struct {
	Theme string
}

var _ fyne.Theme = formTheme{}

func (m formTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch m.Theme {
	case "Dark":
		variant = theme.VariantDark
		switch name {
		case theme.ColorNameBackground, theme.ColorNameOverlayBackground:
			return color.NRGBA{R: 0x22, G: 0x26, B: 0x2e, A: 0xff}
		case theme.ColorNameButton:
			return color.NRGBA{R: 0x33, G: 0x3a, B: 0x46, A: 0xff}
		case theme.ColorNameInputBackground:
			return color.NRGBA{R: 0x2a, G: 0x2f, B: 0x39, A: 0xff}
		case theme.ColorNameDisabled:
			return color.NRGBA{R: 0x5f, G: 0x66, B: 0x73, A: 0xff}
		case theme.ColorNamePrimary:
			return color.NRGBA{R: 0x3f, G: 0xb9, B: 0xa6, A: 0xff}
		}

	case "Light":
		variant = theme.VariantLight
		switch name {
		case theme.ColorNameInputBorder:
			return color.NRGBA{R: 0xd5, G: 0xda, B: 0xe1, A: 0xff}
		case theme.ColorNameDisabled:
			return color.NRGBA{R: 0x9a, G: 0xa1, B: 0xab, A: 0xff}
		case theme.ColorNamePrimary:
			return color.NRGBA{R: 0x1f, G: 0x8a, B: 0x7a, A: 0xff}
		}
	}

	return theme.DefaultTheme().Color(name, variant)
}

func (m formTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m formTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m formTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func applyTheme(a fyne.App, name string) {
	switch name {
	case "Dark", "Light":
		a.Settings().SetTheme(formTheme{name})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}
