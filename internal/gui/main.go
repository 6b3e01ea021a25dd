package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func mainWindow(s *FyneScreen) fyne.CanvasObject {
	ask := widget.NewButtonWithIcon("Ask Me", theme.DocumentCreateIcon(), func() {
		go askAction(s)
	})
	ask.Importance = widget.HighImportance

	settings := widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
		go settingsAction(s)
	})

	result := widget.NewRichTextFromMarkdown("_Press **Ask Me** to open the form._")
	result.Wrapping = fyne.TextWrapWord

	s.Ask = ask
	s.Settings = settings
	s.Result = result

	buttons := container.NewGridWithColumns(2, ask, settings)
	return container.NewBorder(buttons, nil, nil, nil, result)
}
