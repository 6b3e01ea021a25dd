package gui

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

func aboutWindow(s *FyneScreen) fyne.CanvasObject {
	richhead := widget.NewRichTextFromMarkdown(`
# Input Form

Build a dialog from typed values and read the edited values back

---

## License
MIT

## Version

` + displayVersion(s.version))

	for i := range richhead.Segments {
		if seg, ok := richhead.Segments[i].(*widget.TextSegment); ok {
			seg.Style.Alignment = fyne.TextAlignCenter
		}
	}

	copyLogs := widget.NewButton("Copy Debug Logs", func() {
		logs := s.Debug.String()
		if logs == "" {
			dialog.ShowInformation("Debug", "Debug logs are empty", s.Current)
			return
		}
		fyne.CurrentApp().Clipboard().SetContent(logs)
	})

	return container.NewVBox(richhead, container.NewCenter(copyLogs))
}
