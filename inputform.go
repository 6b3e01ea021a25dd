// Package inputform builds modal Fyne dialogs from an ordered set of typed
// values and writes the edited values back when the user accepts.
package inputform

import (
	"context"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type binding struct {
	name  string
	kind  Kind
	field field
}

// Form is a dialog built for one Data set. It is used once: after Accept
// or Reject it does nothing further.
type Form struct {
	Logger    zerolog.Logger
	LogOutput io.Writer

	title    string
	data     *Data
	options  FormOptions
	parent   fyne.Window
	bindings []binding

	dialog   dialog.Dialog
	ok       *widget.Button
	cancel   *widget.Button
	onClosed func(bool)
	closed   bool

	initLogOnce sync.Once
}

// Log returns the zerolog logger, initializing it lazily if LogOutput is set.
func (f *Form) Log() *zerolog.Logger {
	if f.LogOutput != nil {
		f.initLogOnce.Do(func() {
			f.Logger = zerolog.New(f.LogOutput).With().Timestamp().Str("Form", f.title).Logger()
		})
	}
	return &f.Logger
}

// NewForm creates the editors for every entry of data. A value without an
// editor fails the whole form with an UnsupportedValueTypeError and no
// dialog is created. data is left untouched until Accept. options should
// start from DefaultOptions.
func NewForm(parent fyne.Window, title string, data *Data, options FormOptions) (*Form, error) {
	if data == nil {
		return nil, errors.New("NewForm: nil data")
	}

	if err := options.Validate(); err != nil {
		return nil, errors.Wrap(err, "NewForm")
	}

	f := &Form{
		LogOutput: options.LogOutput,
		title:     title,
		data:      data,
		options:   options,
		parent:    parent,
	}

	for _, e := range data.entries {
		fld, err := newField(e.Value, options, parent)
		if err != nil {
			var unsupported *UnsupportedValueTypeError
			if errors.As(err, &unsupported) {
				unsupported.Field = e.Name
			} else {
				err = errors.Wrapf(err, "field %q", e.Name)
			}
			f.Log().Error().Str("Method", "NewForm").Str("Field", e.Name).Err(err).Msg("cannot build field")
			return nil, errors.Wrap(err, "NewForm")
		}
		f.bindings = append(f.bindings, binding{name: e.Name, kind: e.Value.Kind(), field: fld})
	}

	f.Log().Debug().Str("Method", "NewForm").Int("Fields", len(f.bindings)).Msg("form built")
	return f, nil
}

// content lays out the labelled rows and the Ok/Cancel bar.
func (f *Form) content() fyne.CanvasObject {
	rows := container.New(layout.NewFormLayout())
	for _, b := range f.bindings {
		rows.Add(widget.NewLabel(b.name + ":"))
		rows.Add(b.field.object())

		if e, ok := b.field.object().(*widget.Entry); ok {
			e.OnSubmitted = func(string) { f.Accept() }
		}
		if e, ok := b.field.object().(*numericEntry); ok {
			e.OnSubmitted = func(string) { f.Accept() }
		}
		if v, ok := b.field.(vectorField); ok {
			for _, e := range v.entries {
				e.OnSubmitted = func(string) { f.Accept() }
			}
		}
	}

	f.ok = widget.NewButton("Ok", f.Accept)
	f.ok.Importance = widget.HighImportance
	f.cancel = widget.NewButton("Cancel", f.Reject)

	return container.NewVBox(rows, container.NewGridWithColumns(2, f.ok, f.cancel))
}

// Show displays the form over the parent window. onClosed receives true
// when the user accepted. Dismissing the dialog any other way rejects it.
// Show must run on the UI goroutine.
func (f *Form) Show(onClosed func(accepted bool)) {
	f.onClosed = onClosed
	f.dialog = dialog.NewCustomWithoutButtons(f.title, f.content(), f.parent)
	f.dialog.SetOnClosed(f.Reject)
	f.dialog.Show()
	f.Log().Debug().Str("Method", "Show").Msg("form shown")
}

// Accept writes every editor's value back into the data set and closes
// the dialog.
func (f *Form) Accept() {
	if f.closed {
		return
	}
	f.closed = true

	for _, b := range f.bindings {
		v := b.field.value()
		f.Log().Debug().Str("Method", "Accept").Str("Field", b.name).Str("Kind", b.kind.String()).Interface("Value", v).Msg("write back")
		f.data.Set(b.name, v)
	}

	f.close(true)
}

// Reject closes the dialog and leaves the data set unchanged.
func (f *Form) Reject() {
	if f.closed {
		return
	}
	f.closed = true
	f.close(false)
}

func (f *Form) close(accepted bool) {
	if f.dialog != nil {
		f.dialog.Hide()
	}
	f.Log().Info().Str("Method", "close").Bool("Accepted", accepted).Msg("form closed")
	if f.onClosed != nil {
		f.onClosed(accepted)
	}
}

// ShowInputForm shows a form for data and blocks until the user closes it.
// It returns true when the user accepted, in which case data holds the
// edited values. It must not be called from the UI goroutine. Cancelling
// ctx rejects the dialog. options should start from DefaultOptions.
func ShowInputForm(ctx context.Context, parent fyne.Window, title string, data *Data, options FormOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	result := make(chan bool, 1)

	var (
		f   *Form
		err error
	)
	fyne.DoAndWait(func() {
		f, err = NewForm(parent, title, data, options)
		if err != nil {
			return
		}
		f.Show(func(accepted bool) {
			result <- accepted
		})
	})
	if err != nil {
		return false, err
	}

	select {
	case accepted := <-result:
		return accepted, nil
	case <-ctx.Done():
		fyne.DoAndWait(f.Reject)
		// The form may have been accepted just before the cancellation.
		if <-result {
			return true, nil
		}
		return false, ctx.Err()
	}
}
