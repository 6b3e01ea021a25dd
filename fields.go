package inputform

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// field is the editor of one form row.
type field interface {
	object() fyne.CanvasObject
	value() Value
}

type checkField struct{ check *widget.Check }

func (f checkField) object() fyne.CanvasObject { return f.check }
func (f checkField) value() Value              { return Bool(f.check.Checked) }

type swatchField struct{ swatch *ColorSwatch }

func (f swatchField) object() fyne.CanvasObject { return f.swatch }
func (f swatchField) value() Value              { return f.swatch.Color() }

type floatField struct{ entry *numericEntry }

func (f floatField) object() fyne.CanvasObject { return f.entry }
func (f floatField) value() Value              { return Float(f.entry.Value()) }

type intField struct{ entry *numericEntry }

func (f intField) object() fyne.CanvasObject { return f.entry }
func (f intField) value() Value              { return Int(f.entry.Value()) }

type textField struct{ entry *widget.Entry }

func (f textField) object() fyne.CanvasObject { return f.entry }
func (f textField) value() Value              { return Text(f.entry.Text) }

type selectField struct {
	sel         *widget.Select
	returnIndex bool
}

func (f selectField) object() fyne.CanvasObject { return f.sel }

func (f selectField) value() Value {
	if f.returnIndex {
		return Int(f.sel.SelectedIndex())
	}
	return Text(f.sel.Selected)
}

type radioField struct {
	group       *widget.RadioGroup
	returnIndex bool
}

func (f radioField) object() fyne.CanvasObject { return f.group }

func (f radioField) value() Value {
	if !f.returnIndex {
		return Text(f.group.Selected)
	}
	for i, opt := range f.group.Options {
		if opt == f.group.Selected {
			return Int(i)
		}
	}
	return Int(-1)
}

type vectorField struct {
	box     *fyne.Container
	entries []*numericEntry
}

func (f vectorField) object() fyne.CanvasObject { return f.box }

func (f vectorField) value() Value {
	if len(f.entries) == 2 {
		return Vector2{f.entries[0].Value(), f.entries[1].Value()}
	}
	return Vector3{f.entries[0].Value(), f.entries[1].Value(), f.entries[2].Value()}
}

func newVectorField(opts FormOptions, components []float64) vectorField {
	f := vectorField{box: container.NewGridWithColumns(len(components))}
	for _, c := range components {
		e := newFloatEntry(opts)
		e.SetValue(c)
		f.entries = append(f.entries, e)
		f.box.Add(e)
	}
	return f
}

// newField picks the editor for v. Every Value kind has exactly one case.
func newField(v Value, opts FormOptions, parent fyne.Window) (field, error) {
	switch t := v.(type) {
	case Bool:
		check := widget.NewCheck("", nil)
		check.SetChecked(bool(t))
		return checkField{check}, nil

	case Color:
		swatch := NewColorSwatch(t, parent)
		swatch.SetPicker(pickerFor(opts))
		return swatchField{swatch}, nil

	case Float:
		e := newFloatEntry(opts)
		e.SetValue(float64(t))
		return floatField{e}, nil

	case Int:
		e, err := newIntEntry(opts)
		if err != nil {
			return nil, err
		}
		e.SetValue(float64(t))
		return intField{e}, nil

	case Text:
		e := widget.NewEntry()
		e.SetText(string(t))
		return textField{e}, nil

	case List:
		items := append([]string(nil), t...)
		if opts.ListDisplaysAsRadios {
			group := widget.NewRadioGroup(items, nil)
			group.Horizontal = true
			group.Required = true
			if len(items) > 0 {
				group.SetSelected(items[0])
			}
			return radioField{group: group, returnIndex: opts.ListReturnsIndex}, nil
		}

		sel := widget.NewSelect(items, nil)
		if len(items) > 0 {
			sel.SetSelectedIndex(0)
		}
		return selectField{sel: sel, returnIndex: opts.ListReturnsIndex}, nil

	case Vector2:
		return newVectorField(opts, t[:]), nil

	case Vector3:
		return newVectorField(opts, t[:]), nil
	}

	return nil, &UnsupportedValueTypeError{Type: typeName(v)}
}
