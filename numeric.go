package inputform

import (
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
)

// numericEntry is a spin box without step buttons: an entry that only
// accepts numeric input and keeps its value inside [min, max].
type numericEntry struct {
	widget.Entry
	min, max  float64
	precision int
	value     float64
}

func newNumericEntry(lo, hi float64, precision int) *numericEntry {
	e := &numericEntry{min: lo, max: hi, precision: precision}
	e.ExtendBaseWidget(e)
	e.Validator = func(s string) error {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err
	}
	return e
}

func newFloatEntry(opts FormOptions) *numericEntry {
	return newNumericEntry(opts.NumericMin, opts.NumericMax, opts.NumericPrecision)
}

// maxExactInt bounds integer entries to the range a float64 holds exactly.
const maxExactInt = 1 << 53

// Integer entries round their bounds inwards. A range holding no integer
// is an error.
func newIntEntry(opts FormOptions) (*numericEntry, error) {
	lo := math.Max(math.Ceil(opts.NumericMin), -maxExactInt)
	hi := math.Min(math.Floor(opts.NumericMax), maxExactInt)
	if lo > hi {
		return nil, errors.Errorf("no integer between %v and %v", opts.NumericMin, opts.NumericMax)
	}
	return newNumericEntry(lo, hi, 0), nil
}

func (e *numericEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
	case r == '-' && e.min < 0:
	case r == '.' && e.precision > 0:
	default:
		return
	}
	e.Entry.TypedRune(r)
}

func (e *numericEntry) FocusLost() {
	e.SetValue(e.Value())
	e.Entry.FocusLost()
}

// SetValue clamps and rounds v, then shows it.
func (e *numericEntry) SetValue(v float64) {
	e.value = e.normalize(v)
	e.SetText(strconv.FormatFloat(e.value, 'f', e.precision, 64))
}

// Value returns the number currently typed, clamped and rounded. Text that
// does not parse yields the last value set.
func (e *numericEntry) Value() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Text), 64)
	if err != nil {
		return e.value
	}
	return e.normalize(v)
}

func (e *numericEntry) normalize(v float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(e.min, math.Min(e.max, v))
	scale := math.Pow(10, float64(e.precision))
	return math.Round(v*scale) / scale
}
