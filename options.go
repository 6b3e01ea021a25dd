package inputform

import (
	"io"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// FormOptions controls how a form renders lists and numbers. It is passed
// by value, so every dialog works on its own copy. Start from
// DefaultOptions: the zero value has an empty numeric range and fails
// Validate.
type FormOptions struct {
	// ListReturnsIndex makes list fields write back the selected index
	// instead of the selected text.
	ListReturnsIndex bool `mapstructure:"list_returns_index"`
	// ListDisplaysAsRadios renders list fields as a radio group instead of
	// a drop-down.
	ListDisplaysAsRadios bool `mapstructure:"list_displays_as_radios"`

	NumericMin       float64 `mapstructure:"numeric_min"`
	NumericMax       float64 `mapstructure:"numeric_max"`
	NumericPrecision int     `mapstructure:"numeric_precision"`

	// NativeColorPicker opens the operating system color chooser from
	// color swatches instead of the Fyne one.
	NativeColorPicker bool `mapstructure:"native_color_picker"`

	// LogOutput enables form logging when set.
	LogOutput io.Writer `mapstructure:"log_output"`
}

// DefaultOptions returns a fresh FormOptions with the default settings.
func DefaultOptions() FormOptions {
	return FormOptions{
		NumericMin:       -100,
		NumericMax:       100,
		NumericPrecision: 2,
	}
}

// OptionsFromMap decodes m over DefaultOptions. Keys use the snake_case
// names of the mapstructure tags; unknown keys are rejected.
func OptionsFromMap(m map[string]any) (FormOptions, error) {
	opts := DefaultOptions()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return FormOptions{}, errors.Wrap(err, "OptionsFromMap")
	}

	if err := decoder.Decode(m); err != nil {
		return FormOptions{}, errors.Wrap(err, "OptionsFromMap")
	}

	if err := opts.Validate(); err != nil {
		return FormOptions{}, err
	}

	return opts, nil
}

// MaxNumericPrecision is the largest number of decimals a float64 keeps.
const MaxNumericPrecision = 15

// Validate reports inconsistent numeric settings.
func (o FormOptions) Validate() error {
	if !(o.NumericMin < o.NumericMax) {
		return errors.Errorf("numeric_min %v must be below numeric_max %v", o.NumericMin, o.NumericMax)
	}
	if o.NumericPrecision < 0 || o.NumericPrecision > MaxNumericPrecision {
		return errors.Errorf("numeric_precision %d is outside 0..%d", o.NumericPrecision, MaxNumericPrecision)
	}
	return nil
}
