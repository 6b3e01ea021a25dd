package gui

import (
	"fyne.io/fyne/v2"

	"inputform.app/inputform"
)

const (
	settingTheme       = "Theme"
	settingRadios      = "Lists As Radios"
	settingIndex       = "Lists Return Index"
	settingMin         = "Numeric Min"
	settingMax         = "Numeric Max"
	settingPrecision   = "Numeric Precision"
	settingNativeColor = "Native Color Picker"
)

// settingsOptions bounds the numeric settings themselves.
var settingsOptions = inputform.FormOptions{
	NumericMin:       -1e6,
	NumericMax:       1e6,
	NumericPrecision: 2,
}

// settingsData describes the current settings as form data. The current
// theme comes first so the drop-down starts on it.
func settingsData(themeName string, opts inputform.FormOptions) *inputform.Data {
	themes := inputform.List{themeName}
	for _, t := range Themes {
		if t != themeName {
			themes = append(themes, t)
		}
	}

	return inputform.NewData(
		inputform.Entry{Name: settingTheme, Value: themes},
		inputform.Entry{Name: settingRadios, Value: inputform.Bool(opts.ListDisplaysAsRadios)},
		inputform.Entry{Name: settingIndex, Value: inputform.Bool(opts.ListReturnsIndex)},
		inputform.Entry{Name: settingMin, Value: inputform.Float(opts.NumericMin)},
		inputform.Entry{Name: settingMax, Value: inputform.Float(opts.NumericMax)},
		inputform.Entry{Name: settingPrecision, Value: inputform.Int(opts.NumericPrecision)},
		inputform.Entry{Name: settingNativeColor, Value: inputform.Bool(opts.NativeColorPicker)},
	)
}

// parseSettings reads accepted settings back into a theme name and an
// option map for the config file.
func parseSettings(data *inputform.Data) (string, map[string]any) {
	themeName, _ := inputform.At[inputform.Text](data, settingTheme)
	radios, _ := inputform.At[inputform.Bool](data, settingRadios)
	index, _ := inputform.At[inputform.Bool](data, settingIndex)
	lo, _ := inputform.At[inputform.Float](data, settingMin)
	hi, _ := inputform.At[inputform.Float](data, settingMax)
	precision, _ := inputform.At[inputform.Int](data, settingPrecision)
	native, _ := inputform.At[inputform.Bool](data, settingNativeColor)

	return string(themeName), map[string]any{
		"list_displays_as_radios": bool(radios),
		"list_returns_index":      bool(index),
		"numeric_min":             float64(lo),
		"numeric_max":             float64(hi),
		"numeric_precision":       int(precision),
		"native_color_picker":     bool(native),
	}
}

func settingsAction(s *FyneScreen) {
	if !s.beginAsk() {
		return
	}
	defer s.endAsk()

	data := settingsData(s.Config.Theme, s.formOptions())

	formOpts := settingsOptions
	formOpts.LogOutput = s.logWriter()

	accepted, err := inputform.ShowInputForm(s.ctx, s.Current, "Settings", data, formOpts)
	if err != nil {
		s.Log().Error().Str("Method", "settingsAction").Err(err).Msg("settings form failed")
		if s.ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			check(s.Current, err)
		})
		return
	}
	if !accepted {
		return
	}

	if err := applySettings(s, data); err != nil {
		s.Log().Error().Str("Method", "settingsAction").Err(err).Msg("failed to save settings")
		fyne.Do(func() {
			check(s.Current, err)
		})
	}
}

// applySettings saves accepted settings and only then makes them current.
func applySettings(s *FyneScreen, data *inputform.Data) error {
	themeName, options := parseSettings(data)
	newOpts, err := inputform.OptionsFromMap(options)
	if err != nil {
		return err
	}
	newOpts.LogOutput = s.formOptions().LogOutput

	cfg := *s.Config
	cfg.Theme = themeName
	cfg.Options = options
	if err := cfg.SaveAppConfig(); err != nil {
		return err
	}

	*s.Config = cfg
	s.setFormOptions(newOpts)

	s.Log().Info().Str("Method", "applySettings").Str("Theme", themeName).Msg("settings saved")
	fyne.Do(func() {
		applyTheme(fyne.CurrentApp(), themeName)
	})
	return nil
}
