package gui

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/google/go-cmp/cmp"

	"inputform.app/inputform"
	"inputform.app/inputform/internal/config"
)

func TestDebugWriter(t *testing.T) {
	w := newDebugWriter(2)

	if w.String() != "" {
		t.Fatalf("expected empty ring")
	}

	for _, line := range []string{"a\n", "b\n", "c\n"} {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatal(err)
		}
	}

	if got := w.String(); got != "b\nc\n" {
		t.Fatalf("String() = %q, want oldest entry dropped", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	opts := inputform.DefaultOptions()
	opts.ListDisplaysAsRadios = true
	opts.NumericPrecision = 3

	data := settingsData("Dark", opts)

	themes, _ := inputform.At[inputform.List](data, settingTheme)
	if diff := cmp.Diff(inputform.List{"Dark", "System Default", "Light"}, themes); diff != "" {
		t.Fatalf("theme list mismatch (-want +got):\n%s", diff)
	}

	// An accepted drop-down writes back the selected text.
	data.Set(settingTheme, inputform.Text("Dark"))

	themeName, m := parseSettings(data)
	if themeName != "Dark" {
		t.Fatalf("theme = %q, want Dark", themeName)
	}

	got, err := inputform.OptionsFromMap(m)
	if err != nil {
		t.Fatalf("OptionsFromMap() error = %v", err)
	}
	if diff := cmp.Diff(opts, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestResultMarkdown(t *testing.T) {
	data := inputform.NewData(
		inputform.Entry{Name: "Bool", Value: inputform.Bool(true)},
		inputform.Entry{Name: "Color", Value: inputform.Color{R: 0xff, A: 0xff}},
		inputform.Entry{Name: "Int", Value: inputform.Int(1)},
		inputform.Entry{Name: "Float", Value: inputform.Float(2.5)},
		inputform.Entry{Name: "String", Value: inputform.Text("Test")},
		inputform.Entry{Name: "ComboBox", Value: inputform.Int(0)},
		inputform.Entry{Name: "Vector2", Value: inputform.Vector2{10, 5}},
	)

	want := strings.Join([]string{
		`- **Bool**: true`,
		`- **Color**: #ff0000`,
		`- **Int**: 1`,
		`- **Float**: 2.5`,
		`- **String**: "Test"`,
		`- **ComboBox**: 0`,
		`- **Vector2**: (10, 5)`,
	}, "\n") + "\n"

	if diff := cmp.Diff(want, resultMarkdown(data)); diff != "" {
		t.Fatalf("resultMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestAskGuard(t *testing.T) {
	s := &FyneScreen{}

	if !s.beginAsk() {
		t.Fatalf("first beginAsk should succeed")
	}
	if s.beginAsk() {
		t.Fatalf("second beginAsk should be refused while a form is open")
	}
	s.endAsk()
	if !s.beginAsk() {
		t.Fatalf("beginAsk should succeed after endAsk")
	}
}

func TestFormTheme(t *testing.T) {
	dark := formTheme{"Dark"}
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != (color.NRGBA{R: 0x22, G: 0x26, B: 0x2e, A: 0xff}) {
		t.Fatalf("dark background = %v", got)
	}
	if got := dark.Color(theme.ColorNameOverlayBackground, theme.VariantLight); got != dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Fatalf("dark overlay %v differs from background", got)
	}
	if got := (formTheme{"Light"}).Color(theme.ColorNamePrimary, theme.VariantDark); got != (color.NRGBA{R: 0x1f, G: 0x8a, B: 0x7a, A: 0xff}) {
		t.Fatalf("light primary = %v", got)
	}

	light := formTheme{"Light"}
	want := theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight)
	if got := light.Color(theme.ColorNameForeground, theme.VariantDark); got != want {
		t.Fatalf("light foreground = %v, want %v", got, want)
	}

	a := test.NewTempApp(t)
	applyTheme(a, "Dark")
	if _, ok := a.Settings().Theme().(formTheme); !ok {
		t.Fatalf("applyTheme(Dark) did not install formTheme")
	}
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.2.3", want: "v1.2.3"},
		{in: "v2.0", want: "v2.0.0"},
		{in: " 1.19.0 ", want: "v1.19.0"},
		{in: "dev", want: "dev"},
		{in: "", want: "dev"},
	}

	for _, tt := range tests {
		if got := displayVersion(tt.in); got != tt.want {
			t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplySettings(t *testing.T) {
	newScreen := func() *FyneScreen {
		return &FyneScreen{
			Debug:   newDebugWriter(10),
			Config:  &config.Config{Theme: "Light"},
			options: inputform.DefaultOptions(),
		}
	}
	accepted := func() *inputform.Data {
		opts := inputform.DefaultOptions()
		opts.NumericMax = 50
		data := settingsData("Dark", opts)
		data.Set(settingTheme, inputform.Text("Dark"))
		return data
	}

	t.Run("save failure keeps current settings", func(t *testing.T) {
		a := test.NewTempApp(t)
		blocker := filepath.Join(t.TempDir(), "not-a-dir")
		if err := os.WriteFile(blocker, nil, 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("XDG_CONFIG_HOME", blocker)

		s := newScreen()
		if err := applySettings(s, accepted()); err == nil {
			t.Fatalf("applySettings() should fail when the config cannot be written")
		}
		if s.Config.Theme != "Light" || s.Config.Options != nil {
			t.Fatalf("config changed after failed save: %+v", s.Config)
		}
		if s.formOptions().NumericMax != 100 {
			t.Fatalf("form options changed after failed save")
		}
		if _, ok := a.Settings().Theme().(formTheme); ok {
			t.Fatalf("theme applied after failed save")
		}
	})

	t.Run("saved settings become current", func(t *testing.T) {
		a := test.NewTempApp(t)
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		if err := os.MkdirAll(filepath.Join(dir, "inputform"), 0700); err != nil {
			t.Fatal(err)
		}

		s := newScreen()
		if err := applySettings(s, accepted()); err != nil {
			t.Fatalf("applySettings() error = %v", err)
		}
		if s.Config.Theme != "Dark" || s.formOptions().NumericMax != 50 {
			t.Fatalf("settings not applied: theme %q, options %+v", s.Config.Theme, s.formOptions())
		}
		if _, ok := a.Settings().Theme().(formTheme); !ok {
			t.Fatalf("theme not applied")
		}

		got, err := config.GetAppConfig()
		if err != nil {
			t.Fatalf("GetAppConfig() error = %v", err)
		}
		if got.Theme != "Dark" {
			t.Fatalf("saved theme = %q, want Dark", got.Theme)
		}
	})
}
