package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"inputform.app/inputform"
	"inputform.app/inputform/internal/config"
	"inputform.app/inputform/internal/gui"
	"inputform.app/inputform/internal/seedfile"
)

var (
	version = "dev"
	build   string
)

type flags struct {
	dataPath    string
	theme       string
	radios      bool
	index       bool
	nativeColor bool
	min         float64
	max         float64
	precision   int
	debug       bool
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "inputform",
	Short: "Open a dialog built from typed values",
	Long: `inputform builds a modal form from a set of typed values, lets you edit
them and prints the accepted values as YAML on standard output.`,
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		if build != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "inputform %s (%s)\n", version, build)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inputform %s\n", version)
	},
}

// SetVersion sets the version information
func SetVersion(v, b string) {
	version = v
	build = b
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.dataPath, "data", "d", "", "YAML file with the form fields (built-in example when empty)")
	f.StringVar(&opts.theme, "theme", "", "Theme: "+strings.Join(gui.Themes, ", "))
	f.BoolVar(&opts.radios, "radios", false, "Show lists as radio groups")
	f.BoolVar(&opts.index, "index", false, "Return the selected index for lists")
	f.BoolVar(&opts.nativeColor, "native-color", false, "Use the operating system color picker")
	f.Float64Var(&opts.min, "min", -100, "Minimum for numeric fields")
	f.Float64Var(&opts.max, "max", 100, "Maximum for numeric fields")
	f.IntVar(&opts.precision, "precision", 2, "Decimal places for floating point fields")
	f.BoolVar(&opts.debug, "debug", false, "Log to standard error")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetAppConfig()
	if err != nil {
		return err
	}

	formOpts, err := formOptions(cmd, cfg)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = opts.theme
	}

	data, err := loadData(opts.dataPath)
	if err != nil {
		return err
	}

	// Fail before the window opens when a field has no editor.
	if err := data.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scr := gui.NewFyneScreen(version, cfg, data, formOpts)
	scr.Output = cmd.OutOrStdout()
	if opts.debug {
		scr.SetLogOutput(cmd.ErrOrStderr())
	}

	gui.Start(ctx, scr)
	return nil
}

// formOptions merges the config file options with the flags that were set
// explicitly on the command line.
func formOptions(cmd *cobra.Command, cfg *config.Config) (inputform.FormOptions, error) {
	overrides := map[string]any{}
	set := func(flag, key string, v any) {
		if cmd.Flags().Changed(flag) {
			overrides[key] = v
		}
	}
	set("radios", "list_displays_as_radios", opts.radios)
	set("index", "list_returns_index", opts.index)
	set("native-color", "native_color_picker", opts.nativeColor)
	set("min", "numeric_min", opts.min)
	set("max", "numeric_max", opts.max)
	set("precision", "numeric_precision", opts.precision)

	formOpts, err := cfg.FormOptions(overrides)
	if err != nil {
		return inputform.FormOptions{}, errors.Wrap(err, "form options")
	}
	return formOpts, nil
}

func loadData(path string) (*inputform.Data, error) {
	if path == "" {
		return exampleData(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loadData")
	}
	defer f.Close()

	return seedfile.Load(f)
}
