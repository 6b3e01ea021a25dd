package gui

import (
	"container/ring"
	"context"
	"io"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"inputform.app/inputform"
	"inputform.app/inputform/internal/config"
)

// FyneScreen .
type FyneScreen struct {
	mu          sync.RWMutex
	Debug       *debugWriter
	Current     fyne.Window
	Ask         *widget.Button
	Settings    *widget.Button
	Result      *widget.RichText
	Output      io.Writer
	Config      *config.Config
	Logger      zerolog.Logger
	ctx         context.Context
	seed        *inputform.Data
	options     inputform.FormOptions
	logOutput   io.Writer
	asking      bool
	version     string
	initLogOnce sync.Once
}

type debugWriter struct {
	mu   sync.Mutex
	ring *ring.Ring
}

func newDebugWriter(size int) *debugWriter {
	return &debugWriter{ring: ring.New(size)}
}

func (f *debugWriter) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ring.Value = string(b)
	f.ring = f.ring.Next()
	return len(b), nil
}

// String returns the buffered log lines, oldest first.
func (f *debugWriter) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var sb strings.Builder
	f.ring.Do(func(p any) {
		if p != nil {
			sb.WriteString(p.(string))
		}
	})
	return sb.String()
}

// Log returns the screen logger, initializing it lazily on first use.
func (p *FyneScreen) Log() *zerolog.Logger {
	p.initLogOnce.Do(func() {
		p.Logger = zerolog.New(p.logWriter()).With().Timestamp().Logger()
	})
	return &p.Logger
}

func (p *FyneScreen) logWriter() io.Writer {
	if p.logOutput != nil {
		return p.logOutput
	}
	return p.Debug
}

// Start .
func Start(ctx context.Context, s *FyneScreen) {
	w := s.Current
	s.ctx = ctx

	tabs := container.NewAppTabs(
		container.NewTabItem("Form", container.NewVScroll(container.NewPadded(mainWindow(s)))),
		container.NewTabItem("About", container.NewVScroll(aboutWindow(s))),
	)

	w.SetContent(tabs)
	w.Resize(fyne.NewSize(480, 360))
	w.CenterOnScreen()

	go func() {
		<-ctx.Done()
		fyne.Do(w.Close)
	}()

	w.ShowAndRun()
}

func initFyneNewScreen(v string, cfg *config.Config, seed *inputform.Data, opts inputform.FormOptions) *FyneScreen {
	inputformApp := app.NewWithID("app.inputform.demo")
	applyTheme(inputformApp, cfg.Theme)

	w := inputformApp.NewWindow("Input Form")

	return &FyneScreen{
		Current: w,
		Debug:   newDebugWriter(1000),
		Config:  cfg,
		ctx:     context.Background(),
		seed:    seed,
		options: opts,
		version: v,
	}
}

// SetLogOutput adds w as a second destination for form and screen logs.
// It must be called before Start.
func (p *FyneScreen) SetLogOutput(w io.Writer) {
	p.logOutput = io.MultiWriter(p.Debug, w)
}

func (p *FyneScreen) formOptions() inputform.FormOptions {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.options
}

func (p *FyneScreen) setFormOptions(opts inputform.FormOptions) {
	p.mu.Lock()
	p.options = opts
	p.mu.Unlock()
}

func check(win fyne.Window, err error) {
	if err != nil {
		cleanErr := strings.ReplaceAll(err.Error(), ": ", "\n")
		dialog.ShowError(errors.New(cleanErr), win)
	}
}
