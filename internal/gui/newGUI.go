//go:build !windows

package gui

import (
	"inputform.app/inputform"
	"inputform.app/inputform/internal/config"
)

// NewFyneScreen .
func NewFyneScreen(version string, cfg *config.Config, seed *inputform.Data, opts inputform.FormOptions) *FyneScreen {
	return initFyneNewScreen(version, cfg, seed, opts)
}
