package main

import (
	"fmt"
	"os"

	"inputform.app/inputform/internal/commands"
)

var (
	version = "dev"
	build   string
)

func main() {
	commands.SetVersion(version, build)
	if err := commands.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
