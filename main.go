package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"perspective-tool/internal/cli"
	"perspective-tool/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		a := app.NewWithID("com.perspective-tool.gui")
		win := ui.BuildMainWindow(a)
		win.ShowAndRun()
		return
	}

	// Headless mode: render straight to PNG files
	if err := cli.Run(cfg, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
