// Command splitlayout previews where a splitting button places its
// sub-elements. It runs as a terminal UI by default; with -png it writes
// the layout to an image and exits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		mode      = flag.String("mode", "circle", "display mode: circle, direction or list")
		direction = flag.String("direction", "up", "direction for direction and list modes")
		columns   = flag.Int("columns", 3, "column count for list mode")
		count     = flag.Int("count", 4, "number of sub-elements")
		size      = flag.Float64("size", 40, "main control size in points")
		config    = flag.String("config", "", "read mode, direction, columns and frame size from a config file")
		png       = flag.String("png", "", "write the layout to this PNG file and exit")
	)
	flag.Parse()

	m, err := newModel(*mode, *direction, *columns, *count, *size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "splitlayout:", err)
		os.Exit(2)
	}
	if *config != "" {
		fc, err := splitter.LoadConfig(*config)
		if err != nil {
			fmt.Fprintln(os.Stderr, "splitlayout:", err)
			os.Exit(2)
		}
		if err := m.applyConfig(fc); err != nil {
			fmt.Fprintln(os.Stderr, "splitlayout:", err)
			os.Exit(2)
		}
	}

	if *png != "" {
		anchor, targets, err := m.layout()
		if err == nil {
			err = exportPNG(*png, anchor, targets)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "splitlayout:", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// canvas is the virtual screen the anchor is centred in.
var canvas = layout.Size{W: 1024, H: 768}
