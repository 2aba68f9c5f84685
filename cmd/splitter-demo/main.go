// Command splitter-demo shows a splitting button in the middle of the
// screen. Pressing it reveals four sub-buttons; choosing one reports it in
// the status line. L1/R1 (Q/E or Tab on a keyboard) page through the display
// modes, Select (X) quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/BrandonKowalski/splitter/pkg/splitter/platform/cannoli"
	"github.com/BrandonKowalski/splitter/pkg/splitter/scene"
	"github.com/BrandonKowalski/splitter/pkg/splitter/screen"
)

const (
	sceneCircle scene.ID = iota
	sceneDirection
	sceneList
)

var modes = scene.Cycle{sceneCircle, sceneDirection, sceneList}

type flags struct {
	config      string
	mode        string
	direction   string
	columns     int
	lang        string
	theme       string
	inputDevice string
	logPath     string
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "TOML or YAML configuration file")
	flag.StringVar(&f.mode, "mode", "", "display mode: circle, direction or list")
	flag.StringVar(&f.direction, "direction", "", "direction for direction and list modes: up, down, left, right")
	flag.IntVar(&f.columns, "columns", 0, "column count for list mode")
	flag.StringVar(&f.lang, "lang", "", "language tag, e.g. en, de, fr")
	flag.StringVar(&f.theme, "theme", "default", "colour theme: default or cannoli")
	flag.StringVar(&f.inputDevice, "input-device", "", "evdev device whose menu key toggles the button")
	flag.StringVar(&f.logPath, "log", "", "log file path")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintln(os.Stderr, "splitter-demo:", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	fc, err := loadFileConfig(f)
	if err != nil {
		return err
	}

	opts := screen.Options{
		WindowTitle: "Splitter",
		LogPath:     f.logPath,
		LogLevel:    fc.LogLevel,
		Language:    fc.Language,
	}
	if f.theme == "cannoli" {
		theme := cannoli.InitCannoliTheme(cannoli.DefaultFontPath)
		opts.Theme = &theme
	}
	if err := screen.Init(opts); err != nil {
		return err
	}
	defer screen.Close()

	if fc.OverlayColor != "" {
		c, err := screen.ParseColor(fc.OverlayColor)
		if err != nil {
			return fmt.Errorf("overlay_color: %w", err)
		}
		theme := screen.GetTheme()
		theme.OverlayColor = c
		screen.SetTheme(theme)
	}

	var keys *screen.KeySource
	if f.inputDevice != "" {
		keys = screen.NewKeySource(f.inputDevice, nil)
		if err := keys.Start(); err != nil {
			splitter.GetLogger().Warn("Input device unavailable", "path", f.inputDevice, "error", err)
			keys = nil
		} else {
			defer keys.Stop()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := &demo{base: *fc, keys: keys}
	r := scene.New()
	for _, id := range modes {
		r.Register(id, d.scene)
	}
	r.OnTransition(func(from scene.ID, result any, _ *scene.History) (scene.ID, any) {
		switch result.(screen.Action) {
		case screen.ActionNext:
			return modes.Next(from), modeInput(modes.Next(from))
		case screen.ActionPrevious:
			return modes.Previous(from), modeInput(modes.Previous(from))
		}
		return scene.Exit, nil
	})

	start, err := startScene(fc)
	if err != nil {
		return err
	}
	return r.Run(ctx, start, modeInput(start))
}

func loadFileConfig(f flags) (*splitter.FileConfig, error) {
	fc := &splitter.FileConfig{Mode: "circle"}
	if f.config != "" {
		loaded, err := splitter.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		fc = loaded
	}

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["mode"] {
		fc.Mode = f.mode
		fc.Direction, fc.Columns = "", 0
	}
	if set["direction"] {
		fc.Direction = f.direction
	}
	if set["columns"] {
		fc.Columns = f.columns
	}
	if set["lang"] {
		fc.Language = f.lang
	}

	if fc.Frame.W == 0 || fc.Frame.H == 0 {
		fc.Frame = splitter.FrameConfig{W: 40, H: 40, Centered: true}
	}
	if _, err := fc.Display(); err != nil {
		return nil, err
	}
	return fc, nil
}

func startScene(fc *splitter.FileConfig) (scene.ID, error) {
	mode, err := layout.ParseMode(fc.Mode)
	if err != nil {
		return scene.Exit, err
	}
	switch mode {
	case layout.ModeDirection:
		return sceneDirection, nil
	case layout.ModeList:
		return sceneList, nil
	default:
		return sceneCircle, nil
	}
}
