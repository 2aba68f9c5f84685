package splitter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "splitter.toml", `
mode = "list"
direction = "down"
columns = 3
overlay_color = "#000000"
icons = ["camera", "music", "mail"]
language = "de"

[frame]
w = 40
h = 40
centered = true

[timing]
reveal = "300ms"
overlay_alpha = 0.6
`)

	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := fc.Config(layout.Size{W: 640, H: 480})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Display != (layout.Grid{Direction: layout.Down, Columns: 3}) {
		t.Errorf("display = %v", cfg.Display)
	}
	if want := (layout.Rect{X: 300, Y: 220, W: 40, H: 40}); cfg.Frame != want {
		t.Errorf("frame = %v, want %v", cfg.Frame, want)
	}
	if cfg.Timing.Reveal != 300*time.Millisecond {
		t.Errorf("reveal = %v", cfg.Timing.Reveal)
	}
	if cfg.Timing.OverlayAlpha != 0.6 {
		t.Errorf("overlay alpha = %v", cfg.Timing.OverlayAlpha)
	}
	if cfg.Timing.Collapse != DefaultTiming().Collapse {
		t.Errorf("unset collapse = %v, want default", cfg.Timing.Collapse)
	}
	if len(fc.Icons) != 3 || fc.Language != "de" {
		t.Errorf("icons=%v language=%q", fc.Icons, fc.Language)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "splitter.yaml", `
mode: direction
direction: left
frame:
  x: 10
  y: 20
  w: 48
  h: 32
timing:
  dismiss_in: 1s
`)

	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := fc.Config(layout.Size{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display != (layout.Line{Direction: layout.Left}) {
		t.Errorf("display = %v", cfg.Display)
	}
	if want := (layout.Rect{X: 10, Y: 20, W: 48, H: 32}); cfg.Frame != want {
		t.Errorf("frame = %v, want %v", cfg.Frame, want)
	}
	if cfg.Timing.DismissIn != time.Second {
		t.Errorf("dismiss in = %v", cfg.Timing.DismissIn)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"unknown extension", "splitter.json", `{}`},
		{"bad toml", "splitter.toml", `mode = `},
		{"bad yaml", "splitter.yml", "mode: [circle"},
		{"bad duration", "splitter.toml", "mode = \"circle\"\n[timing]\nreveal = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.body))
			if !IsConfigurationError(err) {
				t.Fatalf("got %v, want a configuration error", err)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestFileConfigDisplay(t *testing.T) {
	tests := []struct {
		name    string
		fc      FileConfig
		want    layout.Display
		wantErr bool
	}{
		{"circle", FileConfig{Mode: "circle"}, layout.Circle{}, false},
		{"direction", FileConfig{Mode: "direction", Direction: "up"}, layout.Line{Direction: layout.Up}, false},
		{"line alias", FileConfig{Mode: "line", Direction: "right"}, layout.Line{Direction: layout.Right}, false},
		{"list", FileConfig{Mode: "list", Direction: "left", Columns: 2}, layout.Grid{Direction: layout.Left, Columns: 2}, false},
		{"no mode", FileConfig{}, nil, true},
		{"unknown mode", FileConfig{Mode: "spiral"}, nil, true},
		{"circle with direction", FileConfig{Mode: "circle", Direction: "up"}, nil, true},
		{"circle with columns", FileConfig{Mode: "circle", Columns: 2}, nil, true},
		{"direction with columns", FileConfig{Mode: "direction", Direction: "up", Columns: 2}, nil, true},
		{"direction without direction", FileConfig{Mode: "direction"}, nil, true},
		{"list without columns", FileConfig{Mode: "list", Direction: "down"}, nil, true},
		{"list with negative columns", FileConfig{Mode: "list", Direction: "down", Columns: -1}, nil, true},
		{"unknown direction", FileConfig{Mode: "direction", Direction: "sideways"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fc.Display()
			if tt.wantErr {
				if !IsConfigurationError(err) {
					t.Fatalf("got %v, %v; want a configuration error", got, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Display() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	base := Config{Frame: testFrame, Display: layout.Circle{}, Timing: DefaultTiming()}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := base
	bad.Timing.OverlayAlpha = 1.5
	if !IsConfigurationError(bad.Validate()) {
		t.Error("overlay alpha above 1 accepted")
	}
}

func TestDismissConfig(t *testing.T) {
	tests := []struct {
		name    string
		dismiss DismissConfig
		kind    DismissKind
		wantErr bool
	}{
		{"default", DismissConfig{}, DismissDefault, false},
		{"icon", DismissConfig{Icon: "mail"}, DismissIcon, false},
		{"image", DismissConfig{Image: "cancel.png"}, DismissImage, false},
		{"title", DismissConfig{Title: "Cancel"}, DismissTitle, false},
		{"blank title", DismissConfig{Title: "  "}, DismissDefault, false},
		{"icon and title", DismissConfig{Icon: "mail", Title: "Cancel"}, DismissIcon, true},
		{"image and icon", DismissConfig{Image: "x.png", Icon: "mail"}, DismissImage, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dismiss.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			err := tt.dismiss.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsConfigurationError(err) {
				t.Errorf("Validate() = %T, want *ConfigurationError", err)
			}
		})
	}
}

func TestLoadConfigDismiss(t *testing.T) {
	path := writeConfig(t, "splitter.toml", `
mode = "circle"

[frame]
w = 40
h = 40

[dismiss]
title = "Cancel"
`)
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if fc.Dismiss.Kind() != DismissTitle || fc.Dismiss.Title != "Cancel" {
		t.Errorf("dismiss = %+v", fc.Dismiss)
	}

	yamlPath := writeConfig(t, "splitter.yaml", `
mode: circle
frame: {w: 40, h: 40}
dismiss:
  image: cancel.png
  icon: mail
`)
	fc, err = LoadConfig(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fc.Config(layout.Size{W: 640, H: 480}); !IsConfigurationError(err) {
		t.Errorf("Config with two dismiss sources = %v, want configuration error", err)
	}
}
