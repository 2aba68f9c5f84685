package splitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Timing controls the reveal and dismissal animations. Zero fields take the
// defaults from the constants package.
type Timing struct {
	Reveal        time.Duration // Sub-elements fade in and move to their targets
	OverlayIn     time.Duration // Dimming overlay fade in
	OverlayAlpha  float64       // Overlay alpha while open
	DismissIn     time.Duration // Dismissal control fade in
	Collapse      time.Duration // Sub-elements return to the anchor and fade out
	OverlayOut    time.Duration // Dimming overlay fade out
	MainFadeIn    time.Duration // Main control fade back in
	MainFadeDelay time.Duration // Delay before the main control fades back in
}

// DefaultTiming returns the stock animation timings.
func DefaultTiming() Timing {
	return Timing{
		Reveal:        constants.DefaultRevealDuration,
		OverlayIn:     constants.DefaultOverlayInDuration,
		OverlayAlpha:  constants.DefaultOverlayAlpha,
		DismissIn:     constants.DefaultDismissInDuration,
		Collapse:      constants.DefaultCollapseDuration,
		OverlayOut:    constants.DefaultOverlayOutDuration,
		MainFadeIn:    constants.DefaultMainFadeDuration,
		MainFadeDelay: constants.DefaultMainFadeDelay,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.Reveal == 0 {
		t.Reveal = d.Reveal
	}
	if t.OverlayIn == 0 {
		t.OverlayIn = d.OverlayIn
	}
	if t.OverlayAlpha == 0 {
		t.OverlayAlpha = d.OverlayAlpha
	}
	if t.DismissIn == 0 {
		t.DismissIn = d.DismissIn
	}
	if t.Collapse == 0 {
		t.Collapse = d.Collapse
	}
	if t.OverlayOut == 0 {
		t.OverlayOut = d.OverlayOut
	}
	if t.MainFadeIn == 0 {
		t.MainFadeIn = d.MainFadeIn
	}
	if t.MainFadeDelay == 0 {
		t.MainFadeDelay = d.MainFadeDelay
	}
	return t
}

// Config is the construction-time configuration of a Controller.
type Config struct {
	Frame   layout.Rect    // Rest-state rectangle of the main control
	Display layout.Display // layout.Circle{}, layout.Line{...} or layout.Grid{...}
	Timing  Timing
}

// Validate checks that the display and frame can be laid out.
func (c Config) Validate() error {
	if c.Display == nil {
		return configError("display", "no display mode", nil)
	}
	if err := c.Display.Validate(); err != nil {
		return configError("display", "", err)
	}
	if c.Frame.Empty() {
		return configError("frame", fmt.Sprintf("%vx%v has no area", c.Frame.W, c.Frame.H), nil)
	}
	if c.Timing.OverlayAlpha < 0 || c.Timing.OverlayAlpha > 1 {
		return configError("overlay_alpha", fmt.Sprintf("%v is outside [0, 1]", c.Timing.OverlayAlpha), nil)
	}
	return nil
}

// Duration is a time.Duration written as a string ("500ms", "1.5s") in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// FrameConfig places the main control. With Centered set, X and Y are
// ignored and the control is centred in the surface.
type FrameConfig struct {
	X        float64 `toml:"x" yaml:"x"`
	Y        float64 `toml:"y" yaml:"y"`
	W        float64 `toml:"w" yaml:"w"`
	H        float64 `toml:"h" yaml:"h"`
	Centered bool    `toml:"centered" yaml:"centered"`
}

type TimingConfig struct {
	Reveal        Duration `toml:"reveal" yaml:"reveal"`
	OverlayIn     Duration `toml:"overlay_in" yaml:"overlay_in"`
	OverlayAlpha  float64  `toml:"overlay_alpha" yaml:"overlay_alpha"`
	DismissIn     Duration `toml:"dismiss_in" yaml:"dismiss_in"`
	Collapse      Duration `toml:"collapse" yaml:"collapse"`
	OverlayOut    Duration `toml:"overlay_out" yaml:"overlay_out"`
	MainFadeIn    Duration `toml:"main_fade_in" yaml:"main_fade_in"`
	MainFadeDelay Duration `toml:"main_fade_delay" yaml:"main_fade_delay"`
}

// DismissKind says how the dismissal control is drawn.
type DismissKind int

const (
	DismissDefault DismissKind = iota // The built-in close glyph
	DismissIcon                       // An embedded icon by name
	DismissImage                      // An image file
	DismissTitle                      // A round face with a text title
)

// DismissConfig replaces the dismissal control's close glyph with an
// embedded icon, an image file or a title. At most one may be set.
type DismissConfig struct {
	Icon  string `toml:"icon" yaml:"icon"`
	Image string `toml:"image" yaml:"image"`
	Title string `toml:"title" yaml:"title"`
}

// Kind returns which field is set, DismissDefault when none is.
func (d DismissConfig) Kind() DismissKind {
	switch {
	case strings.TrimSpace(d.Image) != "":
		return DismissImage
	case strings.TrimSpace(d.Icon) != "":
		return DismissIcon
	case strings.TrimSpace(d.Title) != "":
		return DismissTitle
	}
	return DismissDefault
}

// Validate rejects a configuration that sets more than one source.
func (d DismissConfig) Validate() error {
	set := 0
	for _, v := range []string{d.Icon, d.Image, d.Title} {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set > 1 {
		return configError("dismiss", "set only one of icon, image and title", nil)
	}
	return nil
}

// FileConfig is the on-disk shape of a splitting button configuration.
// Mode parameters are flat here; Config converts them to a layout.Display
// and rejects combinations that do not fit the mode.
type FileConfig struct {
	Mode         string        `toml:"mode" yaml:"mode"`
	Direction    string        `toml:"direction" yaml:"direction"`
	Columns      int           `toml:"columns" yaml:"columns"`
	Frame        FrameConfig   `toml:"frame" yaml:"frame"`
	Timing       TimingConfig  `toml:"timing" yaml:"timing"`
	OverlayColor string        `toml:"overlay_color" yaml:"overlay_color"`
	Icons        []string      `toml:"icons" yaml:"icons"`
	Dismiss      DismissConfig `toml:"dismiss" yaml:"dismiss"`
	Language     string        `toml:"language" yaml:"language"`
	LogLevel     string        `toml:"log_level" yaml:"log_level"`
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, configError("file", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, configError("file", path, err)
		}
	default:
		return nil, configError("file", fmt.Sprintf("unsupported config format %q", filepath.Ext(path)), nil)
	}

	return &fc, nil
}

// Display converts the flat mode fields into a layout.Display.
func (fc FileConfig) Display() (layout.Display, error) {
	if strings.TrimSpace(fc.Mode) == "" {
		return nil, configError("mode", "no display mode", nil)
	}
	mode, err := layout.ParseMode(fc.Mode)
	if err != nil {
		return nil, configError("mode", "", err)
	}

	switch mode {
	case layout.ModeCircle:
		if fc.Direction != "" {
			return nil, configError("direction", "circle mode takes no direction", nil)
		}
		if fc.Columns != 0 {
			return nil, configError("columns", "circle mode takes no column count", nil)
		}
		return layout.Circle{}, nil

	case layout.ModeDirection:
		if fc.Columns != 0 {
			return nil, configError("columns", "direction mode takes no column count", nil)
		}
		dir, err := fc.direction()
		if err != nil {
			return nil, err
		}
		return layout.Line{Direction: dir}, nil

	default:
		dir, err := fc.direction()
		if err != nil {
			return nil, err
		}
		if fc.Columns <= 0 {
			return nil, configError("columns", fmt.Sprintf("list mode needs a positive column count, got %d", fc.Columns), nil)
		}
		return layout.Grid{Direction: dir, Columns: fc.Columns}, nil
	}
}

func (fc FileConfig) direction() (layout.Direction, error) {
	if fc.Direction == "" {
		return 0, configError("direction", fc.Mode+" mode needs a direction", nil)
	}
	dir, err := layout.ParseDirection(fc.Direction)
	if err != nil {
		return 0, configError("direction", "", err)
	}
	return dir, nil
}

// Config builds a validated Config. surface is the size of the containing
// view and is only used for centred frames.
func (fc FileConfig) Config(surface layout.Size) (Config, error) {
	display, err := fc.Display()
	if err != nil {
		return Config{}, err
	}
	if err := fc.Dismiss.Validate(); err != nil {
		return Config{}, err
	}

	frame := layout.Rect{X: fc.Frame.X, Y: fc.Frame.Y, W: fc.Frame.W, H: fc.Frame.H}
	if fc.Frame.Centered {
		frame = layout.Centered(surface.W/2, surface.H/2, layout.Size{W: fc.Frame.W, H: fc.Frame.H})
	}

	cfg := Config{
		Frame:   frame,
		Display: display,
		Timing: Timing{
			Reveal:        fc.Timing.Reveal.Duration,
			OverlayIn:     fc.Timing.OverlayIn.Duration,
			OverlayAlpha:  fc.Timing.OverlayAlpha,
			DismissIn:     fc.Timing.DismissIn.Duration,
			Collapse:      fc.Timing.Collapse.Duration,
			OverlayOut:    fc.Timing.OverlayOut.Duration,
			MainFadeIn:    fc.Timing.MainFadeIn.Duration,
			MainFadeDelay: fc.Timing.MainFadeDelay.Duration,
		}.withDefaults(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
