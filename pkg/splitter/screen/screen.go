// Package screen hosts a splitting button in an SDL window: it supplies the
// views, the surface they are attached to, and the event loop that turns
// mouse, touch, keyboard, controller and evdev input into controller calls.
//
// Init must be called on the main goroutine before anything else, and Close
// before the program exits.
package screen

import (
	"errors"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal/render"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Theme is the set of colours and the font views are drawn with.
type Theme = render.Theme

var errNotInitialized = errors.New("screen not initialized")

var (
	window      *Window
	textures    *render.TextureCache
	fonts       = map[int]*ttf.Font{}
	controllers = map[sdl.JoystickID]*sdl.GameController{}
)

// Init sets up logging, the locale, SDL and the window.
func Init(opts Options) error {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		internal.SetRawLogLevel(level)
		internal.SetInternalLogLevel(internal.ParseLevel(level))
	} else if opts.LogLevel != "" {
		internal.SetRawLogLevel(opts.LogLevel)
	}
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	if lang := os.Getenv(constants.LanguageEnvVar); lang != "" {
		internal.SetLanguage(lang)
	} else if opts.Language != "" {
		internal.SetLanguage(opts.Language)
	}

	if opts.Theme != nil {
		render.SetTheme(*opts.Theme)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return splitter.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return splitter.NewInfrastructureError("ttf_init", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		internal.GetInternalLogger().Warn("PNG loading unavailable", "error", err)
	}

	if opts.Window == (WindowOptions{}) && !constants.IsDevMode() {
		opts.Window = WindowOptions{FullscreenDesktop: true}
	}

	title := opts.WindowTitle
	if title == "" {
		title = "splitter"
	}
	w, err := openWindow(title, opts.Window)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return splitter.NewInfrastructureError("create_window", err)
	}
	window = w
	textures = render.NewTextureCache()
	return nil
}

// Close releases every SDL resource and closes the log file.
func Close() {
	if textures != nil {
		textures.Destroy()
	}
	for size, f := range fonts {
		f.Close()
		delete(fonts, size)
	}
	for id, gc := range controllers {
		gc.Close()
		delete(controllers, id)
	}
	if window != nil {
		window.close()
		window = nil
	}
	img.Quit()
	ttf.Quit()
	sdl.Quit()
	internal.CloseLogger()
}

// GetWindow returns the window opened by Init.
func GetWindow() *Window {
	return window
}

// SetTheme replaces the active theme.
func SetTheme(theme Theme) {
	render.SetTheme(theme)
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return render.GetTheme()
}

func logger() *slog.Logger {
	return internal.GetInternalLogger()
}

func font(size int) (*ttf.Font, error) {
	if f, ok := fonts[size]; ok {
		return f, nil
	}
	f, err := render.OpenFont(GetTheme().FontPath, size)
	if err != nil {
		return nil, splitter.NewInfrastructureError("load_font", err)
	}
	fonts[size] = f
	return f, nil
}

// HexToColor converts a 0xRRGGBB value to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return render.HexToColor(hex)
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (sdl.Color, error) {
	return render.ParseColor(s)
}
