package screen

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer every view is drawn with.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	width           int32
	height          int32
	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(title string, opts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = 640, 480
	}
	width, height := displayMode.W, displayMode.H
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.sdlFlags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, err
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size is the logical size views are laid out in.
func (w *Window) Size() layout.Size {
	return layout.Size{W: float64(w.width), H: float64(w.height)}
}

// Bounds is the whole logical drawing area.
func (w *Window) Bounds() layout.Rect {
	return layout.Rect{W: float64(w.width), H: float64(w.height)}
}

func (w *Window) clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	w.Renderer.Clear()
}

// Present swaps the render buffer and holds the frame rate near 60fps when
// VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		interval := uint64(constants.FrameInterval.Milliseconds())
		if elapsed := now - w.lastPresentTime; elapsed < interval {
			sdl.Delay(uint32(interval - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
