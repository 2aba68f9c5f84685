package screen

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions maps to SDL window flags.
type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE
	Fullscreen        bool // SDL_WINDOW_FULLSCREEN
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	AlwaysOnTop       bool // SDL_WINDOW_ALWAYS_ON_TOP
	Hidden            bool // Omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) sdlFlags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	return flags
}

// Options configures Init.
type Options struct {
	WindowTitle string
	Window      WindowOptions
	Theme       *Theme // Nil keeps the current theme
	LogPath     string // Full path of the log file; empty logs to stdout only
	LogLevel    string // "debug", "info", "warn" or "error"; SPLITTER_LOG_LEVEL overrides
	Language    string // BCP 47 tag; SPLITTER_LANG overrides
}
