// Package render holds the SDL side of drawing: the active theme, texture
// upload and caching, and TTF text.
package render

import (
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal/raster"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colours and font the screen package draws with.
type Theme struct {
	BackgroundColor sdl.Color // Window clear colour
	OverlayColor    sdl.Color // Dimming overlay, drawn at the controller's alpha
	FaceColor       sdl.Color // Fill of round button faces without an icon
	RingColor       sdl.Color // Ring around button faces
	AccentColor     sdl.Color // Focus ring while navigating with keys or a controller
	TextColor       sdl.Color // Status and hint text
	FontPath        string    // TTF font; empty uses the embedded Go Mono
	FontSize        int
}

var currentTheme = DefaultTheme()

// DefaultTheme is a dark theme with a black overlay.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x202124),
		OverlayColor:    HexToColor(0x000000),
		FaceColor:       HexToColor(0x1E88E5),
		RingColor:       HexToColor(0xFFFFFF),
		AccentColor:     HexToColor(0xFFC107),
		TextColor:       HexToColor(0xFFFFFF),
		FontSize:        24,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	c := raster.Hex(hex)
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (sdl.Color, error) {
	c, err := raster.ParseHex(s)
	if err != nil {
		return sdl.Color{}, err
	}
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
