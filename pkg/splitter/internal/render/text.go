package render

import (
	"fmt"

	"github.com/BrandonKowalski/splitter/pkg/splitter/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/gomono"
)

// OpenFont opens the TTF at path, or the embedded Go Mono when path is empty
// or cannot be opened.
func OpenFont(path string, size int) (*ttf.Font, error) {
	if path != "" {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		internal.GetInternalLogger().Warn("Falling back to the embedded font", "path", path, "error", err)
	}

	rw, err := sdl.RWFromMem(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("load embedded font: %w", err)
	}
	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("open embedded font: %w", err)
	}
	return font, nil
}

// TextTexture renders text into a blended texture and returns its size.
func TextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	if text == "" {
		return nil, 0, 0, fmt.Errorf("empty text")
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("create text texture: %w", err)
	}
	return texture, surface.W, surface.H, nil
}
