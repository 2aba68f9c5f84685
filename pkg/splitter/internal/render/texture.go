package render

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// TextureFromImage uploads img as a blended texture. SDL expects straight
// alpha, so the pixels go through an NRGBA conversion first.
func TextureFromImage(renderer *sdl.Renderer, img image.Image) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&nrgba.Pix[0]),
		int32(nrgba.Rect.Dx()),
		int32(nrgba.Rect.Dy()),
		32,
		int32(nrgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		texture.Destroy()
		return nil, fmt.Errorf("set blend mode: %w", err)
	}
	return texture, nil
}
