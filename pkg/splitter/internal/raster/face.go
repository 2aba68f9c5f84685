package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// FaceStyle describes a round button face.
type FaceStyle struct {
	Fill       color.Color
	Ring       color.Color // Nil draws no ring
	RingWidth  float64
	Label      string // Drawn centred in LabelColor, optional
	LabelSize  float64
	LabelColor color.Color
}

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

func mono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// MonoFace returns a Go Mono font face at size points.
func MonoFace(size float64) (font.Face, error) {
	f, err := mono()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Face draws a filled circle inscribed in a size×size image.
func Face(size int, style FaceStyle) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid face size %d", size)
	}

	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	r := c
	if style.Ring != nil && style.RingWidth > 0 {
		r -= style.RingWidth / 2
	}

	fill := style.Fill
	if fill == nil {
		fill = color.White
	}
	dc.DrawCircle(c, c, r)
	dc.SetColor(fill)
	if style.Ring != nil && style.RingWidth > 0 {
		dc.FillPreserve()
		dc.SetColor(style.Ring)
		dc.SetLineWidth(style.RingWidth)
		dc.Stroke()
	} else {
		dc.Fill()
	}

	if style.Label != "" {
		labelSize := style.LabelSize
		if labelSize <= 0 {
			labelSize = float64(size) / 2
		}
		face, err := MonoFace(labelSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		labelColor := style.LabelColor
		if labelColor == nil {
			labelColor = color.Black
		}
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(style.Label, c, c, 0.5, 0.35)
	}

	return toRGBA(dc.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
