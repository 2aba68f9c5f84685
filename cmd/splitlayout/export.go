package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const exportPadding = 20

// exportPNG draws the anchor and numbered targets to a PNG at path, cropped
// to their bounding box plus padding.
func exportPNG(path string, anchor layout.Rect, targets []layout.Rect) error {
	bounds := anchor
	for _, t := range targets {
		bounds = union(bounds, t)
	}

	w := int(math.Ceil(bounds.W)) + 2*exportPadding
	h := int(math.Ceil(bounds.H)) + 2*exportPadding
	dc := gg.NewContext(w, h)
	dc.SetHexColor("#121212")
	dc.Clear()
	dc.Translate(exportPadding-bounds.X, exportPadding-bounds.Y)

	face, err := labelFace(anchor.H / 2)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	dc.SetHexColor("#1E88E5")
	dc.DrawCircle(anchor.MidX(), anchor.MidY(), math.Min(anchor.W, anchor.H)/2)
	dc.Fill()
	dc.SetHexColor("#FFFFFF")
	dc.DrawStringAnchored("+", anchor.MidX(), anchor.MidY(), 0.5, 0.35)

	for i, t := range targets {
		dc.SetHexColor("#E53935")
		dc.DrawCircle(t.MidX(), t.MidY(), math.Min(t.W, t.H)/2)
		dc.Fill()
		dc.SetHexColor("#FFFFFF")
		dc.DrawStringAnchored(strconv.Itoa(i), t.MidX(), t.MidY(), 0.5, 0.35)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: math.Max(size, 6)}), nil
}
