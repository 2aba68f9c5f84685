package raster

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed icons/*.svg
var iconFS embed.FS

// CloseIcon is the glyph drawn on the dismissal control.
const CloseIcon = "close"

// IconNames lists the embedded icons, sorted.
func IconNames() []string {
	entries, err := iconFS.ReadDir("icons")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// IconSource returns the SVG source of an embedded icon.
func IconSource(name string) ([]byte, error) {
	data, err := iconFS.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("unknown icon %q: %w", name, err)
	}
	return data, nil
}

// Icon rasterizes an embedded icon to a w×h image.
func Icon(name string, w, h int) (*image.RGBA, error) {
	data, err := IconSource(name)
	if err != nil {
		return nil, err
	}
	return SVG(bytes.NewReader(data), w, h)
}

// SVG rasterizes an SVG document scaled to fill a w×h image.
func SVG(r io.Reader, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}
