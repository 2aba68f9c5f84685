package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex reads "#RRGGBB", "#RRGGBBAA" or the same digits with a "0x"
// prefix or none. Six digits are fully opaque.
func ParseHex(s string) (color.RGBA, error) {
	digits := strings.TrimSpace(s)
	digits = strings.TrimPrefix(digits, "#")
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")

	if len(digits) != 6 && len(digits) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(digits) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex converts a 0xRRGGBB value to an opaque color.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
