package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

const anchorRune = '@'

// labels marks targets in the terminal plot; targets past the end wrap.
const labels = "123456789abcdefghijklmnopqrstuvwxyz"

// plot maps the anchor and targets onto a cols x rows character grid,
// scaled so that every rectangle fits. Terminal cells are about twice as
// tall as they are wide, so the horizontal scale is doubled.
func plot(anchor layout.Rect, targets []layout.Rect, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	bounds := anchor
	for _, t := range targets {
		bounds = union(bounds, t)
	}

	sx := float64(cols-1) / math.Max(bounds.W, 1)
	sy := float64(rows-1) / math.Max(bounds.H, 1)
	scale := math.Min(sx/2, sy)
	sx, sy = scale*2, scale

	// Centre the drawing in the grid.
	ox := (float64(cols-1) - bounds.W*sx) / 2
	oy := (float64(rows-1) - bounds.H*sy) / 2

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	put := func(r layout.Rect, mark rune) {
		col := int(math.Round(ox + (r.MidX()-bounds.X)*sx))
		row := int(math.Round(oy + (r.MidY()-bounds.Y)*sy))
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = mark
		}
	}

	put(anchor, anchorRune)
	for i, t := range targets {
		put(t, rune(labels[i%len(labels)]))
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func union(a, b layout.Rect) layout.Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return layout.Rect{
		X: x,
		Y: y,
		W: math.Max(a.MaxX(), b.MaxX()) - x,
		H: math.Max(a.MaxY(), b.MaxY()) - y,
	}
}

// describe formats targets one per line as "index: x,y wxh".
func describe(targets []layout.Rect) string {
	var b strings.Builder
	for i, t := range targets {
		fmt.Fprintf(&b, "%d: %g,%g %gx%g\n", i, t.X, t.Y, t.W, t.H)
	}
	return b.String()
}
