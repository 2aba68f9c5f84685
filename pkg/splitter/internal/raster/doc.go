// Package raster turns vector sources into RGBA images: embedded SVG icons
// through oksvg, and procedural circular button faces through gg.
//
// Nothing here depends on SDL. The screen package uploads the results as
// textures; the layout preview tool writes them straight to PNG.
package raster
