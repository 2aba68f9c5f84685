// Package layout computes where the sub-buttons of a splitting button come to
// rest. Everything in here is pure: given the anchor rectangle, a display
// configuration and the element sizes it returns one target rectangle per
// element, index aligned with the input.
package layout

import "math"

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Size is the width and height of an element.
type Size struct {
	W float64
	H float64
}

// MidX returns the horizontal centre of the rectangle.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical centre of the rectangle.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Size returns the width and height without the position.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Intersects reports whether two rectangles share any area. Touching edges do
// not count as an intersection.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Centered returns a rectangle of the given size centred on (cx, cy).
func Centered(cx, cy float64, s Size) Rect {
	return Rect{X: cx - s.W/2, Y: cy - s.H/2, W: s.W, H: s.H}
}

// Lerp interpolates every component between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b Rect, t float64) Rect {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return Rect{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		W: a.W + (b.W-a.W)*t,
		H: a.H + (b.H-a.H)*t,
	}
}

// Offset returns the displacement from the anchor centre to the centre of r.
func Offset(anchor, r Rect) (dx, dy float64) {
	return r.MidX() - anchor.MidX(), r.MidY() - anchor.MidY()
}

// ComputeTargets returns the resting rectangle of each of the count elements
// for the given display. sizes must hold exactly count entries.
//
// Spacing is derived from the anchor alone. Elements no larger than the
// anchor never overlap it; larger elements may, so hosts size sub-buttons
// like the main control.
func ComputeTargets(anchor Rect, display Display, count int, sizes []Size) ([]Rect, error) {
	if display == nil {
		return nil, invalid("no display configured")
	}
	if err := display.Validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, invalid("negative element count %d", count)
	}
	if len(sizes) != count {
		return nil, invalid("have %d element sizes for %d elements", len(sizes), count)
	}
	if anchor.Empty() {
		return nil, invalid("anchor %vx%v has no area", anchor.W, anchor.H)
	}

	targets := make([]Rect, count)
	if count == 0 {
		return targets, nil
	}

	display.place(anchor, sizes, targets)
	return targets, nil
}

// Targets is ComputeTargets with the count taken from sizes.
func Targets(anchor Rect, display Display, sizes []Size) ([]Rect, error) {
	return ComputeTargets(anchor, display, len(sizes), sizes)
}

// UniformSizes returns count copies of s, the common case where every
// sub-button is as large as the anchor.
func UniformSizes(count int, s Size) []Size {
	if count <= 0 {
		return []Size{}
	}
	sizes := make([]Size, count)
	for i := range sizes {
		sizes[i] = s
	}
	return sizes
}

// Radius is the distance from the anchor centre to each element centre in a
// circle layout: twice the larger side of the anchor.
func Radius(anchor Rect) float64 {
	return 2 * math.Max(anchor.W, anchor.H)
}

// Angles returns the angular position of each element in a circle layout, in
// radians, measured clockwise from straight up. count <= 0 yields no angles.
func Angles(count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	increment := 2 * math.Pi / float64(count)
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = increment * float64(i)
	}
	return angles
}

// Rows is the number of grid rows needed for count elements in columns columns.
func Rows(count, columns int) int {
	if count <= 0 || columns <= 0 {
		return 0
	}
	return (count + columns - 1) / columns
}

// Cell returns the grid position of element index. Elements fill rows first.
func Cell(index, columns int) (row, col int) {
	return index / columns, index % columns
}

func (Circle) place(anchor Rect, sizes []Size, targets []Rect) {
	radius := Radius(anchor)
	cx, cy := anchor.MidX(), anchor.MidY()

	for i, angle := range Angles(len(sizes)) {
		x := cx + radius*math.Sin(angle)
		y := cy - radius*math.Cos(angle)
		targets[i] = Centered(x, y, sizes[i])
	}
}

// Line offsets are measured from the anchor's origin, so an element keeps the
// anchor's lateral coordinate whatever its size.
func (l Line) place(anchor Rect, sizes []Size, targets []Rect) {
	ux, uy := l.Direction.unit()

	for i, s := range sizes {
		step := float64(i + 1)
		targets[i] = Rect{
			X: anchor.X + ux*step*2*anchor.W,
			Y: anchor.Y + uy*step*2*anchor.H,
			W: s.W,
			H: s.H,
		}
	}
}

func (g Grid) place(anchor Rect, sizes []Size, targets []Rect) {
	cx, cy := anchor.MidX(), anchor.MidY()
	rows := Rows(len(sizes), g.Columns)

	for i := range sizes {
		row, col := Cell(i, g.Columns)

		var x, y float64
		switch g.Direction {
		case Down:
			x = cx + float64(2*col-(g.Columns-1))*anchor.W
			y = cy + float64(row+1)*2*anchor.H
		case Up:
			x = cx + float64(2*col-(g.Columns-1))*anchor.W
			y = cy - float64(row+1)*2*anchor.H
		case Right:
			x = cx + float64(col+1)*2*anchor.W
			y = cy + float64(2*row-(rows-1))*anchor.H
		case Left:
			x = cx - float64(col+1)*2*anchor.W
			y = cy + float64(2*row-(rows-1))*anchor.H
		}
		targets[i] = Centered(x, y, sizes[i])
	}
}
