package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDisplay is returned for display configurations that cannot be laid out.
var ErrInvalidDisplay = errors.New("invalid display configuration")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDisplay, fmt.Sprintf(format, args...))
}

// Mode identifies one of the three layout strategies.
type Mode int

const (
	ModeCircle Mode = iota
	ModeDirection
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeCircle:
		return "circle"
	case ModeDirection:
		return "direction"
	case ModeList:
		return "list"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names returned by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return ModeCircle, nil
	case "direction", "line":
		return ModeDirection, nil
	case "list", "grid":
		return ModeList, nil
	}
	return 0, invalid("unknown mode %q", s)
}

// Direction is the way a line or grid grows away from the anchor.
// The zero value is not a valid direction.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return ""
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// unit returns the direction as a unit vector in window coordinates (y grows down).
func (d Direction) unit() (float64, float64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection accepts "up", "down", "left" and "right", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, invalid("unknown direction %q", s)
}

// Display is a layout strategy together with the parameters it needs.
// It is implemented only by Circle, Line and Grid.
type Display interface {
	Mode() Mode
	Validate() error
	place(anchor Rect, sizes []Size, targets []Rect)
}

// Circle fans the elements out evenly around the anchor, starting straight
// above it and proceeding clockwise.
type Circle struct{}

// Line places the elements one after another in a single direction.
type Line struct {
	Direction Direction
}

// Grid places the elements in rows of Columns cells growing in Direction.
type Grid struct {
	Direction Direction
	Columns   int
}

func (Circle) Mode() Mode { return ModeCircle }
func (Line) Mode() Mode   { return ModeDirection }
func (Grid) Mode() Mode   { return ModeList }

func (Circle) Validate() error { return nil }

func (l Line) Validate() error {
	if !l.Direction.Valid() {
		return invalid("direction mode needs a direction, got %d", int(l.Direction))
	}
	return nil
}

func (g Grid) Validate() error {
	if !g.Direction.Valid() {
		return invalid("list mode needs a direction, got %d", int(g.Direction))
	}
	if g.Columns <= 0 {
		return invalid("list mode needs a positive column count, got %d", g.Columns)
	}
	return nil
}

func (Circle) String() string { return "circle" }

func (l Line) String() string { return "direction(" + l.Direction.String() + ")" }

func (g Grid) String() string {
	return fmt.Sprintf("list(%s, %d columns)", g.Direction, g.Columns)
}
