package splitter

import "github.com/BrandonKowalski/splitter/pkg/splitter/layout"

// View is anything the controller can move, fade and show or hide: the main
// control, each sub-element, the dimming overlay and the dismissal control.
// The controller never draws; the host renders views however it likes.
type View interface {
	Frame() layout.Rect
	SetFrame(layout.Rect)
	Alpha() float64
	SetAlpha(float64)
	Hidden() bool
	SetHidden(bool)
}

// Surface is the containing view that sub-elements, the overlay and the
// dismissal control are attached to while the control is open.
type Surface interface {
	Attach(View)
	Detach(View)
}

// Host supplies everything the controller needs from the UI toolkit.
type Host interface {
	// Surface returns the view the control lives in.
	Surface() Surface
	// Main returns the main control. Its frame at activation time is the anchor.
	Main() View
	// Overlay returns the dimming overlay covering the surface.
	Overlay() View
	// DismissControl returns the control that closes without a selection.
	DismissControl() View
}

// ElementProvider supplies the sub-elements. It is queried only when the
// registry is rebuilt.
type ElementProvider interface {
	Count() int
	ElementAt(index int) View
}

// Views is an ElementProvider over a fixed slice.
type Views []View

func (v Views) Count() int { return len(v) }

func (v Views) ElementAt(index int) View { return v[index] }

// ActivationDelegate is told which sub-element was chosen.
type ActivationDelegate interface {
	OnActivated(view View, index int)
}

// DelegateFunc adapts a function to ActivationDelegate.
type DelegateFunc func(view View, index int)

func (f DelegateFunc) OnActivated(view View, index int) { f(view, index) }

// SubElement is a sub-element with the index it was registered under.
type SubElement struct {
	Index int
	View  View
}
