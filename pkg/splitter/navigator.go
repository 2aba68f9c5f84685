package splitter

import "github.com/BrandonKowalski/splitter/pkg/splitter/constants"

// KeyNavigator drives a Controller from directional buttons instead of a
// pointer. While the control is open it keeps a focused sub-element that
// left/up and right/down move through, wrapping at either end.
//
// Focus starts on the first element every time the control opens, however it
// was opened.
type KeyNavigator struct {
	c     *Controller
	focus int
	cycle int
}

func NewKeyNavigator(c *Controller) *KeyNavigator {
	return &KeyNavigator{c: c, cycle: c.Activations()}
}

// sync moves focus back to the first element when a new open cycle started
// and keeps it inside the registry.
func (n *KeyNavigator) sync() {
	if cycle := n.c.Activations(); cycle != n.cycle {
		n.cycle = cycle
		n.focus = 0
	}
	if n.focus < 0 || n.focus >= n.c.Registry().Len() {
		n.focus = 0
	}
}

// Focus returns the focused sub-element index, or -1 while closed or when
// there is nothing to focus.
func (n *KeyNavigator) Focus() int {
	switch n.c.State() {
	case StateOpening, StateOpen:
		if n.c.Registry().Len() == 0 {
			return -1
		}
		n.sync()
		return n.focus
	default:
		return -1
	}
}

// Press applies one button press and reports whether it meant anything in
// the current state.
func (n *KeyNavigator) Press(button constants.VirtualButton) (bool, error) {
	state := n.c.State()
	count := n.c.Registry().Len()

	if state == StateClosed {
		switch button {
		case constants.VirtualButtonA, constants.VirtualButtonStart, constants.VirtualButtonMenu:
			return n.c.Activate()
		}
		return false, nil
	}
	n.sync()

	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonUp:
		return n.move(-1, count), nil
	case constants.VirtualButtonRight, constants.VirtualButtonDown:
		return n.move(1, count), nil
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if count == 0 {
			return n.c.Dismiss(), nil
		}
		return n.c.Select(n.focus)
	case constants.VirtualButtonB, constants.VirtualButtonMenu:
		return n.c.Dismiss(), nil
	}
	return false, nil
}

func (n *KeyNavigator) move(delta, count int) bool {
	if count == 0 {
		return false
	}
	n.focus = ((n.focus+delta)%count + count) % count
	return true
}
