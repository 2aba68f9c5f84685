package splitter

import (
	"time"

	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
)

// DirectionalRepeat turns a held D-pad direction into repeated presses so a
// KeyNavigator can sweep focus across a long list of sub-elements. It is
// stepped with frame deltas, like the animation scheduler.
type DirectionalRepeat struct {
	held     [4]bool // up, down, left, right
	elapsed  time.Duration
	delay    time.Duration
	interval time.Duration
	repeated bool
}

// NewDirectionalRepeat uses DefaultRepeatDelay and DefaultRepeatInterval.
func NewDirectionalRepeat() *DirectionalRepeat {
	return NewDirectionalRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

func NewDirectionalRepeatWithTiming(delay, interval time.Duration) *DirectionalRepeat {
	return &DirectionalRepeat{delay: delay, interval: interval}
}

func directionSlot(button constants.VirtualButton) int {
	switch button {
	case constants.VirtualButtonUp:
		return 0
	case constants.VirtualButtonDown:
		return 1
	case constants.VirtualButtonLeft:
		return 2
	case constants.VirtualButtonRight:
		return 3
	}
	return -1
}

var slotButtons = [4]constants.VirtualButton{
	constants.VirtualButtonUp,
	constants.VirtualButtonDown,
	constants.VirtualButtonLeft,
	constants.VirtualButtonRight,
}

// SetHeld records a press or release and reports whether button is a
// direction. Any change restarts the repeat delay.
func (r *DirectionalRepeat) SetHeld(button constants.VirtualButton, held bool) bool {
	slot := directionSlot(button)
	if slot < 0 {
		return false
	}
	r.held[slot] = held
	r.elapsed = 0
	r.repeated = false
	return true
}

// Held returns the held direction, preferring up, down, left, then right,
// or VirtualButtonUnassigned when none is held.
func (r *DirectionalRepeat) Held() constants.VirtualButton {
	for slot, held := range r.held {
		if held {
			return slotButtons[slot]
		}
	}
	return constants.VirtualButtonUnassigned
}

// Update advances by dt and returns the direction to press again, or
// VirtualButtonUnassigned when no repeat is due.
func (r *DirectionalRepeat) Update(dt time.Duration) constants.VirtualButton {
	held := r.Held()
	if held == constants.VirtualButtonUnassigned {
		r.elapsed = 0
		r.repeated = false
		return held
	}

	r.elapsed += dt
	threshold := r.interval
	if !r.repeated {
		threshold = r.delay
	}
	if r.elapsed < threshold {
		return constants.VirtualButtonUnassigned
	}

	r.elapsed = 0
	r.repeated = true
	return held
}

// Reset releases every direction.
func (r *DirectionalRepeat) Reset() {
	r.held = [4]bool{}
	r.elapsed = 0
	r.repeated = false
}
