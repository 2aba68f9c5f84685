package screen

import (
	"context"
	"time"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Action is why Run returned.
type Action int

const (
	ActionQuit     Action = iota // Window closed or context cancelled
	ActionNext                   // R1: the host should move to its next scene
	ActionPrevious               // L1: the host should move to its previous scene
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	default:
		return "quit"
	}
}

// RunSettings configures Run.
type RunSettings struct {
	Controller *splitter.Controller
	Host       *Host
	// Background views are drawn under the main control every frame.
	Background []Drawer
	// Keys is an optional hardware key source, already started.
	Keys *KeySource
	// OnFrame runs once per frame before drawing.
	OnFrame func(dt time.Duration)
	// InputDelay debounces key and controller presses (default 20ms).
	InputDelay time.Duration
}

type runController struct {
	settings      RunSettings
	nav           *splitter.KeyNavigator
	repeat        *splitter.DirectionalRepeat
	lastInputTime time.Time
	action        Action
}

// Run drives the controller until the window closes, ctx is done, or the
// user asks for another scene. Pointer presses go to Controller.Press,
// buttons go through a KeyNavigator.
func Run(ctx context.Context, settings RunSettings) (Action, error) {
	if window == nil {
		return ActionQuit, splitter.NewInfrastructureError("run", errNotInitialized)
	}
	if settings.InputDelay == 0 {
		settings.InputDelay = constants.DefaultInputDelay
	}

	rc := &runController{
		settings: settings,
		nav:      splitter.NewKeyNavigator(settings.Controller),
		repeat:   splitter.NewDirectionalRepeat(),
	}

	last := sdl.GetTicks64()
	for {
		if ctx.Err() != nil {
			return ActionQuit, nil
		}
		if !rc.handleEvents() {
			return rc.action, nil
		}

		now := sdl.GetTicks64()
		dt := time.Duration(now-last) * time.Millisecond
		last = now

		settings.Controller.Update(dt)
		rc.repeatHeld(dt)
		if settings.OnFrame != nil {
			settings.OnFrame(dt)
		}

		if err := rc.render(); err != nil {
			return ActionQuit, err
		}
		window.Present()
	}
}

func (rc *runController) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			rc.action = ActionQuit
			return false

		case *sdl.MouseButtonEvent:
			if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT || e.Which == sdl.TOUCH_MOUSEID {
				continue
			}
			rc.press(float64(e.X), float64(e.Y))

		case *sdl.TouchFingerEvent:
			if e.Type != sdl.FINGERDOWN {
				continue
			}
			size := window.Size()
			rc.press(float64(e.X)*size.W, float64(e.Y)*size.H)

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			b := buttonForKey(e.Keysym.Sym)
			rc.repeat.SetHeld(b, e.Type == sdl.KEYDOWN)
			if e.Type == sdl.KEYDOWN && !rc.button(b) {
				return false
			}

		case *sdl.ControllerButtonEvent:
			b := buttonForController(sdl.GameControllerButton(e.Button))
			rc.repeat.SetHeld(b, e.Type == sdl.CONTROLLERBUTTONDOWN)
			if e.Type == sdl.CONTROLLERBUTTONDOWN && !rc.button(b) {
				return false
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				openController(int(e.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				closeController(e.Which)
			}

		default:
			if rc.settings.Keys == nil {
				continue
			}
			if button, ok := rc.settings.Keys.Button(event); ok && !rc.button(button) {
				return false
			}
		}
	}
	return true
}

func (rc *runController) press(x, y float64) {
	hit, err := rc.settings.Controller.Press(x, y)
	if err != nil {
		logger().Error("Press failed", "hit", hit.String(), "error", err)
		return
	}
	logger().Debug("Press", "x", x, "y", y, "hit", hit.String())
}

// button handles one virtual button and reports false when Run should return.
func (rc *runController) button(b constants.VirtualButton) bool {
	if b == constants.VirtualButtonUnassigned {
		return true
	}
	if time.Since(rc.lastInputTime) < rc.settings.InputDelay {
		return true
	}
	rc.lastInputTime = time.Now()

	if rc.settings.Controller.State() == splitter.StateClosed {
		switch b {
		case constants.VirtualButtonL1:
			rc.action = ActionPrevious
			return false
		case constants.VirtualButtonR1:
			rc.action = ActionNext
			return false
		case constants.VirtualButtonSelect:
			rc.action = ActionQuit
			return false
		}
	}

	if _, err := rc.nav.Press(b); err != nil {
		logger().Error("Button press failed", "button", b.GetName(), "error", err)
	}
	return true
}

// repeatHeld re-presses a held direction while the control is open.
func (rc *runController) repeatHeld(dt time.Duration) {
	if rc.settings.Controller.State() != splitter.StateOpen {
		rc.repeat.Reset()
		return
	}
	if b := rc.repeat.Update(dt); b != constants.VirtualButtonUnassigned {
		rc.nav.Press(b)
	}
}

func (rc *runController) render() error {
	window.clear()
	renderer := window.Renderer

	for _, d := range rc.settings.Background {
		if err := d.Draw(renderer); err != nil {
			return splitter.NewInfrastructureError("render", err)
		}
	}

	host := rc.settings.Host
	if err := host.main.Draw(renderer); err != nil {
		return splitter.NewInfrastructureError("render", err)
	}

	focus := rc.nav.Focus()
	for _, e := range rc.settings.Controller.Registry().Elements() {
		if b, ok := e.View.(*Button); ok {
			b.SetFocused(e.Index == focus)
		}
	}
	return host.surface.Draw(renderer)
}
