package screen

import (
	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func buttonForKey(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_SPACE, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_PAGEUP, sdl.K_q:
		return constants.VirtualButtonL1
	case sdl.K_PAGEDOWN, sdl.K_TAB, sdl.K_e:
		return constants.VirtualButtonR1
	case sdl.K_m:
		return constants.VirtualButtonMenu
	case sdl.K_s:
		return constants.VirtualButtonStart
	case sdl.K_x:
		return constants.VirtualButtonSelect
	}
	return constants.VirtualButtonUnassigned
}

func buttonForController(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		return
	}
	id := gc.Joystick().InstanceID()
	if _, ok := controllers[id]; ok {
		return
	}
	controllers[id] = gc
	logger().Debug("Opened game controller", "name", gc.Name(), "id", id)
}

func closeController(id sdl.JoystickID) {
	if gc, ok := controllers[id]; ok {
		gc.Close()
		delete(controllers, id)
		logger().Debug("Closed game controller", "id", id)
	}
}
