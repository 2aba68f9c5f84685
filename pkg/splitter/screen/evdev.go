package screen

import (
	"errors"
	"os"
	"sync"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/constants"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// DefaultKeyMap maps the keys handheld firmware usually routes to a
// dedicated input device.
var DefaultKeyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_MENU:     constants.VirtualButtonMenu,
	evdev.BTN_MODE:     constants.VirtualButtonMenu,
	evdev.KEY_HOMEPAGE: constants.VirtualButtonMenu,
	evdev.KEY_ESC:      constants.VirtualButtonB,
}

// KeySource reads key presses from a Linux input device on its own goroutine
// and hands them to the event loop as SDL user events. It is how buttons that
// never reach SDL, like a handheld's menu key, still drive the control.
type KeySource struct {
	Path string
	Keys map[evdev.EvCode]constants.VirtualButton

	device    *evdev.InputDevice
	running   *atomic.Bool
	eventType uint32
	wg        sync.WaitGroup
}

func NewKeySource(path string, keys map[evdev.EvCode]constants.VirtualButton) *KeySource {
	if keys == nil {
		keys = DefaultKeyMap
	}
	return &KeySource{Path: path, Keys: keys, running: atomic.NewBool(false)}
}

// Start opens the device and begins reading. SDL must be initialized.
func (k *KeySource) Start() error {
	if !k.running.CompareAndSwap(false, true) {
		return nil
	}
	k.wg.Wait()
	if k.device != nil {
		k.device.Close()
		k.device = nil
	}

	device, err := evdev.Open(k.Path)
	if err != nil {
		k.running.Store(false)
		return splitter.NewInfrastructureError("open_input_device", err)
	}
	k.device = device

	if k.eventType == 0 {
		k.eventType = sdl.RegisterEvents(1)
		if k.eventType == ^uint32(0) {
			device.Close()
			k.running.Store(false)
			return splitter.NewInfrastructureError("register_events", errors.New("no SDL user events left"))
		}
	}

	name, _ := device.Name()
	logger().Debug("Reading input device", "path", k.Path, "name", name)

	k.wg.Add(1)
	go k.read(device)
	return nil
}

func (k *KeySource) read(device *evdev.InputDevice) {
	defer k.wg.Done()

	for k.running.Load() {
		event, err := device.ReadOne()
		if err != nil {
			if k.running.Load() && !errors.Is(err, os.ErrClosed) {
				logger().Error("Input device read failed", "path", k.Path, "error", err)
			}
			k.running.Store(false)
			return
		}
		if event.Type != evdev.EV_KEY || event.Value != 1 {
			continue
		}
		button, ok := k.Keys[event.Code]
		if !ok {
			continue
		}
		if _, err := sdl.PushEvent(&sdl.UserEvent{Type: k.eventType, Code: int32(button)}); err != nil {
			logger().Warn("Dropping input device key", "button", button.GetName(), "error", err)
		}
	}
}

// Running reports whether the reader goroutine is active.
func (k *KeySource) Running() bool {
	return k.running.Load()
}

// Button decodes an event pushed by this source.
func (k *KeySource) Button(event sdl.Event) (constants.VirtualButton, bool) {
	e, ok := event.(*sdl.UserEvent)
	if !ok || k.eventType == 0 || e.Type != k.eventType {
		return constants.VirtualButtonUnassigned, false
	}
	return constants.VirtualButton(e.Code), true
}

// Stop closes the device, which unblocks the reader, and waits for it.
func (k *KeySource) Stop() {
	k.running.Store(false)
	if k.device != nil {
		k.device.Close()
		k.device = nil
	}
	k.wg.Wait()
}
