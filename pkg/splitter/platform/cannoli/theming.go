// Package cannoli provides a theme matching the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import "github.com/BrandonKowalski/splitter/pkg/splitter/screen"

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// DefaultInputDevice is the input device carrying the menu key on Cannoli handhelds.
const DefaultInputDevice = "/dev/input/event3"

// InitCannoliTheme creates a theme with Cannoli's default colours and the specified font.
func InitCannoliTheme(fontPath string) screen.Theme {
	theme := screen.GetTheme()
	theme.BackgroundColor = screen.HexToColor(0xFFFFFF)
	theme.OverlayColor = screen.HexToColor(0x000000)
	theme.FaceColor = screen.HexToColor(0x008080)
	theme.RingColor = screen.HexToColor(0xFFFFFF)
	theme.AccentColor = screen.HexToColor(0x008080)
	theme.TextColor = screen.HexToColor(0x000000)
	theme.FontPath = fontPath
	return theme
}
