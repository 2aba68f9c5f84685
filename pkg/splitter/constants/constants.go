// Package constants defines shared constants, types, and configuration values
// used throughout the splitter packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the host layer.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "SPLITTER_LOG_LEVEL"
	LanguageEnvVar     = "SPLITTER_LANG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Reveal and dismissal timings.
const (
	DefaultRevealDuration     = 500 * time.Millisecond // Sub-elements fade in and move out
	DefaultOverlayInDuration  = 500 * time.Millisecond // Dimming overlay fades in
	DefaultDismissInDuration  = 750 * time.Millisecond // Dismissal control fades in
	DefaultCollapseDuration   = 500 * time.Millisecond // Sub-elements return to the anchor
	DefaultOverlayOutDuration = 500 * time.Millisecond // Dimming overlay fades out
	DefaultMainFadeDuration   = 250 * time.Millisecond // Main control fades back in
	DefaultMainFadeDelay      = 150 * time.Millisecond // ...after this delay
)

// DefaultOverlayAlpha is how opaque the dimming overlay becomes while open.
const DefaultOverlayAlpha = 0.5

// Frame pacing for hosts without vsync.
const (
	FrameInterval     = 16 * time.Millisecond
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
)

// Held directional buttons repeat after DefaultRepeatDelay, then every
// DefaultRepeatInterval.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}
