package splitter

import (
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

// Message identifiers for Localize.
const (
	MsgDismiss         = internal.MsgDismiss
	MsgButtonActivated = internal.MsgButtonActivated
	MsgIdle            = internal.MsgIdle
)

// SetLanguage selects the locale used by Localize from BCP 47 tags, best
// match first. Unsupported languages fall back to English.
func SetLanguage(tags ...string) {
	internal.SetLanguage(tags...)
}

// Localize returns the message with the given id in the current language.
func Localize(id string, data map[string]any) string {
	return internal.Localize(id, data)
}

// ModeName returns the localized name of a display mode.
func ModeName(m layout.Mode) string {
	switch m {
	case layout.ModeCircle:
		return internal.Localize(internal.MsgModeCircle, nil)
	case layout.ModeDirection:
		return internal.Localize(internal.MsgModeDirection, nil)
	case layout.ModeList:
		return internal.Localize(internal.MsgModeList, nil)
	default:
		return m.String()
	}
}
