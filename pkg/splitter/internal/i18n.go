package internal

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message identifiers present in every locale file.
const (
	MsgDismiss         = "Dismiss"
	MsgButtonActivated = "ButtonActivated"
	MsgIdle            = "Idle"
	MsgModeCircle      = "ModeCircle"
	MsgModeDirection   = "ModeDirection"
	MsgModeList        = "ModeList"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.Mutex
	localizer   *i18n.Localizer
)

// Bundle returns the message bundle, loading the embedded locale files on first use.
func Bundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Unable to read embedded locales", "error", err)
			return
		}
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", entry.Name())); err != nil {
				GetInternalLogger().Error("Unable to load locale", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage selects the display language. Each tag is a BCP 47 tag or an
// Accept-Language value; the first one the bundle supports wins, English otherwise.
func SetLanguage(tags ...string) {
	l := i18n.NewLocalizer(Bundle(), tags...)

	localizerMu.Lock()
	localizer = l
	localizerMu.Unlock()
}

// MatchLanguage returns the supported language closest to raw.
func MatchLanguage(raw string) language.Tag {
	supported := Bundle().LanguageTags()
	desired, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(desired) == 0 {
		return language.English
	}
	_, index, _ := language.NewMatcher(supported).Match(desired...)
	return supported[index]
}

func currentLocalizer() *i18n.Localizer {
	localizerMu.Lock()
	defer localizerMu.Unlock()
	if localizer == nil {
		localizer = i18n.NewLocalizer(Bundle(), language.English.String())
	}
	return localizer
}

// Localize renders message id with data. Unknown messages render as their id.
func Localize(id string, data map[string]any) string {
	text, err := currentLocalizer().Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "id", id, "error", err)
		return id
	}
	return text
}
