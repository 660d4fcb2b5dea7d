package menucfg

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle creates an i18n bundle that understands TOML message files,
// the format used for menu translations. Load message files onto it with
// Bundle.LoadMessageFile or Bundle.ParseMessageFileBytes.
func NewBundle(defaultLang language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// NewLocalizer builds a localizer for the bundle preferring the given
// languages in order.
func NewLocalizer(bundle *i18n.Bundle, langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}
