package parseresult

import (
	"strings"

	"github.com/napalu/parseresult/errs"
	"github.com/napalu/parseresult/i18n"
	"golang.org/x/text/language"
)

// ValidationMessages formats the human-readable text of the diagnostics a result can produce.
type ValidationMessages interface {
	// UnrecognizedArgument describes a token value which is not one of allowed.
	UnrecognizedArgument(value string, allowed []string) string
	// UnrecognizedCommandOrArgument describes a token the result had no capacity for.
	UnrecognizedCommandOrArgument(value string) string
}

// BundleValidationMessages formats messages from an i18n.Bundle in one language
type BundleValidationMessages struct {
	bundle *i18n.Bundle
	lang   language.Tag
}

var defaultValidationMessages = NewValidationMessages(i18n.Default(), language.English)

// DefaultValidationMessages returns the English messages of the embedded bundle. Results
// fall back to them when neither they, their ancestors nor their tree configured any.
func DefaultValidationMessages() ValidationMessages {
	return defaultValidationMessages
}

// NewValidationMessages returns messages formatted from bundle in lang. Keys missing in
// lang fall back to the bundle's default language.
func NewValidationMessages(bundle *i18n.Bundle, lang language.Tag) *BundleValidationMessages {
	return &BundleValidationMessages{
		bundle: bundle,
		lang:   lang,
	}
}

func (m *BundleValidationMessages) UnrecognizedArgument(value string, allowed []string) string {
	var sb strings.Builder
	for _, v := range allowed {
		sb.WriteString("\n\t'")
		sb.WriteString(v)
		sb.WriteString("'")
	}

	return m.bundle.TL(m.lang, errs.MsgUnrecognizedArgumentKey, value, sb.String())
}

func (m *BundleValidationMessages) UnrecognizedCommandOrArgument(value string) string {
	return m.bundle.TL(m.lang, errs.MsgUnrecognizedCommandOrArgumentKey, value)
}

// Language returns the language messages are formatted in
func (m *BundleValidationMessages) Language() language.Tag {
	return m.lang
}
