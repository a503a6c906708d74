package i18n

import (
	"golang.org/x/text/language"

	"bellum/internal/log"
)

var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Translator resolves UI strings for one negotiated language.
type Translator struct {
	tag   language.Tag
	table map[string]string
}

// Match negotiates the closest supported language for a preference
// string such as "pt-BR" or "en". An empty or unparseable preference
// falls back to English.
func Match(pref string) language.Tag {
	if pref == "" {
		return language.English
	}
	tag, err := language.Parse(pref)
	if err != nil {
		log.Warn("Unparseable language preference", "pref", pref, "error", err)
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// New creates a translator for the given preference string.
func New(pref string) *Translator {
	tag := Match(pref)
	table := english
	if tag == language.BrazilianPortuguese {
		table = portuguese
	}
	return &Translator{tag: tag, table: table}
}

// Tag returns the negotiated language tag.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// T resolves a message key, falling back to English and finally to the
// key itself so a missing entry never blanks the UI.
func (t *Translator) T(key string) string {
	if msg, ok := t.table[key]; ok {
		return msg
	}
	if msg, ok := english[key]; ok {
		return msg
	}
	return key
}
