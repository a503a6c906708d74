package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pref string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-US", language.English},
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"de", language.English},
		{"???", language.English},
	}

	for _, tc := range tests {
		if got := Match(tc.pref); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.pref, got, tc.want)
		}
	}
}

func TestTranslatorLookup(t *testing.T) {
	en := New("en")
	if got := en.T("nav.battle"); got != "Battle" {
		t.Errorf("T(nav.battle) = %q", got)
	}

	pt := New("pt-BR")
	if got := pt.T("nav.battle"); got != "Batalha" {
		t.Errorf("pt T(nav.battle) = %q", got)
	}
}

func TestTranslatorFallsBack(t *testing.T) {
	pt := New("pt-BR")
	if got := pt.T("no.such.key"); got != "no.such.key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestEveryEnglishKeyHasPortuguese(t *testing.T) {
	for key := range english {
		if _, ok := portuguese[key]; !ok {
			t.Errorf("missing pt-BR translation for %q", key)
		}
	}
}
