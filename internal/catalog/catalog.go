// Package catalog holds the static, read-only lists the setup wizard offers:
// candidate UI languages and AI providers, in display order.
//
// Accessors return fresh slices, so callers may keep or modify them freely.
package catalog

import "github.com/aion-dev/aion/internal/config"

// Language is a UI language candidate.
type Language struct {
	Code      string // ISO 639-1 code stored in the configuration
	Name      string // Native name shown in the list
	Supported bool   // Whether a configuration may select it
}

var languages = []struct {
	code string
	name string
}{
	{"en", "English"},
	{"ar", "العربية"},
	{"no", "Norsk"},
	{"zh", "中文"},
	{"es", "Español"},
	{"fr", "Français"},
	{"de", "Deutsch"},
	{"tr", "Türkçe"},
	{"ru", "Русский"},
	{"ja", "日本語"},
	{"ko", "한국어"},
}

var providers = []config.ProviderKind{
	config.ProviderOllama,
	config.ProviderOpenAI,
	config.ProviderClaude,
	config.ProviderOpenRouter,
}

// Languages returns every candidate language in display order.
// Supported mirrors config.IsAllowedLanguage.
func Languages() []Language {
	out := make([]Language, len(languages))
	for i, l := range languages {
		out[i] = Language{
			Code:      l.code,
			Name:      l.name,
			Supported: config.IsAllowedLanguage(l.code),
		}
	}
	return out
}

// Providers returns the selectable provider kinds in display order.
func Providers() []config.ProviderKind {
	out := make([]config.ProviderKind, len(providers))
	copy(out, providers)
	return out
}

// IndexOfLanguage returns the position of code in Languages, or 0 when absent.
func IndexOfLanguage(code string) int {
	for i, l := range languages {
		if l.code == code {
			return i
		}
	}
	return 0
}

// IndexOfProvider returns the position of kind in Providers, or 0 when absent.
func IndexOfProvider(kind config.ProviderKind) int {
	for i, p := range providers {
		if p == kind {
			return i
		}
	}
	return 0
}
