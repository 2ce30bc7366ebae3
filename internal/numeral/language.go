// Package numeral renders amounts for display: locale-aware digit grouping
// and glyphs, and amounts written out in words.
//
// Languages are looked up in a Registry by code ("en", "bn", or a locale such
// as "bn-BD"). Unknown codes fall back to the registry's fallback language
// instead of failing.
package numeral

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Supported language codes.
const (
	CodeEnglish = "en"
	CodeBangla  = "bn"
)

// Language describes how amounts are written in one language.
type Language struct {
	// Code is the short language code used for lookup (e.g., "bn").
	Code string

	// Name is the English name of the language.
	Name string

	// NativeName is the name of the language written in itself.
	NativeName string

	// Tag selects CLDR number formatting (grouping, separators).
	Tag language.Tag

	// Digits are the glyphs for 0-9. Nil keeps ASCII digits.
	Digits *[10]rune

	// Words spells amounts in this language.
	Words WordFormatter
}

// transliterate replaces ASCII digits with the language's own glyphs.
func (l *Language) transliterate(s string) string {
	if l.Digits == nil {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return l.Digits[r-'0']
		}
		return r
	}, s)
}

// Registry is the dispatch table from language code to Language.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]*Language
	order     []string
	fallback  string
}

// NewRegistry creates a registry holding langs. Lookups of unknown codes
// return the language registered under fallback.
func NewRegistry(fallback string, langs ...*Language) *Registry {
	r := &Registry{
		languages: make(map[string]*Language, len(langs)),
		fallback:  fallback,
	}
	for _, l := range langs {
		r.Register(l)
	}
	return r
}

// Register adds or replaces a language.
func (r *Registry) Register(l *Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := normalizeCode(l.Code)
	if _, exists := r.languages[code]; !exists {
		r.order = append(r.order, code)
	}
	r.languages[code] = l
}

// Lookup returns the language for code, or the fallback language.
// A locale such as "bn-BD" resolves to its base language "bn".
func (r *Registry) Lookup(code string) *Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.languages[normalizeCode(code)]; ok {
		return l
	}
	return r.languages[r.fallback]
}

// Supported reports whether code names a registered language.
func (r *Registry) Supported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.languages[normalizeCode(code)]
	return ok
}

// Languages returns the registered languages in registration order.
func (r *Registry) Languages() []*Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]*Language, 0, len(r.order))
	for _, code := range r.order {
		langs = append(langs, r.languages[code])
	}
	return langs
}

func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	return code
}

// English returns the English language definition.
func English() *Language {
	return &Language{
		Code:       CodeEnglish,
		Name:       "English",
		NativeName: "English",
		Tag:        language.AmericanEnglish,
		Words:      englishWords{},
	}
}

// Bangla returns the Bengali language definition with Bengali digits.
func Bangla() *Language {
	return &Language{
		Code:       CodeBangla,
		Name:       "Bengali",
		NativeName: "বাংলা",
		Tag:        language.MustParse("bn-BD"),
		Digits:     &[10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'},
		Words:      banglaWords{},
	}
}

// Default holds English and Bangla and falls back to English.
var Default = NewRegistry(CodeEnglish, English(), Bangla())
