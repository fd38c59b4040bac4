package domain

import "sort"

// Language is a catalog language. Each language carries a fixed ordinal so
// that fanout and listing order never depends on map iteration order.
type Language string

const (
	LanguageJA Language = "ja"
	LanguageEN Language = "en"
	LanguageKO Language = "ko"
	LanguageZH Language = "zh"
)

// languageOrdinals fixes the catalog-wide language ordering.
var languageOrdinals = map[Language]int{
	LanguageJA: 0,
	LanguageEN: 1,
	LanguageKO: 2,
	LanguageZH: 3,
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	_, ok := languageOrdinals[l]
	return ok
}

// Ordinal returns the fixed position of the language in the catalog order.
// Unknown languages sort last.
func (l Language) Ordinal() int {
	if ord, ok := languageOrdinals[l]; ok {
		return ord
	}
	return len(languageOrdinals)
}

// SortLanguages orders languages in place by their fixed ordinal.
func SortLanguages(langs []Language) {
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].Ordinal() < langs[j].Ordinal()
	})
}
