package registry

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// normalizeTitle collapses a free-form document title into a single
// PascalCase identifier. Runs of non-alphanumeric characters act as word
// separators and are dropped.
//
// Example: "pet store api" -> "PetStoreApi"
func normalizeTitle(title string) string {
	words := strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, word := range words {
		b.WriteString(titleCaser.String(strings.ToLower(word)))
	}
	return b.String()
}
