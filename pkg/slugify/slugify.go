// Package slugify turns arbitrary titles into URL-safe note slugs.
//
// Non-Latin scripts are transliterated to ASCII, so "Тестовая заметка" and
// "Test Note" both yield plain lowercase, hyphen separated identifiers. The
// output is deterministic and feeding it back in returns it unchanged.
package slugify

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxLength mirrors the width of the notes.slug column.
const MaxLength = 100

// cyrillicRunes overrides the default transliteration of iotated vowels so
// "заметка моя" becomes "zametka-moya" rather than "zametka-moia".
var cyrillicRunes = map[rune]string{
	'я': "ya", 'Я': "Ya",
	'ю': "yu", 'Ю': "Yu",
	'ё': "yo", 'Ё': "Yo",
}

// Make slugifies s without any length limit.
func Make(s string) string {
	return slug.Make(slug.SubstituteRune(s, cyrillicRunes))
}

// FromTitle slugifies a note title and truncates the result to MaxLength.
func FromTitle(title string) string {
	return Truncate(Make(title), MaxLength)
}

// Truncate cuts s to at most n bytes without leaving a dangling separator.
// Slugs are pure ASCII, so a byte cut never splits a character.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimRight(s[:n], "-_")
}

// IsValid reports whether s is already a well formed slug: ASCII letters,
// digits, hyphens and underscores only.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
