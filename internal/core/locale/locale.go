// Package locale holds the supported response languages and the fixed table
// of user-facing error messages.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Language is a response language tag.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
)

// ErrUnsupportedLanguage is returned by Parse for tags outside Supported.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Supported lists every language the app answers in.
func Supported() []Language {
	return []Language{English, Indonesian}
}

// Parse normalizes tag and rejects anything that is not supported.
func Parse(tag string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(tag)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return l, nil
}

func (l Language) Valid() bool {
	return lo.Contains(Supported(), l)
}

// Name is the language name used inside model prompts.
func (l Language) Name() string {
	switch l {
	case Indonesian:
		return "Bahasa Indonesia"
	default:
		return "English"
	}
}

// Key identifies a localized message.
type Key string

const (
	EmptyQuery            Key = "emptyQuery"
	NoInterpretation      Key = "noInterpretation"
	ComicGenerationFailed Key = "comicGenerationFailed"
	Unexpected            Key = "unexpected"
	UnsupportedLanguage   Key = "unsupportedLanguage"
)

var messages = map[Language]map[Key]string{
	English: {
		EmptyQuery:            "Search query cannot be empty.",
		NoInterpretation:      "Could not find an interpretation for the given term.",
		ComicGenerationFailed: "Failed to generate comic illustration.",
		Unexpected:            "An unexpected error occurred. Please try again later.",
		UnsupportedLanguage:   "Unsupported language. Use 'en' or 'id'.",
	},
	Indonesian: {
		EmptyQuery:            "Kolom pencarian tidak boleh kosong.",
		NoInterpretation:      "Tidak dapat menemukan interpretasi untuk istilah yang diberikan.",
		ComicGenerationFailed: "Gagal membuat ilustrasi komik.",
		Unexpected:            "Terjadi kesalahan tak terduga. Silakan coba lagi nanti.",
		UnsupportedLanguage:   "Bahasa tidak didukung. Gunakan 'en' atau 'id'.",
	},
}

// Message returns the text for key in l. Unsupported languages fall back to
// English.
func Message(l Language, key Key) string {
	table, ok := messages[l]
	if !ok {
		table = messages[English]
	}
	return table[key]
}
