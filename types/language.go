package types

import (
	"fmt"
	"strings"
)

type Language string

const (
	English  Language = "english"
	Gujarati Language = "gujarati"
)

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == Gujarati {
		return English
	}
	return Gujarati
}

func (l Language) Valid() bool {
	return l == English || l == Gujarati
}

func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "gujarati", "gu":
		return Gujarati, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}

// Pick resolves a pre-translated pair. An empty Gujarati value falls back to English.
func Pick(lang Language, english, gujarati string) string {
	if lang == Gujarati && gujarati != "" {
		return gujarati
	}
	return english
}
