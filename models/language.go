package models

import (
	"fmt"
	"strings"
)

// Language is a content language code. It stays a plain string at the decode
// boundary so unknown codes from the backend never break decoding.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
	Arabic  Language = "ar"
	Spanish Language = "es"
)

// Languages lists the supported languages in picker order.
var Languages = []Language{English, Russian, Arabic, Spanish}

func (l Language) Valid() bool {
	switch l {
	case English, Russian, Arabic, Spanish:
		return true
	}
	return false
}

func (l Language) String() string { return string(l) }

// ParseLanguage normalizes s and rejects codes outside the supported set.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return l, nil
}
