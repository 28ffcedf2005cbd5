package evaluation

import (
	"errors"
	"strings"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Language string

const (
	English Language = "en"
	Uzbek   Language = "uz"
	Russian Language = "ru"
)

var Languages = []Language{English, Uzbek, Russian}

func (l Language) Valid() bool {
	switch l {
	case English, Uzbek, Russian:
		return true
	}
	return false
}

func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}

// LocalizedText carries one question text per supported language.
type LocalizedText struct {
	EN string `json:"text_en"`
	UZ string `json:"text_uz"`
	RU string `json:"text_ru"`
}

// In returns the text for l, falling back to English for unknown languages
// and blank translations.
func (t LocalizedText) In(l Language) string {
	var s string
	switch l {
	case Uzbek:
		s = t.UZ
	case Russian:
		s = t.RU
	default:
		s = t.EN
	}
	if strings.TrimSpace(s) == "" {
		return t.EN
	}
	return s
}
