package evaluation

import (
	"errors"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{" UZ ", Uzbek, false},
		{"ru", Russian, false},
		{"de", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedLanguage) {
					t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocalizedTextIn(t *testing.T) {
	text := LocalizedText{EN: "Clear", UZ: "Aniq", RU: ""}

	tests := []struct {
		lang Language
		want string
	}{
		{English, "Clear"},
		{Uzbek, "Aniq"},
		{Russian, "Clear"},
		{Language("de"), "Clear"},
	}

	for _, tt := range tests {
		if got := text.In(tt.lang); got != tt.want {
			t.Errorf("In(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestRatingLabel(t *testing.T) {
	if got := StronglyAgree.Label(); got != "Strongly Agree" {
		t.Errorf("Label() = %q", got)
	}
	if got := NotApplicable.Label(); got != "Not Applicable" {
		t.Errorf("Label() = %q", got)
	}
	if NotApplicable.Eligible() {
		t.Error("NotApplicable must not be eligible")
	}
	if Rating(0).Valid() || Rating(7).Valid() {
		t.Error("Expected 0 and 7 to be invalid")
	}
}
