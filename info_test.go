package syskit

import (
	"strings"
	"testing"
)

func TestLocaleInfo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tag      string
		language string
		region   string
		nameHas  string
	}{
		{
			name:     "english_us",
			input:    "en_us",
			tag:      "en-US",
			language: "en",
			region:   "US",
			nameHas:  "English",
		},
		{
			name:     "german_germany",
			input:    "de-DE",
			tag:      "de-DE",
			language: "de",
			region:   "DE",
			nameHas:  "German",
		},
		{
			name:     "language_only_has_no_region",
			input:    "ja",
			tag:      "ja",
			language: "ja",
			region:   "",
			nameHas:  "Japanese",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := LocaleInfo(tt.input)
			if !ok {
				t.Fatalf("LocaleInfo(%q) missed", tt.input)
			}

			if info.Tag != tt.tag {
				t.Errorf("Tag = %q; want %q", info.Tag, tt.tag)
			}
			if info.Language != tt.language {
				t.Errorf("Language = %q; want %q", info.Language, tt.language)
			}
			if info.Region != tt.region {
				t.Errorf("Region = %q; want %q", info.Region, tt.region)
			}
			if !strings.Contains(info.Name, tt.nameHas) {
				t.Errorf("Name = %q; want it to mention %q", info.Name, tt.nameHas)
			}
			if info.SelfName == "" {
				t.Error("SelfName is empty")
			}
		})
	}
}

func TestLocaleInfo_Miss(t *testing.T) {
	for _, input := range []string{"", "   ", "xx-ZZ"} {
		if info, ok := LocaleInfo(input); ok {
			t.Errorf("LocaleInfo(%q) = %+v; want miss", input, info)
		}
	}
}
