package main

import (
	"strings"
	"testing"
)

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		t.Setenv(name, "")
	}
}

func TestLocaleCommand_Detection(t *testing.T) {
	clearLocaleEnv(t)
	t.Setenv("LC_ALL", "de_DE.UTF-8")

	out, _, err := runCommand(t, "", "locale")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out); got != "de-DE" {
		t.Errorf("output = %q; want %q", got, "de-DE")
	}
}

func TestLocaleCommand_FallbackWarns(t *testing.T) {
	clearLocaleEnv(t)

	out, errOut, err := runCommand(t, "", "locale")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out); got != "en-US" {
		t.Errorf("output = %q; want fallback %q", got, "en-US")
	}
	if !strings.Contains(errOut, "fallback") {
		t.Errorf("stderr %q missing fallback warning", errOut)
	}
}

func TestLocaleCommand_SettingsFallbackUsed(t *testing.T) {
	clearLocaleEnv(t)

	out, _, err := runCommandWithSettings(t, "fallback: en-GB\n", "locale")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out); got != "en-GB" {
		t.Errorf("output = %q; want %q", got, "en-GB")
	}
}

func TestLocaleCommand_SettingsLocaleOverridesDetection(t *testing.T) {
	clearLocaleEnv(t)
	t.Setenv("LC_ALL", "de_DE.UTF-8")

	out, _, err := runCommandWithSettings(t, "locale: pt_br\n", "locale")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out); got != "pt-BR" {
		t.Errorf("output = %q; want %q", got, "pt-BR")
	}
}

func TestLocaleCommand_Check(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "underscore_form",
			input:    "en_us",
			expected: "en-US",
		},
		{
			name:     "already_canonical",
			input:    "fr-FR",
			expected: "fr-FR",
		},
		{
			name:    "unknown_locale",
			input:   "xx-ZZ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCommand(t, "", "locale", "--check", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("execute error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := strings.TrimSpace(out); got != tt.expected {
				t.Errorf("output = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestLocaleCommand_Detailed(t *testing.T) {
	out, _, err := runCommand(t, "", "locale", "--check", "en_us", "--detailed")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"en-US", "English"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
