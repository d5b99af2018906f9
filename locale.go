package syskit

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLocale canonicalizes a locale identifier into its standard BCP 47
// language-REGION form: surrounding whitespace is trimmed, underscore
// separators become hyphens, and casing follows the locale database
// ("en_us" -> "en-US"). Blank input and identifiers the database does not
// recognize report ok == false; malformed input never causes a panic or an
// error. The result is stable: normalizing an already canonical tag returns
// it unchanged.
func NormalizeLocale(candidate string) (string, bool) {
	sanitized := strings.ReplaceAll(strings.TrimSpace(candidate), "_", "-")
	if sanitized == "" {
		return "", false
	}

	tag, err := language.Parse(sanitized)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
