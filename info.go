package syskit

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Info describes a resolved locale.
type Info struct {
	// Tag is the canonical BCP 47 identifier, e.g. "en-US".
	Tag string
	// Language is the base language subtag, e.g. "en".
	Language string
	// Region is the region subtag when one is present, e.g. "US".
	Region string
	// Name is the English display name, e.g. "American English".
	Name string
	// SelfName is the display name in the locale itself.
	SelfName string
}

// LocaleInfo resolves a locale identifier into its descriptive report.
// Miss semantics match NormalizeLocale: blank or unknown input reports
// ok == false.
func LocaleInfo(locale string) (Info, bool) {
	normalized, ok := NormalizeLocale(locale)
	if !ok {
		return Info{}, false
	}

	// normalized round-trips through the locale database, so re-parsing
	// cannot fail.
	tag, _ := language.Parse(normalized)

	info := Info{
		Tag:      normalized,
		Name:     display.English.Tags().Name(tag),
		SelfName: display.Self.Name(tag),
	}

	if base, conf := tag.Base(); conf != language.No {
		info.Language = base.String()
	}
	if region, conf := tag.Region(); conf != language.No && region.IsCountry() {
		info.Region = region.String()
	}

	return info, true
}
