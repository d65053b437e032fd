package content

import (
	"net/url"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleWords title-cases every word in s, preserving whitespace. Used to
// derive display titles from filename stems and folder labels.
func TitleWords(s string) string {
	if s == "" {
		return s
	}
	return cases.Title(language.English).String(s)
}

// SchemeHost reduces a URL to its scheme://host prefix. Returns "" when the
// value does not parse or has no host.
func SchemeHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// stringValue extracts a string from decoded JSON, returning "" for any
// other type (including nil).
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
