package entity

import (
	"regexp"
	"strings"
)

const (
	SlugMinLength = 3
	SlugMaxLength = 30
)

// SlugRejection explains why a slug cannot be claimed.
type SlugRejection string

const (
	SlugEmpty    SlugRejection = "empty"
	SlugReserved SlugRejection = "reserved"
	SlugLength   SlugRejection = "length"
	SlugFormat   SlugRejection = "format"
	SlugTaken    SlugRejection = "taken"
)

var (
	reservedSlugs = map[string]struct{}{
		"store":        {},
		"stores":       {},
		"dashboard":    {},
		"login":        {},
		"register":     {},
		"account":      {},
		"verify-email": {},
		"about":        {},
		"api":          {},
		"admin":        {},
	}

	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashRuns     = regexp.MustCompile(`-+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])$`)
)

// NormalizeSlug lower-cases the input, turns every character outside
// [a-z0-9-] into a dash, collapses dash runs and trims dashes at both ends.
func NormalizeSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// ValidateSlug checks a normalized slug. The empty rejection means ok.
func ValidateSlug(slug string) SlugRejection {
	if slug == "" {
		return SlugEmpty
	}
	if _, reserved := reservedSlugs[slug]; reserved {
		return SlugReserved
	}
	if len(slug) < SlugMinLength || len(slug) > SlugMaxLength {
		return SlugLength
	}
	if !slugPattern.MatchString(slug) {
		return SlugFormat
	}

	return ""
}
