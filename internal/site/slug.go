package site

import "strings"

// Stored site keys are legacy codes, often zero-padded ("007"). The slug shown
// to users drops the padding; resolving a slug back has to try both forms.

// IsNumericKey reports whether s consists only of ASCII digits.
func IsNumericKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DisplaySlug renders a stored site key for the user. All-digit keys lose
// their leading zeros ("007" -> "7"); anything else passes through unchanged.
// The transform is lossy: "007" and "7" collide on the same slug.
func DisplaySlug(key string) string {
	if !IsNumericKey(key) {
		return key
	}
	trimmed := strings.TrimLeft(key, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// SlugCandidates lists the stored keys a slug may resolve to, in lookup
// order: the literal slug first, then (for numeric slugs) the variant
// zero-padded to 3 digits. First match wins.
func SlugCandidates(slug string) []string {
	if !IsNumericKey(slug) {
		return []string{slug}
	}
	padded := PadKey(slug)
	if padded == slug {
		return []string{slug}
	}
	return []string{slug, padded}
}

// PadKey zero-pads a numeric key to 3 digits; longer keys are unchanged.
func PadKey(key string) string {
	for len(key) < 3 {
		key = "0" + key
	}
	return key
}

// CompareSlugs orders slugs for on-screen listings: numeric slugs sort
// numerically ascending and always come before non-numeric ones; non-numeric
// slugs sort lexicographically among themselves. Returns <0, 0 or >0.
func CompareSlugs(a, b string) int {
	aNum := IsNumericKey(a)
	bNum := IsNumericKey(b)

	switch {
	case aNum && bNum:
		return compareNumericStrings(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareNumericStrings compares digit strings by value without parsing,
// so keys longer than an int64 still order correctly.
func compareNumericStrings(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
