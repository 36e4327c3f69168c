package vcard

import (
	"regexp"
	"strings"
)

var (
	phoneRe      = regexp.MustCompile(`^(?:\+?1[-. ]?)?(?:\(?(\d{3})\)?[-. ]?(\d{3})[-. ]?(\d{4}))$`)
	extraLabelRe = regexp.MustCompile(`^_\$!<([^>]+)>!\\?\$_$`)
	yearPrefixRe = regexp.MustCompile(`^\d+-`)
)

const yearlessMarker = "X-APPLE-OMIT-YEAR="

// FormatPhone rewrites a US number (optional +1/1 country code, 3-3-4 digit
// grouping with optional separators or parentheses) as NPA-NXX-XXXX. Other
// values are returned unchanged.
func FormatPhone(phone string) string {
	m := phoneRe.FindStringSubmatch(phone)
	if m == nil {
		return phone
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// FormatAddress rewrites a ';'-delimited structured address as a single line,
// dropping empty components and joining the rest with ", ".
func FormatAddress(address string) string {
	var parts []string
	for _, comp := range strings.Split(address, ";") {
		if comp = strings.TrimSpace(comp); comp != "" {
			parts = append(parts, comp)
		}
	}
	return strings.Join(parts, ", ")
}

// capitalize upper-cases the first byte and lower-cases the rest. Type tokens
// are ASCII, so no locale rules apply.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(strings.ToLower(s))
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// unwrapLabel turns Apple's built-in label form _$!<Name>!$_ into Name.
func unwrapLabel(label string) string {
	if m := extraLabelRe.FindStringSubmatch(label); m != nil {
		return strings.TrimSpace(m[1])
	}
	return label
}

// stripYearless removes the placeholder year Apple writes for dates saved
// without one (X-APPLE-OMIT-YEAR=1604:1604-03-15 becomes 03-15).
func stripYearless(params, value string) string {
	if !strings.Contains(strings.ToUpper(params), yearlessMarker) {
		return value
	}
	return yearPrefixRe.ReplaceAllString(value, "")
}

func isUpperToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isAlphaToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
