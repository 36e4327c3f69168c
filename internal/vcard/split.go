package vcard

import "strings"

// EndMarker terminates every vCard entry.
const EndMarker = "END:VCARD"

// SplitEntries cuts content into individual vCard entries. Every fragment with
// non-whitespace content is trimmed and gets its END:VCARD line restored;
// whitespace-only fragments (such as the tail after the last marker) are
// dropped. Content without any marker comes back as a single entry.
func SplitEntries(content string) []string {
	content = normalizeNewlines(content)
	parts := strings.Split(content, EndMarker)
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		entries = append(entries, part+"\n"+EndMarker)
	}
	return entries
}

// CountMarkers reports how many END:VCARD markers content holds.
func CountMarkers(content string) int {
	return strings.Count(content, EndMarker)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(entry string) []string {
	return strings.Split(normalizeNewlines(entry), "\n")
}
