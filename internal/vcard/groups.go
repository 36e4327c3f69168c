package vcard

import "strings"

const (
	labelMarker   = "X-ABLabel:"
	countryMarker = "X-ABADR:"
)

// instantMessagingDuplicates are Apple's legacy per-service IM properties.
// The same handles are exported again as IMPP lines, so they are dropped.
var instantMessagingDuplicates = []string{"X-AIM", "X-JABBER", "X-MSN", "X-YAHOO", "X-ICQ"}

// resolveGroups turns the collected itemN.* values into fields, in the order
// the groups first appeared.
func (s *entryState) resolveGroups() {
	for _, n := range s.groupOrder {
		s.resolveGroup(n, s.groups[n])
	}
}

// resolveGroup handles one item group. Apple writes a data line plus an
// X-ABLabel line, an X-ABADR country line, or both. Any other shape,
// including a group without exactly one data line, is kept as Unknown.
func (s *entryState) resolveGroup(n int, values []string) {
	var (
		label      string
		hasLabel   bool
		hasCountry bool
		data       []string
	)
	for _, v := range values {
		switch {
		case strings.HasPrefix(v, labelMarker):
			if !hasLabel {
				label = unwrapLabel(strings.TrimPrefix(v, labelMarker))
				hasLabel = true
			}
		case strings.HasPrefix(v, countryMarker):
			hasCountry = true
		default:
			data = append(data, v)
		}
	}

	resolved := false
	if len(data) == 1 {
		switch {
		case hasLabel:
			resolved = s.labeledValue(label, data[0])
		case hasCountry:
			resolved = address(s, data[0])
		}
	}
	if !resolved {
		s.unknownGroup(n, values)
	}
}

// labeledValue dispatches a grouped data line on its property name.
func (s *entryState) labeledValue(label, data string) bool {
	for _, p := range instantMessagingDuplicates {
		if strings.HasPrefix(data, p) {
			return true
		}
	}

	prop, ok := parseProperty(data)
	if !ok {
		return false
	}
	value := strings.TrimSpace(prop.value)
	pref := prop.endsWithPref()

	switch strings.ToUpper(propertyName(data)) {
	case "EMAIL":
		s.emitPref(join(NSEmail, label), value, pref)
	case "TEL":
		s.emitPref(join(NSPhone, label), s.phone(value), pref)
	case "ADR":
		s.emitPref(join(NSAddress, label), s.address(value), pref)
	case "URL":
		s.emitPref(join(NSURL, label), value, pref)
	case "X-ABDATE":
		s.emit(join(NSDate, label), stripYearless(prop.head, value))
	case "X-ABRELATEDNAMES":
		s.emit(join(NSRelationship, label), value)
	case "IMPP":
		// IMPP values are URIs such as xmpp:user@host; keep the handle.
		if _, handle, ok := strings.Cut(value, ":"); ok {
			value = strings.TrimSpace(handle)
		}
		s.emitPref(join(NSIMPP, label), value, pref)
	default:
		return false
	}
	return true
}
