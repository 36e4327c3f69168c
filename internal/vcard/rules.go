package vcard

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// rule is one row of the classification table. apply returns false when the
// line matched the rule's pattern but its payload could not be interpreted;
// the line is then kept as an Unknown field.
type rule struct {
	name  string
	match func(line string) bool
	apply func(st *entryState, line string) bool
}

var (
	groupedRe  = regexp.MustCompile(`^item(\d+)\.(.+)$`)
	addressRe  = regexp.MustCompile(`^(?i:type)=([a-zA-Z]+)(?:;(?i:type)=pref)?:(.+)$`)
	nameLabels = []string{LabelNameLast, LabelNameFirst, LabelNameMiddle, LabelNamePrefix, LabelNameSuffix}
	orgLabels  = []string{LabelOrgName, LabelOrgDepartment}
)

// defaultRules returns the classification table in priority order. Several
// patterns overlap (EMAIL/TEL parameters, N: and NICKNAME:), so the order is
// significant.
func defaultRules() []rule {
	return []rule{
		{"ignored", hasAnyPrefix("BEGIN:VCARD", "END:VCARD", "VERSION:", "PRODID:", "VND-63-SENSITIVE-CONTENT-CONFIG:"), ignore},
		{"company", equals("X-ABShowAs:COMPANY"), emitConst(LabelIsCompany, "X")},
		{"name", hasPrefix("N:"), structured(nameLabels)},
		{"full-name", hasPrefix("FN:"), fullName},
		{"nickname", hasPrefix("NICKNAME:"), simple(LabelNameNickname)},
		{"maiden-name", hasPrefix("X-MAIDENNAME:"), simple(LabelNameMaiden)},
		{"phonetic-first", hasPrefix("X-PHONETIC-FIRST-NAME:"), simple(LabelNameFirstPhonetic)},
		{"phonetic-middle", hasPrefix("X-PHONETIC-MIDDLE-NAME:"), simple(LabelNameMiddlePhonetic)},
		{"phonetic-last", hasPrefix("X-PHONETIC-LAST-NAME:"), simple(LabelNameLastPhonetic)},
		{"organization", hasPrefix("ORG:"), structured(orgLabels)},
		{"phonetic-org", hasPrefix("X-PHONETIC-ORG:"), simple(LabelOrgNamePhonetic)},
		{"title", hasPrefix("TITLE:"), simple(LabelOrgTitle)},
		{"email", hasPrefix("EMAIL;"), email},
		{"phone", hasPrefix("TEL;"), phone},
		{"address", hasPrefix("ADR;"), address},
		{"social", hasPrefix("X-SOCIALPROFILE;"), typed(NSSocial)},
		{"note", hasPrefix("NOTE:"), simple(LabelNote)},
		{"url", hasPrefix("URL;"), typed(NSURL)},
		{"birthday", hasPrefix("BDAY"), birthday},
		{"grouped", groupedRe.MatchString, grouped},
	}
}

func hasPrefix(prefix string) func(string) bool {
	return func(line string) bool { return strings.HasPrefix(line, prefix) }
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(line string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return true
			}
		}
		return false
	}
}

func equals(s string) func(string) bool {
	return func(line string) bool { return line == s }
}

func ignore(*entryState, string) bool { return true }

func emitConst(label, value string) func(*entryState, string) bool {
	return func(st *entryState, _ string) bool {
		st.emit(label, value)
		return true
	}
}

func simple(label string) func(*entryState, string) bool {
	return func(st *entryState, line string) bool {
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			return false
		}
		st.emit(label, strings.TrimSpace(value))
		return true
	}
}

func fullName(st *entryState, line string) bool {
	_, value, _ := strings.Cut(line, ":")
	st.name = strings.TrimSpace(value)
	st.emit(LabelNameFull, st.name)
	return true
}

// structured emits one field per non-empty positional ';' component.
func structured(labels []string) func(*entryState, string) bool {
	return func(st *entryState, line string) bool {
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			return false
		}
		parts := strings.Split(strings.TrimSpace(value), ";")
		for i, label := range labels {
			if i < len(parts) && parts[i] != "" {
				st.emit(label, parts[i])
			}
		}
		return true
	}
}

// email handles EMAIL;type=INTERNET;type=WORK;type=pref:addr. The label is
// the last upper-case type token other than INTERNET.
func email(st *entryState, line string) bool {
	prop, ok := parseProperty(line)
	if !ok || prop.value == "" {
		return false
	}
	label := "Other"
	for _, param := range prop.params {
		if v, ok := typeParam(param); ok && isUpperToken(v) && v != "INTERNET" {
			label = capitalize(v)
		}
	}
	last, ok := typeParam(prop.lastParam())
	if !ok || !isAlphaToken(last) {
		return false
	}
	st.emitPref(join(NSEmail, label), prop.value, strings.EqualFold(last, "pref"))
	return true
}

// phone handles TEL;type=... lines, picking one label from the type tokens.
func phone(st *entryState, line string) bool {
	prop, ok := parseProperty(line)
	if !ok || prop.value == "" {
		return false
	}
	var labels []string
	for _, param := range prop.params {
		if v, ok := typeParam(param); ok && isUpperToken(v) {
			if l := capitalize(v); l != "Voice" {
				labels = append(labels, l)
			}
		}
	}
	last, ok := typeParam(prop.lastParam())
	if !ok || !isAlphaToken(last) {
		return false
	}
	if l := capitalize(last); l != "Voice" && !slices.Contains(labels, l) {
		labels = append(labels, l)
	}
	st.emitPref(phoneLabel(labels), st.phone(prop.value), strings.EqualFold(last, "pref"))
	return true
}

// phoneLabel selects the final label by fixed priority.
func phoneLabel(labels []string) string {
	has := func(l string) bool { return slices.Contains(labels, l) }
	switch {
	case has("Pager"):
		return NSPager
	case has("Fax"):
		for _, l := range []string{"Home", "Work", "Other"} {
			if has(l) {
				return join(NSFax, l)
			}
		}
		return NSFax
	case has("Applewatch"):
		return join(NSPhone, "Apple Watch")
	case has("Iphone"):
		return join(NSPhone, "iPhone")
	case has("Cell"):
		return join(NSPhone, "Cell")
	}
	for _, l := range []string{"Home", "Work", "Other", "Main"} {
		if has(l) {
			return join(NSPhone, l)
		}
	}
	return join(NSPhone, "Other")
}

// address handles ADR;type=HOME;type=pref:;;street;city;region;zip;country.
// The grouped X-ABADR form reuses it for its data line.
func address(st *entryState, line string) bool {
	_, rest, ok := strings.Cut(line, ";")
	if !ok {
		return false
	}
	m := addressRe.FindStringSubmatch(strings.TrimSpace(rest))
	if m == nil {
		return false
	}
	pref := strings.Contains(strings.ToLower(line), ";type=pref:")
	st.emitPref(join(NSAddress, capitalize(m[1])), st.address(m[2]), pref)
	return true
}

// typed handles properties labeled by their type parameter, such as
// X-SOCIALPROFILE;type=twitter:... and URL;type=HOME:...
func typed(ns string) func(*entryState, string) bool {
	return func(st *entryState, line string) bool {
		prop, ok := parseProperty(line)
		if !ok {
			return false
		}
		label := strings.TrimSpace(prop.anyType())
		if label == "" {
			return false
		}
		st.emit(join(ns, capitalize(label)), strings.TrimSpace(prop.value))
		return true
	}
}

func birthday(st *entryState, line string) bool {
	prop, ok := parseProperty(line)
	if !ok {
		return false
	}
	st.emit(LabelBirthday, stripYearless(prop.head, strings.TrimSpace(prop.value)))
	return true
}

func grouped(st *entryState, line string) bool {
	m := groupedRe.FindStringSubmatch(line)
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	st.addToGroup(n, m[2])
	return true
}
