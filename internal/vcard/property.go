package vcard

import "strings"

// property is a content line split into its name, parameters and value.
type property struct {
	name   string
	params []string
	head   string // name and parameters, as written
	value  string
}

// parseProperty splits "NAME;p1;p2:value" at the first ':' that is not
// inside a double-quoted parameter value.
func parseProperty(line string) (property, bool) {
	idx := valueIndex(line)
	if idx < 0 {
		return property{}, false
	}
	p := property{head: line[:idx], value: line[idx+1:]}
	segs := splitOutsideQuotes(p.head, ';')
	p.name = segs[0]
	for _, s := range segs[1:] {
		if s = strings.TrimSpace(s); s != "" {
			p.params = append(p.params, s)
		}
	}
	return p, true
}

// lastParam returns the parameter written directly before the value.
func (p property) lastParam() string {
	if len(p.params) == 0 {
		return ""
	}
	return p.params[len(p.params)-1]
}

// anyType returns the first type= parameter value, falling back to the value
// of the first key=value parameter.
func (p property) anyType() string {
	for _, param := range p.params {
		if v, ok := typeParam(param); ok && v != "" {
			return v
		}
	}
	for _, param := range p.params {
		if _, v, ok := strings.Cut(param, "="); ok && v != "" {
			return v
		}
	}
	return ""
}

// endsWithPref reports whether the parameter block ends with a pref marker.
func (p property) endsWithPref() bool {
	return strings.HasSuffix(strings.ToLower(p.head), "pref")
}

// typeParam returns the value of a "type=" parameter.
func typeParam(param string) (string, bool) {
	k, v, ok := strings.Cut(param, "=")
	if !ok || !strings.EqualFold(strings.TrimSpace(k), "type") {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// propertyName returns the text before the first ';' or ':'.
func propertyName(line string) string {
	if i := strings.IndexAny(line, ";:"); i >= 0 {
		return line[:i]
	}
	return line
}

func valueIndex(line string) int {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quoted = !quoted
		case ':':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

func splitOutsideQuotes(s string, sep byte) []string {
	var out []string
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}
