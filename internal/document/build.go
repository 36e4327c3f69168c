package document

import (
	"slices"
	"strings"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

const nestSeparator = ": "

// Build converts records into one Object per contact, visiting labels in the
// order given by headers.
//
// A label of the form "Main: Sub" is stored as Sub inside a nested Main
// object. Labels without the separator stay at the top level, with repeated
// values deduplicated in first-seen order. Lists holding a single value
// collapse to that value, empty values are dropped, and objects left empty are
// omitted. Literal "\n" escapes in values become real newlines.
func Build(records []vcard.Contact, headers []string) []*Object {
	out := make([]*Object, 0, len(records))
	for _, c := range records {
		obj := buildOne(c, headers)
		if obj.Len() > 0 {
			out = append(out, obj)
		}
	}
	return out
}

func buildOne(c vcard.Contact, headers []string) *Object {
	obj := NewObject()
	for _, h := range headers {
		values := nonEmpty(c.Values(h))
		main, sub, nested := strings.Cut(h, nestSeparator)
		if nested {
			main, sub = strings.TrimSpace(main), strings.TrimSpace(sub)
			if len(values) == 0 {
				continue
			}
			child, ok := nestedObject(obj, main)
			if !ok {
				// A plain label already owns the key.
				continue
			}
			prev, _ := child.Get(sub)
			list, _ := prev.([]string)
			child.Set(sub, append(list, values...))
			continue
		}
		if len(values) == 0 {
			continue
		}
		if _, taken := obj.Get(h); taken {
			continue
		}
		obj.Set(h, dedup(values))
	}
	collapse(obj)
	return obj
}

func nestedObject(obj *Object, key string) (*Object, bool) {
	v, ok := obj.Get(key)
	if !ok {
		child := NewObject()
		obj.Set(key, child)
		return child, true
	}
	child, ok := v.(*Object)
	return child, ok
}

// collapse turns single-element lists into scalars and removes empty entries.
func collapse(obj *Object) {
	for _, e := range obj.Entries() {
		switch v := e.Value.(type) {
		case []string:
			switch len(v) {
			case 0:
				obj.Delete(e.Key)
			case 1:
				obj.Set(e.Key, v[0])
			}
		case *Object:
			collapse(v)
			if v.Len() == 0 {
				obj.Delete(e.Key)
			}
		}
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(v, `\n`, "\n"))
	}
	return out
}

func dedup(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
