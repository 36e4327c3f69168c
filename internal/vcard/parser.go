package vcard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
)

// Parser classifies vCard lines into labeled fields. A Parser holds only
// configuration and may be reused.
type Parser struct {
	opts  Options
	rules []rule
}

// NewParser returns a Parser using the standard Apple rule table.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts, rules: defaultRules()}
}

// Options returns the options the parser was built with.
func (p *Parser) Options() Options { return p.opts }

// Parse splits content into entries and parses each one in order. obs may be
// nil.
func (p *Parser) Parse(ctx context.Context, content string, obs Observer) []Contact {
	logger := ctxlog.FromContext(ctx)

	entries := SplitEntries(content)
	logger.Debug("Split input into entries.", "count", len(entries))

	contacts := make([]Contact, 0, len(entries))
	unknown := 0
	for i, entry := range entries {
		st := p.parseEntry(entry)
		contacts = append(contacts, st.fields)
		unknown += st.unknownCount
		if obs != nil {
			obs.EntryParsed(Report{
				Index:   i + 1,
				Total:   len(entries),
				Name:    st.name,
				Unknown: st.unknown,
			})
		}
	}

	logger.Debug("Parsed all entries.", "contacts", len(contacts), "unknown_fields", unknown)
	return contacts
}

// ParseEntry parses the text of a single entry.
func (p *Parser) ParseEntry(entry string) Contact {
	return p.parseEntry(entry).fields
}

func (p *Parser) parseEntry(entry string) *entryState {
	st := newEntryState(p.opts)
	for _, raw := range splitLines(entry) {
		if strings.HasPrefix(strings.TrimSpace(raw), "PHOTO;") {
			st.photoSkip = true
			continue
		}
		if st.photoSkip {
			if strings.HasPrefix(raw, " ") {
				continue
			}
			st.photoSkip = false
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p.classify(st, line)
	}
	st.resolveGroups()
	return st
}

func (p *Parser) classify(st *entryState, line string) {
	for _, r := range p.rules {
		if !r.match(line) {
			continue
		}
		if !r.apply(st, line) {
			st.unknownValue(line)
		}
		return
	}
	st.unknownValue(line)
}

// entryState is the mutable state carried across the lines of one entry.
type entryState struct {
	opts Options

	fields       Contact
	name         string
	unknown      []string
	unknownCount int

	photoSkip  bool
	groups     map[int][]string
	groupOrder []int
}

func newEntryState(opts Options) *entryState {
	return &entryState{opts: opts, groups: make(map[int][]string)}
}

func (s *entryState) emit(label, value string) {
	s.fields = append(s.fields, Field{Label: label, Value: value})
}

// emitPref emits the field and, when preferred duplication is on and the
// field is marked pref, a "(Preferred)" copy of it.
func (s *entryState) emitPref(label, value string, pref bool) {
	s.emit(label, value)
	if pref && s.opts.Preferred {
		s.emit(label+PreferredSuffix, value)
	}
}

func (s *entryState) unknownValue(value string) {
	s.emit(LabelUnknown, value)
	s.unknownCount++
	if s.opts.CollectUnknown {
		s.unknown = append(s.unknown, value)
	}
}

func (s *entryState) phone(v string) string {
	if s.opts.FormatPhone {
		return FormatPhone(v)
	}
	return v
}

func (s *entryState) address(v string) string {
	if s.opts.FormatAddress {
		return FormatAddress(v)
	}
	return v
}

func (s *entryState) addToGroup(n int, value string) {
	if _, ok := s.groups[n]; !ok {
		s.groupOrder = append(s.groupOrder, n)
	}
	s.groups[n] = append(s.groups[n], value)
}

func (s *entryState) unknownGroup(n int, values []string) {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	s.unknownValue(fmt.Sprintf("Item Group: %d, Values: [%s]", n, strings.Join(quoted, ", ")))
}
