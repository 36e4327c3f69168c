package vcard

// Field is a single labeled value extracted from a vCard entry. Labels are
// namespaced with ": " (for example "Phone: Cell"); one contact may carry
// several fields with the same label.
type Field struct {
	Label string
	Value string
}

// Contact is the ordered list of fields parsed from one vCard entry.
type Contact []Field

// Values returns every value stored under label, in insertion order.
func (c Contact) Values(label string) []string {
	var out []string
	for _, f := range c {
		if f.Label == label {
			out = append(out, f.Value)
		}
	}
	return out
}

// Options toggles the optional transformations applied while parsing.
type Options struct {
	// Preferred adds a "(Preferred)" copy of every field marked pref.
	Preferred bool
	// FormatPhone rewrites US numbers to NPA-NXX-XXXX.
	FormatPhone bool
	// FormatAddress rewrites structured addresses to a comma separated line.
	FormatAddress bool
	// CollectUnknown records unknown lines in the per-entry Report.
	CollectUnknown bool
}

// Report describes one parsed entry. It is handed to an Observer after the
// entry's fields have been produced.
type Report struct {
	Index   int // 1-based position of the entry in the file
	Total   int
	Name    string // FN value, if the entry had one
	Unknown []string
}

// Observer receives a Report for every parsed entry.
type Observer interface {
	EntryParsed(r Report)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(r Report)

// EntryParsed calls f(r).
func (f ObserverFunc) EntryParsed(r Report) { f(r) }
