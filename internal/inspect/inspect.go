// Package inspect produces a structural summary of a vCard file using an
// independent RFC decoder, as a cross-check for the converter's own splitter.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	govcard "github.com/emersion/go-vcard"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

// PropertyCount is one row of the property histogram.
type PropertyCount struct {
	Name  string
	Count int
}

// Summary describes the structure of one vCard file.
type Summary struct {
	Path    string
	Size    int64
	Cards   int // cards decoded by go-vcard
	Markers int // END:VCARD markers seen by the splitter
	Grouped int // properties carrying an itemN. group
	// Properties is sorted by descending count, then name.
	Properties []PropertyCount
}

// Consistent reports whether the decoder and the splitter agree on the number
// of entries.
func (s *Summary) Consistent() bool { return s.Cards == s.Markers }

// Summarize reads and summarizes the file at path.
func Summarize(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := SummarizeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// SummarizeBytes summarizes raw vCard content.
func SummarizeBytes(data []byte) (*Summary, error) {
	s := &Summary{
		Size:    int64(len(data)),
		Markers: vcard.CountMarkers(string(data)),
	}

	counts := make(map[string]int)
	dec := govcard.NewDecoder(bytes.NewReader(data))
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", s.Cards+1, err)
		}
		s.Cards++
		for name, fields := range card {
			counts[name] += len(fields)
			for _, f := range fields {
				if f.Group != "" {
					s.Grouped++
				}
			}
		}
	}

	for name, n := range counts {
		s.Properties = append(s.Properties, PropertyCount{Name: name, Count: n})
	}
	slices.SortFunc(s.Properties, func(a, b PropertyCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	return s, nil
}

// Write prints the summary as an aligned table.
func (s *Summary) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s (%s)\n", s.Path, humanize.Bytes(uint64(s.Size)))
	fmt.Fprintf(tw, "Cards:\t%s\n", humanize.Comma(int64(s.Cards)))
	fmt.Fprintf(tw, "END:VCARD markers:\t%s\n", humanize.Comma(int64(s.Markers)))
	fmt.Fprintf(tw, "Grouped properties:\t%s\n", humanize.Comma(int64(s.Grouped)))
	fmt.Fprintln(tw, "Properties:\t")
	for _, p := range s.Properties {
		fmt.Fprintf(tw, "  %s\t%s\n", p.Name, humanize.Comma(int64(p.Count)))
	}
	return tw.Flush()
}
