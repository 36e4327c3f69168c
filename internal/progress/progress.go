// Package progress reports parsing progress and unknown lines while a file is
// being converted.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/cheggaaa/pb"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

// Options controls what the Reporter shows.
type Options struct {
	// Bar draws a "Processing: i / N" counter on the status writer.
	Bar bool
	// Unknown dumps the unknown lines of every entry to the output writer.
	Unknown bool
}

// Reporter implements vcard.Observer.
type Reporter struct {
	out    io.Writer
	status io.Writer
	opts   Options

	mu  sync.Mutex
	bar *pb.ProgressBar
}

var _ vcard.Observer = (*Reporter)(nil)

// New creates a Reporter. Unknown-line dumps go to out; the progress counter
// goes to status.
func New(out, status io.Writer, opts Options) *Reporter {
	return &Reporter{out: out, status: status, opts: opts}
}

// EntryParsed advances the counter and prints the entry's unknown lines, if any.
func (r *Reporter) EntryParsed(rep vcard.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.Bar {
		if r.bar == nil {
			r.bar = newBar(r.status, rep.Total)
		}
		r.bar.Set(rep.Index)
		r.bar.Update()
	}

	if r.opts.Unknown && len(rep.Unknown) > 0 {
		fmt.Fprintf(r.out, "vCard Entry: %s\n", rep.Name)
		for _, line := range rep.Unknown {
			fmt.Fprintf(r.out, "  %s\n", line)
		}
	}
}

// Finish completes the counter line. It is safe to call when nothing was drawn.
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
}

func newBar(w io.Writer, total int) *pb.ProgressBar {
	bar := pb.New(total)
	bar.Output = w
	bar.ManualUpdate = true
	bar.ShowCounters = true
	bar.ShowBar = false
	bar.ShowPercent = false
	bar.ShowSpeed = false
	bar.ShowTimeLeft = false
	bar.ShowFinalTime = false
	bar.Prefix("Processing: ")
	return bar.Start()
}
