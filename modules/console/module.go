// Package console prints parsed contacts to the terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/vcfconvert/internal/columns"
	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/registry"
	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the renderer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer("console", &registry.RegisteredRenderer{
		Description: "Display parsed data in the console",
		Fn:          Render,
	})
}

// Render prints a header per contact followed by its labels in column order.
func Render(ctx context.Context, w io.Writer, records []vcard.Contact, opts registry.Options) error {
	headers := columns.Order(columns.Labels(records), opts.Reorder)
	ctxlog.FromContext(ctx).Debug("Printing contacts.", "count", len(records))

	bw := bufio.NewWriter(w)
	for _, c := range records {
		fmt.Fprintln(bw, "New vCard Entry:")
		for _, label := range headers {
			var values []string
			for _, v := range c.Values(label) {
				if v != "" {
					values = append(values, v)
				}
			}
			if len(values) == 0 {
				continue
			}
			fmt.Fprintf(bw, "  %s: %s\n", label, strings.Join(values, ", "))
		}
	}
	return bw.Flush()
}
