// Package csv renders contacts as a spreadsheet-friendly CSV file: one row per
// contact, one column per label, every cell quoted.
package csv

import (
	"bufio"
	"context"
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
	r.RegisterRenderer("csv", &registry.RegisteredRenderer{
		Extension:   "csv",
		Description: "Save parsed data to a CSV file",
		Fn:          Render,
	})
}

// Render writes a header row of ordered labels followed by one row per
// contact. Values sharing a label are joined with ", " and literal "\n"
// escapes become CRLF line breaks inside the cell.
func Render(ctx context.Context, w io.Writer, records []vcard.Contact, opts registry.Options) error {
	headers := columns.Order(columns.Labels(records), opts.Reorder)
	ctxlog.FromContext(ctx).Debug("Rendering CSV.", "rows", len(records), "columns", len(headers))

	bw := bufio.NewWriter(w)
	writeRow(bw, headers)
	row := make([]string, len(headers))
	for _, c := range records {
		for i, h := range headers {
			values := c.Values(h)
			for j, v := range values {
				values[j] = strings.ReplaceAll(v, `\n`, "\r\n")
			}
			row[i] = strings.Join(values, ", ")
		}
		writeRow(bw, row)
	}
	return bw.Flush()
}

// writeRow writes every field quoted, the way spreadsheet imports expect.
// encoding/csv only quotes fields that need it.
func writeRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteString("\r\n")
}
