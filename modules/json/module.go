// Package json renders contacts as a pretty-printed JSON array of nested
// objects.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/vcfconvert/internal/columns"
	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/document"
	"github.com/specialistvlad/vcfconvert/internal/registry"
	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

const indent = "    "

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the renderer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer("json", &registry.RegisteredRenderer{
		Extension:   "json",
		Description: "Save parsed data to a JSON file",
		Fn:          Render,
	})
}

// Render writes one object per contact. Keys follow column order.
func Render(ctx context.Context, w io.Writer, records []vcard.Contact, opts registry.Options) error {
	headers := columns.Order(columns.Labels(records), opts.Reorder)
	docs := document.Build(records, headers)
	ctxlog.FromContext(ctx).Debug("Rendering JSON.", "objects", len(docs))

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
