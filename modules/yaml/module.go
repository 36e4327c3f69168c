// Package yaml renders contacts as a YAML sequence with the same nested
// structure as the JSON output.
package yaml

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/vcfconvert/internal/columns"
	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/document"
	"github.com/specialistvlad/vcfconvert/internal/registry"
	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the renderer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer("yaml", &registry.RegisteredRenderer{
		Extension:   "yaml",
		Description: "Save parsed data to a YAML file",
		Fn:          Render,
	})
}

// Render writes one mapping per contact, keys in column order.
func Render(ctx context.Context, w io.Writer, records []vcard.Contact, opts registry.Options) error {
	headers := columns.Order(columns.Labels(records), opts.Reorder)
	docs := document.Build(records, headers)
	ctxlog.FromContext(ctx).Debug("Rendering YAML.", "objects", len(docs))

	root := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range docs {
		root.Content = append(root.Content, toNode(d))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}

func toNode(v any) *yaml.Node {
	switch v := v.(type) {
	case *document.Object:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range v.Entries() {
			n.Content = append(n.Content, scalar(e.Key), toNode(e.Value))
		}
		return n
	case []string:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, s := range v {
			n.Content = append(n.Content, scalar(s))
		}
		return n
	case string:
		return scalar(v)
	default:
		return scalar(fmt.Sprint(v))
	}
}

func scalar(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		n.Style = yaml.LiteralStyle
	}
	return n
}
