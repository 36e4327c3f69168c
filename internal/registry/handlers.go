package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

// Options are the render-time toggles shared by every renderer.
type Options struct {
	Reorder bool
}

// RenderFunc writes records to w.
type RenderFunc func(ctx context.Context, w io.Writer, records []vcard.Contact, opts Options) error

// RegisteredRenderer holds the compiled Go parts of an output format.
type RegisteredRenderer struct {
	Name string
	// Extension is the file extension without the dot. Renderers with an
	// empty extension write to the console instead of a file.
	Extension   string
	Description string
	Fn          RenderFunc
}

// ToFile reports whether the renderer produces an output file.
func (h *RegisteredRenderer) ToFile() bool { return h.Extension != "" }

// RegisterRenderer registers a Go function for an output format.
func (r *Registry) RegisterRenderer(name string, handler *RegisteredRenderer) {
	if _, exists := r.renderers[name]; exists {
		panic(fmt.Sprintf("renderer with name '%s' already registered", name))
	}
	if handler.Fn == nil {
		panic(fmt.Sprintf("renderer '%s' has no render function", name))
	}
	slog.Debug("Registering renderer.", "name", name, "extension", handler.Extension)
	handler.Name = name
	r.renderers[name] = handler
}
