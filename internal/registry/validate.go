package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
)

// Validate checks that every requested format has a registered renderer.
// Duplicates are reported once.
func (r *Registry) Validate(ctx context.Context, formats []string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)
	seen := make(map[string]struct{}, len(formats))

	for _, name := range formats {
		if _, dup := seen[name]; dup {
			logger.Warn("Output format requested more than once.", "format", name)
			continue
		}
		seen[name] = struct{}{}
		if _, ok := r.renderers[name]; !ok {
			errs = append(errs, fmt.Sprintf("unknown output format '%s'", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed (known: %s):\n- %s",
			strings.Join(r.Names(), ", "), strings.Join(errs, "\n- "))
	}
	return nil
}
