package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/vcfconvert/internal/config"
	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// environ returns the variables exposed as env.<NAME>.
	environ func() []string
}

// NewLoader creates a new HCL profile loader backed by the process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load parses the profile at path and translates it into the agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL profile loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root profileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	profile, err := translate(&root)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	logger.Debug("HCL profile loading complete.", "path", path)
	return profile, nil
}

// evalContext exposes the environment as an object named env.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
