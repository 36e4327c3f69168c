package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/fsutil"
	"github.com/specialistvlad/vcfconvert/internal/progress"
	"github.com/specialistvlad/vcfconvert/internal/registry"
	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

const outputPerm = 0o644

// target is one requested renderer and, for file renderers, its path.
type target struct {
	renderer *registry.RegisteredRenderer
	path     string
}

// convert parses the input file and renders it in every requested format.
func (a *App) convert(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	cfg := a.config

	if !fsutil.IsFile(cfg.InputPath) {
		return fmt.Errorf("%w: '%s'", ErrInputNotFound, cfg.InputPath)
	}
	if !fsutil.HasExtension(cfg.InputPath, ".vcf") {
		return fmt.Errorf("%w: '%s'", ErrInputExtension, cfg.InputPath)
	}

	targets, err := a.targets()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	logger.Info("Input file loaded.", "path", cfg.InputPath, "size", humanize.Bytes(uint64(len(data))))

	parser := vcard.NewParser(vcard.Options{
		Preferred:      cfg.Preferred,
		FormatPhone:    cfg.FormatPhone,
		FormatAddress:  cfg.FormatAddress,
		CollectUnknown: cfg.Unknown,
	})
	reporter := progress.New(a.outW, a.errW, progress.Options{Bar: cfg.Progress, Unknown: cfg.Unknown})
	records := parser.Parse(ctx, string(data), reporter)
	reporter.Finish()
	logger.Info("Parsing complete.", "contacts", humanize.Comma(int64(len(records))))

	if cfg.Unknown {
		return ErrUnknownReport
	}
	if len(records) == 0 {
		logger.Warn("No vCard entries found, nothing to write.", "path", cfg.InputPath)
		return nil
	}

	opts := registry.Options{Reorder: cfg.Reorder}
	var errs []error
	for _, t := range targets {
		if err := a.render(ctx, t, records, opts); err != nil {
			logger.Error("Renderer failed.", "format", t.renderer.Name, "path", t.path, "error", err)
			errs = append(errs, fmt.Errorf("%s output: %w", t.renderer.Name, err))
		}
	}
	return errors.Join(errs...)
}

// targets resolves every requested format to a renderer and checks that no
// file target already exists unless overwriting is allowed.
func (a *App) targets() ([]target, error) {
	cfg := a.config
	naming := fsutil.Naming{
		Prefix: cfg.StampPrefix,
		Suffix: cfg.StampSuffix,
		UTC:    cfg.UTC,
		Now:    a.now(),
	}
	base := fsutil.Base(cfg.InputPath, cfg.OutputPath)

	var (
		targets []target
		errs    []error
	)
	for _, name := range cfg.Formats {
		h, ok := a.registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown output format '%s'", name)
		}
		t := target{renderer: h}
		if h.ToFile() {
			t.path = naming.Path(base, h.Extension)
			if !cfg.Overwrite && fsutil.Exists(t.path) {
				errs = append(errs, fmt.Errorf("%w: '%s'", ErrOutputExists, t.path))
			}
		}
		targets = append(targets, t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return targets, nil
}

func (a *App) render(ctx context.Context, t target, records []vcard.Contact, opts registry.Options) error {
	if !t.renderer.ToFile() {
		return t.renderer.Fn(ctx, a.outW, records, opts)
	}
	err := fsutil.WriteAtomic(t.path, outputPerm, func(w io.Writer) error {
		return t.renderer.Fn(ctx, w, records, opts)
	})
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Output written.", "format", t.renderer.Name, "path", t.path)
	return nil
}
