package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/fsutil"
	"github.com/specialistvlad/vcfconvert/internal/inspect"
)

// stats prints a structural summary of every .vcf file under the input path.
func (a *App) stats(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(a.config.InputPath, ".vcf")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .vcf files under '%s'", ErrInputNotFound, a.config.InputPath)
	}
	logger.Debug("Summarizing files.", "count", len(files))

	var errs []error
	for i, path := range files {
		s, err := inspect.Summarize(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !s.Consistent() {
			logger.Warn("Card count differs from END:VCARD markers.", "path", path, "cards", s.Cards, "markers", s.Markers)
		}
		if i > 0 {
			fmt.Fprintln(a.outW)
		}
		if err := s.Write(a.outW); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
