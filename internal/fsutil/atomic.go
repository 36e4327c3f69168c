package fsutil

import (
	"fmt"
	"io"
	"os"

	"github.com/facebookgo/atomicfile"
)

// WriteAtomic creates path through a temporary file in the same directory and
// renames it into place only when fn succeeds. On failure the temporary file is
// removed and any existing file at path is left as it was.
func WriteAtomic(path string, perm os.FileMode, fn func(w io.Writer) error) error {
	f, err := atomicfile.New(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		_ = f.Abort()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", path, err)
	}
	return nil
}
