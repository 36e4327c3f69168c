package fsutil

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	stampLayout    = "20060102T150405"
	stampLayoutUTC = "20060102T150405Z"
)

// strippedExtensions are removed from a user supplied output base so that
// "out.csv" and "out" name the same set of files.
var strippedExtensions = []string{".csv", ".json", ".yaml"}

// Naming derives output file names from a base path.
type Naming struct {
	Prefix bool // put the stamp before the file name
	Suffix bool // put the stamp after the file name
	UTC    bool
	Now    time.Time
}

// Stamp formats the naming time as YYYYMMDDTHHMMSS, in UTC with a trailing Z
// when UTC is set.
func (n Naming) Stamp() string {
	if n.UTC {
		return n.Now.UTC().Format(stampLayoutUTC)
	}
	return n.Now.Local().Format(stampLayout)
}

// Base picks the output base: the explicit output argument if given,
// otherwise the input path. A trailing output-format extension is removed.
func Base(input, output string) string {
	base := output
	if base == "" {
		base = input
	}
	for _, ext := range strippedExtensions {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

// Path builds the file name for one output format. Stamps are applied to the
// file name only; the directory part is left untouched.
func (n Naming) Path(base, extension string) string {
	dir, file := filepath.Split(base)
	if n.Prefix || n.Suffix {
		stamp := n.Stamp()
		if n.Prefix {
			file = stamp + "-" + file
		}
		if n.Suffix {
			file = file + "-" + stamp
		}
	}
	return dir + file + "." + extension
}
