package app

import "errors"

var (
	// ErrNoOutputMode is returned when no output format and no unknown-field
	// report was requested.
	ErrNoOutputMode = errors.New("at least one of --csv, --json, --yaml, --display, or --unknown must be provided")
	// ErrInputNotFound is returned when the input path is not a readable file.
	ErrInputNotFound = errors.New("input file not found")
	// ErrInputExtension is returned when the input does not end in .vcf.
	ErrInputExtension = errors.New("input file must have a .vcf extension")
	// ErrOutputExists is returned for every target that already exists while
	// overwriting is off.
	ErrOutputExists = errors.New("output file already exists, use --overwrite to overwrite it")
	// ErrUnknownReport ends every unknown-field report run so scripts can tell
	// it apart from a conversion.
	ErrUnknownReport = errors.New("unknown-field report complete, no files written")
)
