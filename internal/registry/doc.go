// Package registry provides the central "glue" for the output modules.
//
// The Registry maps the format names accepted on the command line and in
// profiles (e.g., "csv") to the compiled Go functions that render the parsed
// record list. Each module under modules/ registers itself once at startup;
// requested formats are validated against the registry before any input is
// parsed, so a typo fails fast instead of after a long parse.
package registry
