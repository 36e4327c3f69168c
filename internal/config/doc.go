// Package config defines the format-agnostic profile model for the
// application, along with the Loader interface for reading it from a file.
//
// Every field of a Profile is optional. A nil field means "not set here", so
// a profile only overrides the settings it actually names. Concrete
// implementations of the Loader, such as for HCL, are provided in separate
// packages.
package config
