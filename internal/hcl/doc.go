// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. Profiles are evaluated with an "env" object so values such as
// output paths can reference environment variables.
package hcl
