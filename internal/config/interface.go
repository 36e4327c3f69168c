package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads the profile at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Profile, error)
}
