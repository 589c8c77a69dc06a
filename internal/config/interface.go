package config

import "context"

// Loader is the interface for a format-specific spec file loader.
type Loader interface {
	// Extensions lists the file extensions the loader reads, dot included.
	Extensions() []string
	// Load reads the given files and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
