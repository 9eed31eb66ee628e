package fsx

import "context"

// FileReader reads files from a storage backend
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter writes files to a storage backend
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
}

// FileSystem is the full storage surface used by the ingestion tooling
type FileSystem interface {
	FileReader
	FileWriter

	// List returns the paths under prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the files at the given paths
	Delete(ctx context.Context, paths ...string) error

	// PublicURL returns the externally reachable URL for a stored file
	PublicURL(path string) string
}
