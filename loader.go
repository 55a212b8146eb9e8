package finance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultStorageFile is the registry file used when the caller does not
// configure another path.
const DefaultStorageFile = "profiles.json"

// LoadRegistry reads the registry stored at path. A missing file is a fresh
// start: it yields an empty registry, not an error.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open registry file %q: %w", path, err)
	}
	defer f.Close()

	reg, err := DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode registry file %q: %w", path, err)
	}
	return reg, nil
}

// SaveRegistry writes the registry to path, replacing any previous content.
// The write is not atomic: a crash mid-write can leave a truncated file.
func SaveRegistry(path string, reg *Registry) error {
	// Ensure the directory for the registry file exists.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for registry %q: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening registry file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeRegistry(f, reg)
}
