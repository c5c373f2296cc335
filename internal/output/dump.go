package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fpl-data-collector/internal/domain"
)

// DumpBootstrap writes the normalized bootstrap payload as indented JSON,
// atomically, and returns the path written.
func DumpBootstrap(basePath string, bootstrap domain.Bootstrap) (string, error) {
	if basePath == "" {
		basePath = "."
	}
	data, err := json.MarshalIndent(bootstrap, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return "", &IOError{Path: basePath, Err: err}
	}
	target := filepath.Clean(DumpFilePath(basePath))
	if err := WriteFileAtomic(target, data); err != nil {
		return "", err
	}
	return target, nil
}
