package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveTempFile writes data to a scoped temporary file inside dir, creating
// dir if needed. The caller is responsible for removing the returned path.
func SaveTempFile(dir string, data []byte, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	path := filepath.Join(dir, SanitizeFilename(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return path, nil
}

// SanitizeFilename replaces characters that are unsafe in file names.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
