// Package fileio holds the flat-file JSON plumbing shared by the
// pipeline stages. All persistence in this system is plain files.
package fileio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON serializes v with two-space indentation and writes it to path,
// creating parent directories as needed and overwriting any prior file.
func SaveJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dir for %s: %w", filepath.Base(path), err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadJSON reads the JSON file at path into out. A missing file surfaces
// as the underlying not-found error, fatal for the calling stage.
func LoadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
