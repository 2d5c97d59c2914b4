// Package storage persists rendered documents and loads batch manifests.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteError is returned when a rendered document cannot be written.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// WriteDocument writes content to filePath, creating parent directories
// and overwriting any existing file.
func WriteDocument(filePath, content string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: filePath, Cause: fmt.Errorf("failed to create directory: %w", err)}
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return &WriteError{Path: filePath, Cause: err}
	}

	return nil
}

// ReadExisting returns the current content of filePath. exists is false
// when there is no such file.
func ReadExisting(filePath string) (content string, exists bool, err error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read existing file: %w", err)
	}
	return string(data), true, nil
}

// DualPaths derives the per-target file names of a dual-target run:
// "docs.md" becomes "docs_LOCAL.md" and "docs_GITHUB.md".
func DualPaths(outputPath string) (local, github string) {
	return TargetPath(outputPath, "LOCAL"), TargetPath(outputPath, "GITHUB")
}

// TargetPath returns the file name used for one target of a dual-target run.
// suffix is the target's name, e.g. "LOCAL".
func TargetPath(outputPath, suffix string) string {
	return strings.TrimSuffix(outputPath, ".md") + "_" + suffix + ".md"
}
