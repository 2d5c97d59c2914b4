package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackcoderx/pm2md/pkg/storage"
)

// ManifestFileName is the sample batch manifest created by InitializeConfigFolder.
const ManifestFileName = "collections.yaml"

// InitializeConfigFolder creates dir (normally ConfigFolderName) with a
// default config.json and a sample collections.yaml. Existing files are
// left untouched. It reports whether anything was created.
func InitializeConfigFolder(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s folder: %w", dir, err)
	}

	created := false

	configPath := filepath.Join(dir, "config.json")
	if !fileExists(configPath) {
		if err := createDefaultConfig(configPath); err != nil {
			return created, err
		}
		created = true
	}

	manifestPath := filepath.Join(dir, ManifestFileName)
	if !fileExists(manifestPath) {
		if err := createSampleManifest(manifestPath); err != nil {
			return created, err
		}
		created = true
	}

	return created, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// createDefaultConfig writes DefaultConfig as JSON.
func createDefaultConfig(path string) error {
	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// createSampleManifest writes a one-entry manifest to start from.
func createSampleManifest(path string) error {
	m := &storage.Manifest{
		Collections: []storage.Entry{
			{
				Name:   "example",
				URL:    "https://api.getpostman.com/collections/<collection-uid>?apikey={{env:POSTMAN_API_KEY}}",
				Output: "docs/api.md",
				Target: ModeBoth,
			},
		},
	}

	if err := storage.SaveManifest(m, path); err != nil {
		return fmt.Errorf("failed to write sample manifest: %w", err)
	}
	return nil
}
