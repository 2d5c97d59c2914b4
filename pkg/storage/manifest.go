package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// varPattern matches {{VAR_NAME}} or {{env:VAR_NAME}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Manifest lists collections to convert in one batch run.
type Manifest struct {
	Collections []Entry `yaml:"collections"`

	// Dir is the directory the manifest was loaded from; relative outputs
	// resolve against it.
	Dir string `yaml:"-"`
}

// Entry is one collection of a manifest.
type Entry struct {
	Name   string `yaml:"name"`             // Label used in logs
	URL    string `yaml:"url"`              // Collection URL, may contain {{env:VAR}}
	Output string `yaml:"output"`           // Output path, or prefix for target "both"
	Target string `yaml:"target,omitempty"` // local, github or both; empty uses the default
}

// LoadManifest reads a YAML manifest, resolves {{env:VAR}} references in
// URLs and turns outputs into absolute paths inside the manifest directory.
func LoadManifest(filePath string) (*Manifest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	m.Dir = filepath.Dir(filePath)

	for i := range m.Collections {
		e := &m.Collections[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("collection #%d", i+1)
		}
		if e.URL == "" {
			return nil, fmt.Errorf("%s: url is required", e.Name)
		}
		if e.Output == "" {
			return nil, fmt.Errorf("%s: output is required", e.Name)
		}

		e.URL = resolveEnvRefs(e.URL)

		out, err := ValidatePathWithinDir(e.Output, m.Dir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		e.Output = out
	}

	return &m, nil
}

// SaveManifest writes m to filePath as YAML.
func SaveManifest(m *Manifest, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	return os.WriteFile(filePath, data, 0644)
}

// resolveEnvRefs resolves {{env:VAR}} references in a string. References to
// unset variables, and plain {{VAR}} placeholders, are kept as they are.
func resolveEnvRefs(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{")
		varName = strings.TrimSpace(varName)

		if strings.HasPrefix(varName, "env:") {
			sysVar := strings.TrimPrefix(varName, "env:")
			if val := os.Getenv(sysVar); val != "" {
				return val
			}
		}
		return match
	})
}
