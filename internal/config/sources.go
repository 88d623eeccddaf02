package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ministry-jobs-parser/internal/sources"
)

// LoadSourceCatalog loads the ministry catalog from a YAML file. An empty
// path selects the built-in catalog.
func LoadSourceCatalog(filePath string) ([]sources.Entry, error) {
	if filePath == "" {
		return sources.Catalog(), nil
	}

	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("sources file not found: %s: %w", filePath, err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sources file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close sources file: %v\n", closeErr)
		}
	}()

	var entries []sources.Entry
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse sources YAML: %w", err)
	}

	if err := validateSourceCatalog(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func validateSourceCatalog(entries []sources.Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("sources file contains no entries")
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if e.URL == "" {
			return fmt.Errorf("source %q: url is required", e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("source %q: duplicate name", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
