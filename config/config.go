// Package config loads the optional per-site settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the source directory.
const FileName = "site.yaml"

// Site holds the settings used by the page shell and the feed.
type Site struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL, used for feed links
	Description string `yaml:"description"` // Site description for the feed
	Author      string `yaml:"author"`      // Author name for the page footer
}

// Load reads site.yaml from the source directory. A missing file is not
// an error, defaults apply either way; a file that exists but does not
// parse is fatal.
func Load(dir string) (Site, error) {
	var s Site
	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return s, fmt.Errorf("failed to read %q: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	s.setDefaults()
	return s, nil
}

func (s *Site) setDefaults() {
	if s.Name == "" {
		s.Name = "Blog"
	}
	if s.URL == "" {
		s.URL = "http://localhost/"
	}
}
