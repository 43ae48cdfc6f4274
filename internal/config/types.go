// Package config defines configuration structures for secaudit.
package config

import (
	"errors"
	"fmt"
)

// Catalog represents the complete tool catalog file.
type Catalog struct {
	Tools []ToolDefinition `yaml:"tools"`
}

// ToolDefinition describes one modification tool and the OS versions it runs on.
type ToolDefinition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Website     string `yaml:"website"`

	// Requirement is the human-readable version window, e.g. "iOS 14.0-14.3".
	Requirement string `yaml:"requirement"`
	// Supported is the reason shown when the device matches.
	Supported string `yaml:"supported"`

	SupportedVersions []string `yaml:"supported_versions"`
	SupportedDevices  []string `yaml:"supported_devices"`
	Features          []string `yaml:"features"`

	// Versions holds the rules; the tool is compatible if any rule matches.
	Versions []VersionRule `yaml:"versions"`
}

// VersionRule is a window over (major, minor). Unset bounds are open.
// MaxMinor applies to every major in the window.
type VersionRule struct {
	MinMajor *int `yaml:"min_major,omitempty"`
	MaxMajor *int `yaml:"max_major,omitempty"`
	MaxMinor *int `yaml:"max_minor,omitempty"`
}

// Matches reports whether major.minor falls inside the rule.
func (r VersionRule) Matches(major, minor int) bool {
	if r.MinMajor != nil && major < *r.MinMajor {
		return false
	}
	if r.MaxMajor != nil && major > *r.MaxMajor {
		return false
	}
	if r.MaxMinor != nil && minor > *r.MaxMinor {
		return false
	}
	return true
}

// Compatible reports whether any of the tool's rules matches major.minor.
func (td ToolDefinition) Compatible(major, minor int) bool {
	for _, r := range td.Versions {
		if r.Matches(major, minor) {
			return true
		}
	}
	return false
}

// Validate checks the catalog for missing ids, duplicates and empty rules.
func (c *Catalog) Validate() error {
	if len(c.Tools) == 0 {
		return errors.New("catalog has no tools")
	}
	seen := make(map[string]bool, len(c.Tools))
	for i, td := range c.Tools {
		if td.ID == "" {
			return fmt.Errorf("tool %d: missing id", i)
		}
		if seen[td.ID] {
			return fmt.Errorf("tool %s: duplicate id", td.ID)
		}
		seen[td.ID] = true
		if td.Name == "" {
			return fmt.Errorf("tool %s: missing name", td.ID)
		}
		if len(td.Versions) == 0 {
			return fmt.Errorf("tool %s: no version rules", td.ID)
		}
		for j, r := range td.Versions {
			if r.MinMajor != nil && r.MaxMajor != nil && *r.MinMajor > *r.MaxMajor {
				return fmt.Errorf("tool %s: rule %d: min_major %d above max_major %d", td.ID, j, *r.MinMajor, *r.MaxMajor)
			}
		}
	}
	return nil
}
