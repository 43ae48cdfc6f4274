// Package catalog holds the modification tool catalog and the generic
// routine that matches it against a device.
package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"secaudit/internal/config"
	"secaudit/internal/secaudit"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Catalog is a validated, ordered list of tool definitions.
type Catalog struct {
	tools []config.ToolDefinition
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var cfg config.Catalog
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &Catalog{tools: cfg.Tools}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(builtinCatalog)
	if err != nil {
		// The embedded file is covered by tests.
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Load returns the catalog stored at path on fsys, or the built-in catalog
// when path is empty. A file replaces the built-in catalog entirely.
func Load(fsys afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Loaded %d tools from catalog file %s", len(c.tools), path)
	return c, nil
}

// Len returns the number of tools in the catalog.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Evaluate annotates every tool, in declaration order, with its
// compatibility against device.
func (c *Catalog) Evaluate(device secaudit.DeviceInfo) []secaudit.JailbreakTool {
	tools := make([]secaudit.JailbreakTool, 0, len(c.tools))
	for _, td := range c.tools {
		tools = append(tools, evaluateTool(td, device))
	}
	return tools
}

func evaluateTool(td config.ToolDefinition, device secaudit.DeviceInfo) secaudit.JailbreakTool {
	compatible := td.Compatible(device.MajorVersion, device.MinorVersion)

	// Incompatible reasons embed the raw version string, not the parsed one
	reason := td.Supported
	if !compatible {
		reason = fmt.Sprintf("iOS version %s not supported. %s requires %s", device.OSVersion, td.Name, td.Requirement)
	} else if reason == "" {
		reason = "Device supports " + td.Name
	}

	return secaudit.JailbreakTool{
		ID:                  td.ID,
		Name:                td.Name,
		Description:         td.Description,
		Website:             td.Website,
		// Copy slices so callers can't mutate the catalog
		SupportedVersions:   append([]string(nil), td.SupportedVersions...),
		SupportedDevices:    append([]string(nil), td.SupportedDevices...),
		Features:            append([]string(nil), td.Features...),
		IsCompatible:        compatible,
		CompatibilityReason: reason,
	}
}

// Checkm8Finding is reported for devices with an unpatchable bootrom exploit.
const Checkm8Finding = "Checkm8 (Bootrom) - A7-A11 devices vulnerable"

// checkm8Devices are the A7-A11 identifiers affected by checkm8.
var checkm8Devices = []string{
	"iPhone5s", "iPhone6", "iPhone6Plus", "iPhone6s", "iPhone6sPlus",
	"iPhone7", "iPhone7Plus", "iPhone8", "iPhone8Plus", "iPhoneX",
}

// BootromVulnerabilities returns the bootrom findings for a hardware
// identifier. Matching is plain substring containment.
func BootromVulnerabilities(identifier string) []string {
	var findings []string
	for _, token := range checkm8Devices {
		if strings.Contains(identifier, token) {
			findings = append(findings, Checkm8Finding)
			break
		}
	}
	return findings
}
