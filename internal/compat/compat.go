// Package compat matches the tool catalog against the current device.
package compat

import (
	"log"
	"secaudit/internal/catalog"
	"secaudit/internal/secaudit"
	"strings"
)

// Inspector reads the current device.
type Inspector interface {
	Inspect() secaudit.DeviceInfo
	HardwareIdentifier() string
}

// Checker evaluates the catalog against whatever device the inspector
// reports at call time. Nothing is cached between calls.
type Checker struct {
	inspector Inspector
	catalog   *catalog.Catalog
}

// New creates a Checker. A nil catalog selects the built-in one.
func New(inspector Inspector, cat *catalog.Catalog) *Checker {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Checker{inspector: inspector, catalog: cat}
}

// DeviceInfo returns a fresh read of the device.
func (c *Checker) DeviceInfo() secaudit.DeviceInfo {
	return c.inspector.Inspect()
}

// CheckCompatibility returns every catalog tool, in catalog order, annotated
// for the current device.
func (c *Checker) CheckCompatibility() []secaudit.JailbreakTool {
	device := c.inspector.Inspect()
	tools := c.catalog.Evaluate(device)

	compatible := 0
	for _, t := range tools {
		if t.IsCompatible {
			compatible++
		}
	}
	log.Printf("[INFO] %d of %d tools compatible with %s %s", compatible, len(tools), device.Model, device.OSVersion)
	return tools
}

// CheckBootromVulnerabilities returns bootrom findings for the device. Only
// iPhone hardware is considered.
func (c *Checker) CheckBootromVulnerabilities() []string {
	if !strings.Contains(c.inspector.Inspect().Model, "iPhone") {
		return nil
	}
	return catalog.BootromVulnerabilities(c.inspector.HardwareIdentifier())
}
