// Package analyzer runs the security checks against a device and aggregates
// them into a scan result.
package analyzer

import (
	"log"
	"secaudit/internal/config"
	"secaudit/internal/secaudit"
	"time"

	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/afero"
)

// Inspector provides the device's OS version.
type Inspector interface {
	Inspect() secaudit.DeviceInfo
}

// SchemeResolver reports whether the OS can open a URL scheme or bundle id.
// Implementations that cannot tell must return false.
type SchemeResolver interface {
	CanOpen(scheme string) bool
}

// OwnerAuthProbe reports whether device-owner authentication (passcode or
// biometrics) can be evaluated on the device.
type OwnerAuthProbe interface {
	CanEvaluateOwnerAuthentication() bool
}

// Checker runs the security checks. It holds no per-scan state and is safe
// for concurrent use; overlapping scans produce independent results.
type Checker struct {
	inspector  Inspector
	fs         afero.Fs
	resolver   SchemeResolver
	auth       OwnerAuthProbe
	scratchDir string
	debug      bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithFs sets the filesystem used for path probes and the sandbox write.
func WithFs(fs afero.Fs) Option {
	return func(c *Checker) { c.fs = fs }
}

// WithResolver sets the URL scheme resolver.
func WithResolver(r SchemeResolver) Option {
	return func(c *Checker) { c.resolver = r }
}

// WithOwnerAuth sets the owner-authentication probe.
func WithOwnerAuth(p OwnerAuthProbe) Option {
	return func(c *Checker) { c.auth = p }
}

// WithScratchDir sets the restricted directory used by the sandbox check.
func WithScratchDir(dir string) Option {
	return func(c *Checker) { c.scratchDir = dir }
}

// WithDebug enables debug logging.
func WithDebug(debug bool) Option {
	return func(c *Checker) { c.debug = debug }
}

// New creates a Checker. Without options it probes the host filesystem,
// resolves apps under the default application directories, and reports
// owner authentication as unavailable.
func New(inspector Inspector, opts ...Option) *Checker {
	c := &Checker{
		inspector:  inspector,
		scratchDir: config.DefaultScratchDir,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.resolver == nil {
		c.resolver = NewAppDirResolver(c.fs, config.DefaultAppDirs)
	}
	if c.auth == nil {
		c.auth = StaticOwnerAuth(false)
	}
	return c
}

type group struct {
	category secaudit.Category
	run      func() []secaudit.SecurityCheck
}

func (c *Checker) groups() []group {
	return []group{
		{secaudit.CategoryJailbreak, c.JailbreakChecks},
		{secaudit.CategorySystem, c.SystemChecks},
		{secaudit.CategoryPermissions, c.PermissionChecks},
		{secaudit.CategoryNetwork, c.NetworkChecks},
	}
}

// PerformFullScan runs every check group and returns their checks in group
// order: jailbreak, system, permissions, network. Groups run concurrently.
func (c *Checker) PerformFullScan() *secaudit.ScanResult {
	start := time.Now()

	outputs := iter.Map(c.groups(), func(g *group) []secaudit.SecurityCheck {
		groupStart := time.Now()
		checks := g.run()
		if c.debug {
			log.Printf("[DEBUG] Group %s produced %d checks in %v", g.category, len(checks), time.Since(groupStart))
		}
		return checks
	})

	// Flatten in group order; iter.Map keeps input order
	var checks []secaudit.SecurityCheck
	for _, out := range outputs {
		checks = append(checks, out...)
	}

	result := secaudit.NewScanResult(checks)
	log.Printf("[INFO] Completed %d checks (%d failed, overall %s) in %v",
		len(result.Checks), result.VulnerabilityCount(), result.OverallSeverity(), time.Since(start))
	return result
}

// ScanCategory runs a single check group. It returns nil for an unknown
// category.
func (c *Checker) ScanCategory(category secaudit.Category) *secaudit.ScanResult {
	for _, g := range c.groups() {
		if g.category == category {
			return secaudit.NewScanResult(g.run())
		}
	}
	return nil
}
