package analyzer

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"secaudit/internal/secaudit"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	scratchFilePerm = 0o600
	scratchPrefix   = "sandbox_test_"
	// Retry configuration for scratch file removal.
	removeAttempts = 3
	removeDelay    = 10 * time.Millisecond
	removeMaxDelay = 100 * time.Millisecond
)

// indicatorPaths are install paths of modification tools and binaries that
// are absent on a stock device.
var indicatorPaths = []string{
	"/Applications/Cydia.app",
	"/Applications/Sileo.app",
	"/Applications/Zebra.app",
	"/Library/MobileSubstrate/MobileSubstrate.dylib",
	"/usr/sbin/sshd",
	"/bin/bash",
	"/usr/bin/ssh",
	"/etc/ssh/sshd_config",
}

// knownApps are schemes of modification-tool package managers and
// sideloaded apps.
var knownApps = []string{
	"com.saurik.Cydia",
	"com.sileo.Sileo",
	"org.zebra.Zebra",
	"com.getdelta.Delta",
}

// JailbreakChecks returns the indicator-file, known-app and sandbox checks.
func (c *Checker) JailbreakChecks() []secaudit.SecurityCheck {
	return []secaudit.SecurityCheck{
		secaudit.NewCheck(
			"Jailbreak Detection",
			secaudit.CategoryJailbreak,
			"Checks for common jailbreak indicators and modified system files",
			"If jailbroken, consider restoring iOS from a backup or using Recovery Mode",
			secaudit.SeverityCritical,
			len(c.presentIndicators()) == 0,
		),
		secaudit.NewCheck(
			"Suspicious Apps",
			secaudit.CategoryJailbreak,
			"Scans for known jailbreak and piracy apps",
			"Remove any suspicious or unauthorized applications",
			secaudit.SeverityHigh,
			!c.hasKnownApps(),
		),
		secaudit.NewCheck(
			"Sandbox Integrity",
			secaudit.CategoryJailbreak,
			"Verifies app sandbox is not compromised",
			"Ensure device is running latest iOS version",
			secaudit.SeverityHigh,
			c.sandboxIntact(),
		),
	}
}

// presentIndicators returns the indicator paths that exist. Stat errors
// count as absent.
func (c *Checker) presentIndicators() []string {
	var found []string
	for _, p := range indicatorPaths {
		exists, err := afero.Exists(c.fs, p)
		if err != nil && c.debug {
			log.Printf("[DEBUG] Could not stat %s: %v", p, err)
		}
		if exists {
			found = append(found, p)
		}
	}
	if len(found) > 0 {
		log.Printf("[WARN] Jailbreak indicators present: %v", found)
	}
	return found
}

func (c *Checker) hasKnownApps() bool {
	for _, app := range knownApps {
		if c.resolver.CanOpen(app) {
			log.Printf("[WARN] Known jailbreak app resolvable: %s", app)
			return true
		}
	}
	return false
}

// sandboxIntact tries to write a uniquely named file under the scratch
// directory. A successful write means the sandbox boundary did not hold, so
// the result is inverted: write success is false, any failure is true.
// The file is removed on every path that created it.
func (c *Checker) sandboxIntact() bool {
	path := filepath.Join(c.scratchDir, scratchPrefix+uuid.NewString())

	// O_EXCL so a concurrent scan never reuses our file
	f, err := c.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, scratchFilePerm)
	if err != nil {
		if c.debug {
			log.Printf("[DEBUG] Sandbox write refused for %s: %v", path, err)
		}
		return true
	}
	defer c.removeScratch(path)

	// A partial write still counts as refused
	_, writeErr := f.WriteString("test")
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		if c.debug {
			log.Printf("[DEBUG] Sandbox write to %s failed: %v", path, errors.Join(writeErr, closeErr))
		}
		return true
	}

	log.Printf("[WARN] Sandbox boundary not enforced: wrote %s", path)
	return false
}

func (c *Checker) removeScratch(path string) {
	err := retry.Do(func() error {
		err := c.fs.Remove(path)
		// Already gone is fine
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}, retry.Attempts(removeAttempts), retry.Delay(removeDelay), retry.MaxDelay(removeMaxDelay))
	if err != nil {
		log.Printf("[ERROR] Failed to remove scratch file %s after %d attempts: %v", path, removeAttempts, err)
	}
}
