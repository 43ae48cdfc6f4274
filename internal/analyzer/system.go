package analyzer

import "secaudit/internal/secaudit"

const (
	// OS majors below this are flagged high rather than low.
	currentMajor = 16
	// Oldest OS major that still passes the currency check.
	minimumMajor = 15
)

// SystemChecks returns the OS currency and system integrity checks.
func (c *Checker) SystemChecks() []secaudit.SecurityCheck {
	major := c.inspector.Inspect().MajorVersion

	severity := secaudit.SeverityLow
	if major < currentMajor {
		severity = secaudit.SeverityHigh
	}

	return []secaudit.SecurityCheck{
		secaudit.NewCheck(
			"iOS Version",
			secaudit.CategorySystem,
			"Checks if device is running current iOS version",
			"Update to the latest iOS version available",
			severity,
			major >= minimumMajor,
		),
		// Not independently verifiable; tampering is caught by the jailbreak group.
		secaudit.NewCheck(
			"System Integrity Protection",
			secaudit.CategorySystem,
			"Verifies core system files are not modified",
			"Restore device if system files are corrupted",
			secaudit.SeverityCritical,
			true,
		),
	}
}
