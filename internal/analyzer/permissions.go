package analyzer

import "secaudit/internal/secaudit"

// PermissionChecks returns the passcode, auto-lock and background refresh
// checks. Auto-lock and background refresh cannot be read by an app and
// always pass.
func (c *Checker) PermissionChecks() []secaudit.SecurityCheck {
	return []secaudit.SecurityCheck{
		secaudit.NewCheck(
			"Passcode/Biometric",
			secaudit.CategoryPermissions,
			"Verifies device has passcode or biometric authentication enabled",
			"Enable Face ID, Touch ID, or a strong passcode in Settings",
			secaudit.SeverityCritical,
			c.auth.CanEvaluateOwnerAuthentication(),
		),
		secaudit.NewCheck(
			"Auto-Lock Enabled",
			secaudit.CategoryPermissions,
			"Checks if auto-lock is configured",
			"Set auto-lock to 1-5 minutes in Settings > Display & Brightness",
			secaudit.SeverityMedium,
			true,
		),
		secaudit.NewCheck(
			"Background App Refresh",
			secaudit.CategoryPermissions,
			"Reviews background app refresh settings",
			"Disable background refresh for untrusted apps",
			secaudit.SeverityLow,
			true,
		),
	}
}
