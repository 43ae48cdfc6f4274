// Package secaudit defines shared data structures for the security audit engine.
package secaudit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity is the penalty level of a failed check. Values are ordered.
type Severity int

// Severity levels, lowest first.
const (
	SeveritySafe Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"safe", "low", "medium", "high", "critical"}

// Display colours for each severity.
var severityColors = [...]string{"#22C55E", "#3B82F6", "#F59E0B", "#F97316", "#EF4444"}

func (s Severity) valid() bool {
	return s >= SeveritySafe && s <= SeverityCritical
}

func (s Severity) String() string {
	if !s.valid() {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// Color returns the hex display colour for the severity.
func (s Severity) Color() string {
	if !s.valid() {
		return severityColors[SeveritySafe]
	}
	return severityColors[s]
}

// ParseSeverity parses the text form of a severity.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return SeveritySafe, fmt.Errorf("unknown severity %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Category groups checks for display. It has no effect on aggregation.
type Category string

// Check categories in execution order.
const (
	CategoryJailbreak   Category = "jailbreak"
	CategorySystem      Category = "system"
	CategoryPermissions Category = "permissions"
	CategoryNetwork     Category = "network"
)

// Categories lists every category in execution order.
var Categories = []Category{CategoryJailbreak, CategorySystem, CategoryPermissions, CategoryNetwork}

// IsValidCategory reports whether name is one of the known categories.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// SecurityCheck is the result of one evaluation. Severity is the penalty if
// Passed is false; a passing check contributes nothing regardless of severity.
type SecurityCheck struct {
	EvaluatedAt    time.Time `json:"evaluated_at"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       Category  `json:"category"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
	Severity       Severity  `json:"severity"`
	Passed         bool      `json:"passed"`
}

// NewCheck creates a check with a fresh id and the current time.
func NewCheck(name string, category Category, description, recommendation string, severity Severity, passed bool) SecurityCheck {
	return SecurityCheck{
		ID:             uuid.NewString(),
		Name:           name,
		Category:       category,
		Description:    description,
		Recommendation: recommendation,
		Severity:       severity,
		Passed:         passed,
		EvaluatedAt:    time.Now(),
	}
}

// ScanResult is the outcome of one full or partial scan.
type ScanResult struct {
	CreatedAt time.Time       `json:"created_at"`
	ID        string          `json:"id"`
	Checks    []SecurityCheck `json:"checks"`
}

// NewScanResult wraps checks, in the order given, into a new result.
func NewScanResult(checks []SecurityCheck) *ScanResult {
	return &ScanResult{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Checks:    checks,
	}
}

// OverallSeverity returns the worst severity among failed checks. Any failure
// is at least low; no failures is safe.
func (r ScanResult) OverallSeverity() Severity {
	worst := SeveritySafe
	for _, c := range r.Checks {
		if c.Passed {
			continue
		}
		sev := c.Severity
		if sev < SeverityLow {
			sev = SeverityLow
		}
		if sev > worst {
			worst = sev
		}
	}
	return worst
}

// VulnerabilityCount returns the number of failed checks.
func (r ScanResult) VulnerabilityCount() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

// ChecksByCategory returns the checks of one category, preserving order.
func (r ScanResult) ChecksByCategory(category Category) []SecurityCheck {
	var out []SecurityCheck
	for _, c := range r.Checks {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// MarshalJSON includes the derived fields alongside the stored ones. Values
// and pointers encode the same way.
func (r ScanResult) MarshalJSON() ([]byte, error) {
	type plain ScanResult
	return json.Marshal(struct {
		plain

		OverallSeverity    Severity `json:"overall_severity"`
		VulnerabilityCount int      `json:"vulnerability_count"`
	}{
		plain:              plain(r),
		OverallSeverity:    r.OverallSeverity(),
		VulnerabilityCount: r.VulnerabilityCount(),
	})
}

// DeviceInfo is a single read of the device's model and OS version.
type DeviceInfo struct {
	Model        string `json:"model"`
	OSVersion    string `json:"os_version"`
	MajorVersion int    `json:"major_version"`
	MinorVersion int    `json:"minor_version"`
}

// JailbreakTool describes a modification tool and whether it fits the
// device it was last evaluated against.
type JailbreakTool struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Website             string   `json:"website"`
	CompatibilityReason string   `json:"compatibility_reason"`
	SupportedVersions   []string `json:"supported_versions"`
	SupportedDevices    []string `json:"supported_devices"`
	Features            []string `json:"features"`
	IsCompatible        bool     `json:"is_compatible"`
}
