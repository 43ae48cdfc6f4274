// Package viewmodels provides display summaries of scan and compatibility results.
package viewmodels

import (
	"secaudit/internal/secaudit"
	"strconv"
)

// CheckRow represents a check in the scan view.
type CheckRow struct {
	Name           string
	Description    string
	Recommendation string
	Severity       string
	Color          string
	Emoji          string
	Passed         bool
}

// CategoryGroup is one category's checks in execution order.
type CategoryGroup struct {
	Category secaudit.Category
	Rows     []CheckRow
}

// ScanView represents the scan summary with grouped checks.
type ScanView struct {
	Result             *secaudit.ScanResult
	Groups             []CategoryGroup
	OverallSeverity    string
	OverallColor       string
	Status             string // "Device Secure" or "Issues Found"
	IssueSummary       string // empty when nothing failed
	PassCount          int
	VulnerabilityCount int
}

// BuildScanView creates the summary view for a scan result.
func BuildScanView(result *secaudit.ScanResult) *ScanView {
	overall := result.OverallSeverity()
	view := &ScanView{
		Result:             result,
		OverallSeverity:    overall.String(),
		OverallColor:       overall.Color(),
		VulnerabilityCount: result.VulnerabilityCount(),
	}
	view.PassCount = len(result.Checks) - view.VulnerabilityCount

	for _, cat := range secaudit.Categories {
		checks := result.ChecksByCategory(cat)
		if len(checks) == 0 {
			continue
		}
		group := CategoryGroup{Category: cat}
		for _, c := range checks {
			group.Rows = append(group.Rows, buildRow(c))
		}
		view.Groups = append(view.Groups, group)
	}

	// Headline follows the overall verdict; the count line only shows failures.
	view.Status = "Issues Found"
	if overall == secaudit.SeveritySafe {
		view.Status = "Device Secure"
	}
	view.IssueSummary = issueSummary(view.VulnerabilityCount)
	return view
}

func buildRow(c secaudit.SecurityCheck) CheckRow {
	row := CheckRow{
		Name:           c.Name,
		Description:    c.Description,
		Recommendation: c.Recommendation,
		Severity:       c.Severity.String(),
		Passed:         c.Passed,
	}
	if c.Passed {
		row.Emoji = "✅"
		row.Color = secaudit.SeveritySafe.Color()
	} else {
		row.Emoji = "❌"
		row.Color = c.Severity.Color()
	}
	return row
}

// issueSummary returns "1 issue found", "N issues found", or "" for zero.
func issueSummary(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "1 issue found"
	default:
		return strconv.Itoa(n) + " issues found"
	}
}

// ToolRow represents a tool in the compatibility view.
type ToolRow struct {
	ID          string
	Name        string
	Description string
	Website     string
	Reason      string
	Features    []string
	Emoji       string
	Compatible  bool
}

// CompatView represents the compatibility page with device header.
type CompatView struct {
	Device          secaudit.DeviceInfo
	Tools           []ToolRow
	Bootrom         []string
	CompatibleCount int
	Total           int
}

// BuildCompatView creates the compatibility view model. Tool order is kept.
func BuildCompatView(device secaudit.DeviceInfo, tools []secaudit.JailbreakTool, bootrom []string) *CompatView {
	view := &CompatView{
		Device:  device,
		Bootrom: bootrom,
		Total:   len(tools),
	}
	for _, t := range tools {
		emoji := "➖"
		if t.IsCompatible {
			emoji = "✅"
			view.CompatibleCount++
		}
		view.Tools = append(view.Tools, ToolRow{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Website:     t.Website,
			Reason:      t.CompatibilityReason,
			Features:    t.Features,
			Emoji:       emoji,
			Compatible:  t.IsCompatible,
		})
	}
	return view
}
