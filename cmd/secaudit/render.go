package main

import (
	"encoding/json"
	"fmt"
	"io"
	"secaudit/internal/secaudit"
	"secaudit/internal/viewmodels"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func colored(hex, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func renderScan(w io.Writer, view *viewmodels.ScanView) {
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(view.OverallColor)).
		Padding(0, 1).
		Render(strings.ToUpper(view.OverallSeverity))

	fmt.Fprintf(w, "%s %s %s\n", titleStyle.Render("Overall Status:"), view.Status, badge)
	if view.IssueSummary != "" {
		fmt.Fprintln(w, view.IssueSummary)
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d passed (scan %s at %s)",
		view.PassCount, view.Result.ID, view.Result.CreatedAt.Format("15:04:05"))))

	for _, g := range view.Groups {
		fmt.Fprintf(w, "\n%s\n", headingStyle.Render(strings.ToUpper(string(g.Category))))
		for _, row := range g.Rows {
			fmt.Fprintf(w, "  %s %-28s %s\n", row.Emoji, row.Name, colored(row.Color, row.Severity))
			if !row.Passed {
				fmt.Fprintf(w, "     %s\n", dimStyle.Render(row.Description))
				fmt.Fprintf(w, "     → %s\n", row.Recommendation)
			}
		}
	}
}

func renderCompat(w io.Writer, view *viewmodels.CompatView) {
	renderDevice(w, view.Device)
	fmt.Fprintf(w, "%s %d of %d\n\n", titleStyle.Render("Compatible:"), view.CompatibleCount, view.Total)

	for _, t := range view.Tools {
		name := t.Name
		if t.Compatible {
			name = colored(secaudit.SeveritySafe.Color(), name)
		}
		fmt.Fprintf(w, "%s %s  %s\n", t.Emoji, titleStyle.Render(name), dimStyle.Render(t.Website))
		fmt.Fprintf(w, "   %s\n", t.Description)
		fmt.Fprintf(w, "   %s\n", t.Reason)
		if len(t.Features) > 0 {
			fmt.Fprintf(w, "   %s\n", dimStyle.Render(strings.Join(t.Features, " · ")))
		}
	}

	if len(view.Bootrom) > 0 {
		fmt.Fprintf(w, "\n%s\n", headingStyle.Render("BOOTROM"))
		for _, f := range view.Bootrom {
			fmt.Fprintf(w, "  %s\n", colored(secaudit.SeverityCritical.Color(), f))
		}
	}
}

func renderDevice(w io.Writer, device secaudit.DeviceInfo) {
	version := device.OSVersion
	if version == "" {
		version = "unknown"
	}
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("Device:"), device.Model)
	fmt.Fprintf(w, "%s %s (major %d, minor %d)\n", titleStyle.Render("OS version:"), version, device.MajorVersion, device.MinorVersion)
}
