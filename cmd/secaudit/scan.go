package main

import (
	"fmt"
	"os"
	"secaudit/internal/secaudit"
	"secaudit/internal/viewmodels"

	"github.com/spf13/cobra"
)

var (
	scanCategory string
	failOn       string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the security checks",
	Long: `Runs the jailbreak, system, permissions and network checks and prints
each result along with the overall severity.

Use --category to run a single group and --fail-on to exit non-zero when
the overall severity reaches a level.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanCategory, "category", "",
		"run a single group: jailbreak, system, permissions or network")
	scanCmd.Flags().StringVar(&failOn, "fail-on", "",
		"exit with an error when overall severity is at least this level (low, medium, high, critical)")
}

func runScan(cmd *cobra.Command, _ []string) error {
	var threshold secaudit.Severity
	if failOn != "" {
		var err error
		if threshold, err = secaudit.ParseSeverity(failOn); err != nil {
			return fmt.Errorf("invalid --fail-on: %w", err)
		}
	}
	if scanCategory != "" && !secaudit.IsValidCategory(scanCategory) {
		return fmt.Errorf("invalid category %q", scanCategory)
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	var result *secaudit.ScanResult
	if scanCategory != "" {
		result = eng.scanner.ScanCategory(secaudit.Category(scanCategory))
	} else {
		result = eng.scanner.PerformFullScan()
	}

	if jsonOut {
		if err := writeJSON(os.Stdout, result); err != nil {
			return err
		}
	} else {
		renderScan(os.Stdout, viewmodels.BuildScanView(result))
	}

	// Exit non-zero only after the report is printed
	if failOn != "" && result.VulnerabilityCount() > 0 && result.OverallSeverity() >= threshold {
		return fmt.Errorf("overall severity %s meets --fail-on %s", result.OverallSeverity(), threshold)
	}
	return nil
}
