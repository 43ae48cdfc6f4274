package main

import (
	"fmt"
	"os"
	"secaudit/internal/viewmodels"

	"github.com/spf13/cobra"
)

var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "List modification tools and whether they fit this device",
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		device := eng.compat.DeviceInfo()
		tools := eng.compat.CheckCompatibility()
		bootrom := eng.compat.CheckBootromVulnerabilities()

		if jsonOut {
			return writeJSON(os.Stdout, map[string]any{
				"device":  device,
				"tools":   tools,
				"bootrom": nonNil(bootrom),
			})
		}
		renderCompat(os.Stdout, viewmodels.BuildCompatView(device, tools, bootrom))
		return nil
	},
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show the detected device model and OS version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		device := eng.compat.DeviceInfo()
		if jsonOut {
			return writeJSON(os.Stdout, device)
		}
		renderDevice(os.Stdout, device)
		return nil
	},
}

var bootromCmd = &cobra.Command{
	Use:   "bootrom",
	Short: "List bootrom-level vulnerabilities of this hardware",
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		findings := eng.compat.CheckBootromVulnerabilities()
		if jsonOut {
			return writeJSON(os.Stdout, nonNil(findings))
		}
		if len(findings) == 0 {
			fmt.Println("No bootrom vulnerabilities found")
			return nil
		}
		for _, f := range findings {
			fmt.Println(f)
		}
		return nil
	},
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
