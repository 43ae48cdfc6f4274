// Package main implements the secaudit command, which scans the device for
// jailbreak indicators and reports modification-tool compatibility.
package main

import (
	"fmt"
	"log"
	"os"
	"secaudit/internal/analyzer"
	"secaudit/internal/catalog"
	"secaudit/internal/compat"
	"secaudit/internal/config"
	"secaudit/internal/inspector"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile   string
	debug     bool
	jsonOut   bool
	root      string
	osVersion string
	hardware  string
)

var rootCmd = &cobra.Command{
	Use:   "secaudit",
	Short: "On-device jailbreak detection and tool compatibility checks",
	Long: `secaudit runs local security checks against the device and reports
an overall risk verdict, and matches the device's OS version against a
catalog of known modification tools.

  secaudit scan       Run all security checks
  secaudit compat     List modification tools and their compatibility
  secaudit device     Show the detected device
  secaudit bootrom    List bootrom-level vulnerabilities`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.BoolVar(&jsonOut, "json", false, "print results as JSON")
	flags.StringVar(&root, "root", "", "filesystem root to probe instead of /")
	flags.StringVar(&osVersion, "os-version", "", "override the detected OS version")
	flags.StringVar(&hardware, "hardware", "", "override the detected hardware identifier")

	rootCmd.Version = Version
	rootCmd.AddCommand(scanCmd, compatCmd, deviceCmd, bootromCmd)
}

// engine bundles the two services the subcommands call into.
type engine struct {
	scanner *analyzer.Checker
	compat  *compat.Checker
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("root") {
		cfg.Root = root
	}
	if flags.Changed("os-version") {
		cfg.Device.OSVersion = osVersion
	}
	if flags.Changed("hardware") {
		cfg.Device.Hardware = hardware
	}
	return cfg, nil
}

func newEngine(cmd *cobra.Command) (*engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	// Probe a mounted image instead of the live filesystem
	var fs afero.Fs = afero.NewOsFs()
	if cfg.Root != "" {
		fs = afero.NewBasePathFs(fs, cfg.Root)
	}

	// Catalog path is relative to the caller, not to --root
	cat, err := catalog.Load(afero.NewOsFs(), cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	host := inspector.NewHost(fs)
	var insp compat.Inspector = host
	if cfg.Device != (config.DeviceOverride{}) {
		insp = inspector.WithOverrides(host, cfg.Device.Model, cfg.Device.OSVersion, cfg.Device.Hardware)
	}

	if cfg.Debug {
		log.Printf("[DEBUG] Config: root=%q scratch_dir=%q app_dirs=%v catalog=%d tools",
			cfg.Root, cfg.ScratchDir, cfg.AppDirs, cat.Len())
	}

	scanner := analyzer.New(insp,
		analyzer.WithFs(fs),
		analyzer.WithScratchDir(cfg.ScratchDir),
		analyzer.WithResolver(analyzer.NewAppDirResolver(fs, cfg.AppDirs)),
		analyzer.WithOwnerAuth(analyzer.StaticOwnerAuth(cfg.OwnerAuth)),
		analyzer.WithDebug(cfg.Debug),
	)

	return &engine{
		scanner: scanner,
		compat:  compat.New(insp, cat),
	}, nil
}
