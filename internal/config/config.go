package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultScratchDir = "/tmp"
	envPrefix         = "SECAUDIT"
)

// DefaultAppDirs are searched when resolving known app bundle ids.
var DefaultAppDirs = []string{"/Applications", "/var/jb/Applications"}

// Config holds the runtime settings of the scanner.
type Config struct {
	Device      DeviceOverride `mapstructure:"device"`
	Root        string         `mapstructure:"root"`
	ScratchDir  string         `mapstructure:"scratch_dir"`
	CatalogFile string         `mapstructure:"catalog_file"`
	AppDirs     []string       `mapstructure:"app_dirs"`
	OwnerAuth   bool           `mapstructure:"owner_auth"`
	Debug       bool           `mapstructure:"debug"`
}

// DeviceOverride replaces values read from the platform. Empty fields are
// read from the host.
type DeviceOverride struct {
	Model     string `mapstructure:"model"`
	OSVersion string `mapstructure:"os_version"`
	Hardware  string `mapstructure:"hardware"`
}

// Load reads the config file at path, if any, applies SECAUDIT_* environment
// overrides and returns the populated Config. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// viper reports a missing explicit file as a PathError
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.ScratchDir == "" {
		cfg.ScratchDir = DefaultScratchDir
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", "")
	v.SetDefault("scratch_dir", DefaultScratchDir)
	v.SetDefault("app_dirs", DefaultAppDirs)
	v.SetDefault("owner_auth", false)
	v.SetDefault("catalog_file", "")
	v.SetDefault("debug", false)
	// Registered so AutomaticEnv can see the nested keys.
	v.SetDefault("device.model", "")
	v.SetDefault("device.os_version", "")
	v.SetDefault("device.hardware", "")
}
