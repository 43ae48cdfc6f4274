package config_test

import (
	"os"
	"path/filepath"
	"secaudit/internal/config"
	"testing"

	"gopkg.in/yaml.v3"
)

func intp(v int) *int { return &v }

func TestParseCatalogYAML(t *testing.T) {
	// Load the embedded catalog file
	data, err := os.ReadFile("../catalog/catalog.yaml")
	if err != nil {
		t.Fatalf("Failed to read catalog.yaml: %v", err)
	}

	var cat config.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		t.Fatalf("Failed to parse catalog.yaml: %v", err)
	}
	if err := cat.Validate(); err != nil {
		t.Fatalf("catalog.yaml failed validation: %v", err)
	}

	for _, td := range cat.Tools {
		if td.Requirement == "" {
			t.Errorf("Tool %s has no requirement text", td.ID)
		}
		if td.Supported == "" {
			t.Errorf("Tool %s has no supported text", td.ID)
		}
	}

	t.Logf("Successfully parsed %d tools from catalog.yaml", len(cat.Tools))
}

func TestVersionRuleMatches(t *testing.T) {
	tests := []struct {
		name         string
		rule         config.VersionRule
		major, minor int
		want         bool
	}{
		{"open rule", config.VersionRule{}, 3, 9, true},
		{"below min", config.VersionRule{MinMajor: intp(12)}, 11, 9, false},
		{"at min", config.VersionRule{MinMajor: intp(12)}, 12, 0, true},
		{"above max", config.VersionRule{MaxMajor: intp(14)}, 15, 0, false},
		{"at max", config.VersionRule{MaxMajor: intp(14)}, 14, 8, true},
		{"minor cap hit", config.VersionRule{MinMajor: intp(14), MaxMajor: intp(14), MaxMinor: intp(3)}, 14, 3, true},
		{"minor cap exceeded", config.VersionRule{MinMajor: intp(14), MaxMajor: intp(14), MaxMinor: intp(3)}, 14, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Matches(tt.major, tt.minor); got != tt.want {
				t.Errorf("Matches(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.want)
			}
		})
	}
}

func TestToolCompatibleAnyRule(t *testing.T) {
	td := config.ToolDefinition{
		ID:   "dopamine",
		Name: "Dopamine",
		Versions: []config.VersionRule{
			{MinMajor: intp(15), MaxMajor: intp(15)},
			{MinMajor: intp(16), MaxMajor: intp(16), MaxMinor: intp(6)},
		},
	}
	if !td.Compatible(15, 9) {
		t.Error("15.9 should match the first rule")
	}
	if !td.Compatible(16, 6) {
		t.Error("16.6 should match the second rule")
	}
	if td.Compatible(16, 7) || td.Compatible(14, 0) || td.Compatible(17, 0) {
		t.Error("unexpected match outside both rules")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScratchDir != config.DefaultScratchDir {
		t.Errorf("ScratchDir = %q", cfg.ScratchDir)
	}
	if len(cfg.AppDirs) != len(config.DefaultAppDirs) {
		t.Errorf("AppDirs = %v", cfg.AppDirs)
	}
	if cfg.OwnerAuth {
		t.Error("OwnerAuth should default to false")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secaudit.yaml")
	doc := `
root: /mnt/image
scratch_dir: /private/var/tmp
owner_auth: true
app_dirs: [/Applications]
device:
  os_version: "16.6.1"
  hardware: iPhone10,3
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "/mnt/image" || cfg.ScratchDir != "/private/var/tmp" || !cfg.OwnerAuth {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Device.OSVersion != "16.6.1" || cfg.Device.Hardware != "iPhone10,3" {
		t.Errorf("unexpected device override: %+v", cfg.Device)
	}
	if len(cfg.AppDirs) != 1 || cfg.AppDirs[0] != "/Applications" {
		t.Errorf("AppDirs = %v", cfg.AppDirs)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SECAUDIT_DEVICE_OS_VERSION", "14.2")
	t.Setenv("SECAUDIT_OWNER_AUTH", "true")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.OSVersion != "14.2" {
		t.Errorf("Device.OSVersion = %q, want 14.2", cfg.Device.OSVersion)
	}
	if !cfg.OwnerAuth {
		t.Error("OwnerAuth should be set from the environment")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("root: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
