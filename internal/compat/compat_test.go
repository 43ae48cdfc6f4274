package compat

import (
	"secaudit/internal/catalog"
	"secaudit/internal/inspector"
	"secaudit/internal/secaudit"
	"testing"
)

// mutableInspector lets a test change the device between calls.
type mutableInspector struct {
	info     secaudit.DeviceInfo
	hardware string
}

func (m *mutableInspector) Inspect() secaudit.DeviceInfo { return m.info }
func (m *mutableInspector) HardwareIdentifier() string   { return m.hardware }

func TestCheckCompatibilityCount(t *testing.T) {
	for _, v := range []string{"", "9.3", "14.3", "16.6.1", "18.0"} {
		c := New(inspector.NewStatic("iPhone", v, "iPhone14,2"), nil)
		if got := len(c.CheckCompatibility()); got != 6 {
			t.Errorf("version %q: got %d tools, want 6", v, got)
		}
	}
}

func TestRecomputedPerDevice(t *testing.T) {
	insp := &mutableInspector{info: inspector.NewDeviceInfo("iPhone", "14.3")}
	c := New(insp, catalog.Default())

	if tools := c.CheckCompatibility(); !tools[0].IsCompatible {
		t.Fatal("taurine should be compatible with 14.3")
	}

	insp.info = inspector.NewDeviceInfo("iPhone", "14.4")
	tools := c.CheckCompatibility()
	if tools[0].IsCompatible {
		t.Error("taurine should not be compatible with 14.4")
	}
	if want := "iOS version 14.4 not supported. Taurine requires iOS 14.0-14.3"; tools[0].CompatibilityReason != want {
		t.Errorf("reason = %q, want %q", tools[0].CompatibilityReason, want)
	}
}

func TestEmptyVersionComponents(t *testing.T) {
	// "16..2" reads as 16.2, so Dopamine still matches and palera1n is not
	// pushed to major 0.
	c := New(inspector.NewStatic("iPhone", "16..2", "iPhone14,2"), nil)
	tools := c.CheckCompatibility()
	byID := make(map[string]bool, len(tools))
	for _, tool := range tools {
		byID[tool.ID] = tool.IsCompatible
	}
	if !byID["dopamine"] {
		t.Error("dopamine should be compatible with 16..2")
	}
	if !byID["palera1n"] {
		t.Error("palera1n should be compatible with 16..2")
	}
}

func TestDeviceInfoIdempotent(t *testing.T) {
	c := New(inspector.NewStatic("iPhone", "16.6.1", "iPhone15,2"), nil)
	if c.DeviceInfo() != c.DeviceInfo() {
		t.Error("DeviceInfo() changed without a device change")
	}
}

func TestCheckBootromVulnerabilities(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		hardware string
		want     int
	}{
		{"checkm8 iPhone", "iPhone", "iPhone8", 1},
		{"modern iPhone", "iPhone", "iPhone13", 0},
		{"not an iPhone", "iPad", "iPhone8", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(inspector.NewStatic(tt.model, "15.0", tt.hardware), nil)
			if got := c.CheckBootromVulnerabilities(); len(got) != tt.want {
				t.Errorf("CheckBootromVulnerabilities() = %v, want %d findings", got, tt.want)
			}
		})
	}
}
