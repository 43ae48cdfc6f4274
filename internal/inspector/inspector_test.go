package inspector

import (
	"runtime"
	"testing"

	"github.com/spf13/afero"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version      string
		major, minor int
	}{
		{"16.6.1", 16, 6},
		{"14.3", 14, 3},
		{"15", 15, 0},
		{"", 0, 0},
		{"beta", 0, 0},
		{"17.x", 17, 0},
		{"x.4", 0, 4},
		{"16..2", 16, 2},
		{".15.4", 15, 4},
		{"14.3.", 14, 3},
		{"...", 0, 0},
		{" 16.1", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			major, minor := ParseVersion(tt.version)
			if major != tt.major || minor != tt.minor {
				t.Errorf("ParseVersion(%q) = %d, %d; want %d, %d", tt.version, major, minor, tt.major, tt.minor)
			}
		})
	}
}

func TestModelFamily(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"iPhone10,1", "iPhone"},
		{"iPad7,11", "iPad"},
		{"MacBookPro18,1", "MacBookPro"},
		{"iPhone", "iPhone"},
		{"", ""},
		{"x86_64", "x"},
	}
	for _, tt := range tests {
		if got := modelFamily(tt.identifier); got != tt.want {
			t.Errorf("modelFamily(%q) = %q, want %q", tt.identifier, got, tt.want)
		}
	}
}

func TestStaticIdempotent(t *testing.T) {
	s := NewStatic("iPhone", "16.6.1", "iPhone11,2")
	first := s.Inspect()
	second := s.Inspect()
	if first != second {
		t.Errorf("Inspect() not idempotent: %+v vs %+v", first, second)
	}
	if first.MajorVersion != 16 || first.MinorVersion != 6 || first.OSVersion != "16.6.1" {
		t.Errorf("unexpected info: %+v", first)
	}
	if s.HardwareIdentifier() != "iPhone11,2" {
		t.Errorf("HardwareIdentifier() = %q", s.HardwareIdentifier())
	}
}

func TestParseOSRelease(t *testing.T) {
	content := `NAME="Ubuntu"
VERSION="22.04.3 LTS (Jammy Jellyfish)"
ID=ubuntu
VERSION_ID="22.04"
`
	name, version := parseOSRelease(content)
	if name != "Ubuntu" || version != "22.04" {
		t.Errorf("parseOSRelease = %q, %q", name, version)
	}

	name, version = parseOSRelease("")
	if name != "" || version != "" {
		t.Errorf("parseOSRelease(empty) = %q, %q", name, version)
	}
}

func TestHostIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/etc/os-release", []byte("NAME=\"Test OS\"\nVERSION_ID=\"16.6\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewHost(fs)
	first := h.Inspect()
	second := h.Inspect()
	if first != second {
		t.Errorf("Inspect() not idempotent: %+v vs %+v", first, second)
	}
	if h.HardwareIdentifier() != h.HardwareIdentifier() {
		t.Error("HardwareIdentifier() not idempotent")
	}

	if runtime.GOOS != "linux" {
		t.Skip("os-release is only read on linux")
	}
	if first.OSVersion != "16.6" || first.MajorVersion != 16 || first.MinorVersion != 6 {
		t.Errorf("unexpected info from os-release: %+v", first)
	}
	if first.Model != "Test OS" {
		t.Errorf("Model = %q, want Test OS", first.Model)
	}
}

func TestHostMissingSources(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("file sources are only read on linux")
	}
	info := NewHost(afero.NewMemMapFs()).Inspect()
	if info.OSVersion != "" || info.MajorVersion != 0 || info.MinorVersion != 0 {
		t.Errorf("expected zero version for missing os-release, got %+v", info)
	}
}

func TestWithOverrides(t *testing.T) {
	host := NewHost(afero.NewMemMapFs())

	s := WithOverrides(host, "", "15.1", "iPhone10,3")
	if s.Info.Model != "iPhone" {
		t.Errorf("Model = %q, want iPhone", s.Info.Model)
	}
	if s.Info.MajorVersion != 15 || s.Info.MinorVersion != 1 {
		t.Errorf("version = %d.%d, want 15.1", s.Info.MajorVersion, s.Info.MinorVersion)
	}
	if s.HardwareIdentifier() != "iPhone10,3" {
		t.Errorf("HardwareIdentifier() = %q", s.HardwareIdentifier())
	}

	s = WithOverrides(host, "iPad", "", "")
	if s.Info.Model != "iPad" {
		t.Errorf("Model = %q, want iPad", s.Info.Model)
	}
	if s.Info.OSVersion != host.Inspect().OSVersion {
		t.Errorf("OSVersion = %q, want host value", s.Info.OSVersion)
	}
}
