// Package inspector reads the device model, OS version and hardware
// identifier. Every read is total: missing or unparsable values degrade to
// empty strings and zero version components.
package inspector

import (
	"secaudit/internal/secaudit"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// ParseVersion splits an OS version string on '.' and returns the first two
// components as integers. Empty components are skipped, so "16..2" is 16.2.
// Missing or unparsable components are 0.
func ParseVersion(version string) (major, minor int) {
	parts := strings.FieldsFunc(version, func(r rune) bool { return r == '.' })
	if len(parts) > 0 {
		major = atoiOrZero(parts[0])
	}
	if len(parts) > 1 {
		minor = atoiOrZero(parts[1])
	}
	return major, minor
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// NewDeviceInfo builds a DeviceInfo from a model and a raw version string.
func NewDeviceInfo(model, osVersion string) secaudit.DeviceInfo {
	major, minor := ParseVersion(osVersion)
	return secaudit.DeviceInfo{
		Model:        model,
		OSVersion:    osVersion,
		MajorVersion: major,
		MinorVersion: minor,
	}
}

// modelFamily returns the alphabetic prefix of a hardware identifier,
// e.g. "iPhone" for "iPhone10,1".
func modelFamily(identifier string) string {
	end := strings.IndexFunc(identifier, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		return identifier
	}
	return identifier[:end]
}

// Host reads device information from the running platform.
type Host struct {
	fs afero.Fs
}

// NewHost returns an inspector backed by the platform. File-based sources
// are read through fs.
func NewHost(fs afero.Fs) *Host {
	return &Host{fs: fs}
}

// Inspect reads the current model and OS version.
func (h *Host) Inspect() secaudit.DeviceInfo {
	model := platformModel(h.fs)
	if model == "" {
		model = modelFamily(h.HardwareIdentifier())
	}
	return NewDeviceInfo(model, platformOSVersion(h.fs))
}

// HardwareIdentifier returns the raw hardware identifier, e.g. "iPhone10,1".
func (h *Host) HardwareIdentifier() string {
	return platformHardware(h.fs)
}

// Static reports fixed device values. It is used for overrides and tests.
type Static struct {
	Info     secaudit.DeviceInfo
	Hardware string
}

// NewStatic returns an inspector that always reports the given values.
func NewStatic(model, osVersion, hardware string) *Static {
	return &Static{Info: NewDeviceInfo(model, osVersion), Hardware: hardware}
}

// Inspect returns the fixed device info.
func (s *Static) Inspect() secaudit.DeviceInfo {
	return s.Info
}

// HardwareIdentifier returns the fixed hardware identifier.
func (s *Static) HardwareIdentifier() string {
	return s.Hardware
}

// parseOSRelease extracts VERSION_ID and NAME from /etc/os-release content.
func parseOSRelease(content string) (name, versionID string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "NAME="):
			name = strings.Trim(strings.TrimPrefix(line, "NAME="), `"`)
		case strings.HasPrefix(line, "VERSION_ID="):
			versionID = strings.Trim(strings.TrimPrefix(line, "VERSION_ID="), `"`)
		default:
		}
	}
	return name, versionID
}

// WithOverrides returns a Static inspector reporting the given values. Empty
// values are read once from base.
func WithOverrides(base *Host, model, osVersion, hardware string) *Static {
	if model == "" && hardware != "" {
		model = modelFamily(hardware)
	}
	if hardware == "" {
		hardware = base.HardwareIdentifier()
	}
	// Only hit the host when something is still missing
	if osVersion == "" || model == "" {
		info := base.Inspect()
		if osVersion == "" {
			osVersion = info.OSVersion
		}
		if model == "" {
			model = info.Model
		}
	}
	return NewStatic(model, osVersion, hardware)
}
