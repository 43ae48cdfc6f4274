//go:build linux

package inspector

import (
	"log"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const (
	osReleasePath   = "/etc/os-release"
	productNamePath = "/sys/class/dmi/id/product_name"
)

func platformOSVersion(fs afero.Fs) string {
	data, err := afero.ReadFile(fs, osReleasePath)
	if err != nil {
		log.Printf("[WARN] Failed to read %s: %v", osReleasePath, err)
		return ""
	}
	_, version := parseOSRelease(string(data))
	return version
}

func platformHardware(_ afero.Fs) string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		log.Printf("[WARN] uname failed: %v", err)
		return ""
	}
	return unix.ByteSliceToString(u.Machine[:])
}

func platformModel(fs afero.Fs) string {
	data, err := afero.ReadFile(fs, productNamePath)
	if err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}
	data, err = afero.ReadFile(fs, osReleasePath)
	if err != nil {
		return ""
	}
	name, _ := parseOSRelease(string(data))
	return name
}
