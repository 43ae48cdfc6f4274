//go:build darwin

package inspector

import (
	"log"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

func sysctl(name string) string {
	v, err := unix.Sysctl(name)
	if err != nil {
		log.Printf("[WARN] sysctl %s failed: %v", name, err)
		return ""
	}
	return strings.TrimSpace(v)
}

func platformOSVersion(_ afero.Fs) string {
	return sysctl("kern.osproductversion")
}

// platformHardware prefers hw.machine, which carries the product identifier
// on iOS. On macOS it is only the CPU architecture, so hw.model is used.
func platformHardware(_ afero.Fs) string {
	machine := sysctl("hw.machine")
	if strings.Contains(machine, ",") {
		return machine
	}
	if model := sysctl("hw.model"); model != "" {
		return model
	}
	return machine
}

func platformModel(_ afero.Fs) string {
	return ""
}
