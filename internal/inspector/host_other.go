//go:build !darwin && !linux

package inspector

import (
	"runtime"

	"github.com/spf13/afero"
)

func platformOSVersion(_ afero.Fs) string {
	return ""
}

func platformHardware(_ afero.Fs) string {
	return runtime.GOARCH
}

func platformModel(_ afero.Fs) string {
	return runtime.GOOS
}
