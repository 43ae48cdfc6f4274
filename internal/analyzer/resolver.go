package analyzer

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// AppDirResolver resolves a bundle id such as "com.saurik.Cydia" to an
// installed "Cydia.app" under one of its application directories.
type AppDirResolver struct {
	fs   afero.Fs
	dirs []string
}

// NewAppDirResolver returns a resolver that searches dirs on fs.
func NewAppDirResolver(fs afero.Fs, dirs []string) *AppDirResolver {
	return &AppDirResolver{fs: fs, dirs: dirs}
}

// CanOpen reports whether the app for scheme is installed. Lookup errors
// count as not installed.
func (r *AppDirResolver) CanOpen(scheme string) bool {
	name := scheme
	if i := strings.LastIndex(scheme, "."); i >= 0 {
		name = scheme[i+1:]
	}
	if name == "" {
		return false
	}
	for _, dir := range r.dirs {
		if ok, err := afero.DirExists(r.fs, filepath.Join(dir, name+".app")); err == nil && ok {
			return true
		}
	}
	return false
}

// ResolverFunc adapts a function to SchemeResolver.
type ResolverFunc func(scheme string) bool

// CanOpen calls f(scheme).
func (f ResolverFunc) CanOpen(scheme string) bool {
	return f(scheme)
}

// StaticOwnerAuth is an owner-authentication probe with a fixed answer.
type StaticOwnerAuth bool

// CanEvaluateOwnerAuthentication returns the fixed answer.
func (s StaticOwnerAuth) CanEvaluateOwnerAuthentication() bool {
	return bool(s)
}
