package deviceinfo

import "strings"

// Canonical platform labels keyed by GOOS.
var defaultLabels = map[string]string{
	"ios":     "iOS",
	"android": "Android",
	"darwin":  "macOS",
	"linux":   "Linux",
	"windows": "Windows",
	"freebsd": "FreeBSD",
}

// DefaultLabel returns the canonical label for goos.
func DefaultLabel(goos string) (string, bool) {
	label, ok := defaultLabels[goos]
	return label, ok
}

// ResolveLabel returns the override for goos when one is set, otherwise the
// canonical label.
func ResolveLabel(goos string, overrides map[string]string) (string, bool) {
	if label := strings.TrimSpace(overrides[goos]); label != "" {
		return label, true
	}

	return DefaultLabel(goos)
}

// SupportedPlatforms returns the GOOS values that have a canonical label.
func SupportedPlatforms() []string {
	return []string{"android", "darwin", "freebsd", "ios", "linux", "windows"}
}
