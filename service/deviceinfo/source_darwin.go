//go:build darwin

package deviceinfo

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// productVersionSysctl holds the marketing version on both macOS and iOS.
const productVersionSysctl = "kern.osproductversion"

type sysctlSource struct{}

// OSVersion returns the product version, e.g. "17.4" on iOS or "14.4.1" on
// macOS. It makes no subprocess call, so it works inside the iOS app sandbox.
func (sysctlSource) OSVersion(_ context.Context) (string, error) {
	version, err := unix.Sysctl(productVersionSysctl)
	if err != nil {
		return "", fmt.Errorf("sysctl %s: %w", productVersionSysctl, err)
	}

	if version == "" {
		return "", fmt.Errorf("sysctl %s is empty", productVersionSysctl)
	}

	return version, nil
}

func hostSource() VersionSource {
	return sysctlSource{}
}
