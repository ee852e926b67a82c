//go:build windows || freebsd

package deviceinfo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

type platformInfoSource struct{}

// OSVersion returns the version reported by the OS, e.g. "10.0.22631 Build 22631"
// on Windows or "14.0-RELEASE" on FreeBSD.
func (platformInfoSource) OSVersion(ctx context.Context) (string, error) {
	_, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("platform information: %w", err)
	}

	if version == "" {
		return "", errors.New("platform information reported no version")
	}

	return version, nil
}

func hostSource() VersionSource {
	return platformInfoSource{}
}
