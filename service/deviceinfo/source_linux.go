//go:build linux && !android

package deviceinfo

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

type unameSource struct{}

// OSVersion returns the kernel release, e.g. "6.8.0-45-generic".
func (unameSource) OSVersion(_ context.Context) (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	return unix.ByteSliceToString(uts.Release[:]), nil
}

func hostSource() VersionSource {
	return unameSource{}
}
