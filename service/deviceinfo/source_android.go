//go:build android

package deviceinfo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const androidReleaseProperty = "ro.build.version.release"

type propertySource struct{}

// OSVersion reads the user-visible Android release, e.g. "14".
func (propertySource) OSVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "getprop", androidReleaseProperty).Output()
	if err != nil {
		return "", fmt.Errorf("getprop %s: %w", androidReleaseProperty, err)
	}

	return strings.TrimSpace(string(out)), nil
}

func hostSource() VersionSource {
	return propertySource{}
}
