package deviceinfo

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/colmeia/colmeia-native/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(version string) VersionSource {
	return VersionSourceFunc(func(context.Context) (string, error) {
		return version, nil
	})
}

func TestGetPlatformVersion(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		version string
		want    string
	}{
		{name: "ios", label: "iOS", version: "17.4", want: "iOS 17.4"},
		{name: "android", label: "Android", version: "14", want: "Android 14"},
		{name: "linux kernel release", label: "Linux", version: "6.8.0-45-generic\n", want: "Linux 6.8.0-45-generic"},
		{name: "windows build suffix dropped", label: "Windows", version: "10.0.22631 Build 22631", want: "Windows 10.0.22631"},
		{name: "surrounding whitespace", label: "macOS", version: "  14.4.1  ", want: "macOS 14.4.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.label, staticSource(tt.version), nil)

			pv, err := svc.GetPlatformVersion(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, pv.String())
			assert.True(t, strings.HasPrefix(pv.String(), tt.label+" "))
			assert.Equal(t, 1, strings.Count(pv.String(), " "))
		})
	}
}

func TestGetPlatformVersionUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		source VersionSource
	}{
		{name: "no version api", label: "iOS", source: nil},
		{name: "no label", label: "", source: staticSource("17.4")},
		{name: "empty version without error", label: "iOS", source: staticSource("")},
		{name: "blank version", label: "iOS", source: staticSource(" \t\n")},
		{name: "label with space", label: "GNU Linux", source: staticSource("6.1")},
		{
			name:  "source error",
			label: "Android",
			source: VersionSourceFunc(func(context.Context) (string, error) {
				return "", errors.New("sandboxed")
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.label, tt.source, nil)

			pv, err := svc.GetPlatformVersion(context.Background())
			require.Error(t, err)
			assert.Equal(t, model.PlatformVersion{}, pv)
			assert.ErrorIs(t, err, model.ErrPlatformUnavailable)

			var callErr *model.CallError
			require.ErrorAs(t, err, &callErr)
			assert.Equal(t, model.CodePlatformUnavailable, callErr.Code)
			assert.NotEmpty(t, callErr.Message)
		})
	}
}

func TestGetPlatformVersionSourceErrorIsWrapped(t *testing.T) {
	cause := errors.New("permission denied")
	svc := NewService("Linux", VersionSourceFunc(func(context.Context) (string, error) {
		return "", cause
	}), nil)

	_, err := svc.GetPlatformVersion(context.Background())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestGetPlatformVersionIdempotent(t *testing.T) {
	svc := NewService("iOS", staticSource("17.4"), nil)

	first, err := svc.GetPlatformVersion(context.Background())
	require.NoError(t, err)
	second, err := svc.GetPlatformVersion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveLabel(t *testing.T) {
	label, ok := ResolveLabel("ios", nil)
	assert.True(t, ok)
	assert.Equal(t, "iOS", label)

	label, ok = ResolveLabel("linux", map[string]string{"linux": "Ubuntu"})
	assert.True(t, ok)
	assert.Equal(t, "Ubuntu", label)

	label, ok = ResolveLabel("linux", map[string]string{"linux": "  "})
	assert.True(t, ok)
	assert.Equal(t, "Linux", label)

	_, ok = ResolveLabel("plan9", nil)
	assert.False(t, ok)
}

func TestSupportedPlatformsHaveLabels(t *testing.T) {
	for _, goos := range SupportedPlatforms() {
		label, ok := DefaultLabel(goos)
		assert.True(t, ok, goos)
		assert.NotContains(t, label, " ", goos)
	}
}

func TestNewHostService(t *testing.T) {
	label, ok := DefaultLabel(runtime.GOOS)
	if !ok || hostSource() == nil {
		t.Skipf("no version source for %s", runtime.GOOS)
	}

	pv, err := NewHostService(nil, nil).GetPlatformVersion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, label, pv.Name)
	assert.NotEmpty(t, pv.Version)
	assert.True(t, strings.HasPrefix(pv.String(), label+" "))
}

func TestNewHostServiceLabelOverride(t *testing.T) {
	if hostSource() == nil {
		t.Skipf("no version source for %s", runtime.GOOS)
	}

	overrides := map[string]string{runtime.GOOS: "Colmeia"}
	pv, err := NewHostService(overrides, nil).GetPlatformVersion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Colmeia", pv.Name)
	assert.True(t, strings.HasPrefix(pv.String(), "Colmeia "))
}

func TestNewHostServiceWithoutSource(t *testing.T) {
	if hostSource() != nil {
		t.Skipf("%s has a version source", runtime.GOOS)
	}

	_, err := NewHostService(nil, nil).GetPlatformVersion(context.Background())
	assert.ErrorIs(t, err, model.ErrPlatformUnavailable)
}
