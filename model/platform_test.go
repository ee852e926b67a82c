package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlatformVersion(t *testing.T) {
	pv, err := NewPlatformVersion("iOS", "17.4")
	require.NoError(t, err)
	assert.Equal(t, "iOS 17.4", pv.String())

	for _, tc := range [][2]string{
		{"", "17.4"},
		{"iOS", ""},
		{"i OS", "17.4"},
		{"iOS", "17.4 beta"},
		{"iOS", "17.4\n"},
	} {
		_, err := NewPlatformVersion(tc[0], tc[1])
		assert.Error(t, err, "%q %q", tc[0], tc[1])
	}
}

func TestCallErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("no sysctl")
	err := fmt.Errorf("invoke: %w", NewPlatformUnavailable(cause))

	assert.ErrorIs(t, err, ErrPlatformUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "PlatformUnavailable: platform unavailable: no sysctl", NewPlatformUnavailable(cause).Error())
	assert.Equal(t, "PlatformUnavailable: platform unavailable", NewPlatformUnavailable(nil).Error())
}
