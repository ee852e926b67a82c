package deviceinfo

import (
	"context"

	"github.com/colmeia/colmeia-native/model"
	"github.com/sirupsen/logrus"
)

// VersionSource reads the raw OS version identifier from the host.
type VersionSource interface {
	OSVersion(ctx context.Context) (string, error)
}

// VersionSourceFunc adapts a plain function to VersionSource.
type VersionSourceFunc func(ctx context.Context) (string, error)

// OSVersion calls f(ctx).
func (f VersionSourceFunc) OSVersion(ctx context.Context) (string, error) {
	return f(ctx)
}

type service struct {
	label  string
	source VersionSource
	log    logrus.FieldLogger
}

// Service answers queries about the running platform.
type Service interface {
	GetPlatformVersion(ctx context.Context) (model.PlatformVersion, error)
}
