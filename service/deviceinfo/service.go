// Package deviceinfo reports the running platform's name and OS version.
package deviceinfo

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/shared/logging"
	"github.com/sirupsen/logrus"
)

// NewService creates a provider that prefixes versions read from source with label.
// A nil logger discards output.
func NewService(label string, source VersionSource, logger logrus.FieldLogger) Service {
	if logger == nil {
		logger = logging.Discard()
	}

	return &service{
		label:  label,
		source: source,
		log:    logger,
	}
}

// NewHostService creates a provider for the platform this binary runs on.
// overrides may replace the canonical label per GOOS.
func NewHostService(overrides map[string]string, logger logrus.FieldLogger) Service {
	label, _ := ResolveLabel(runtime.GOOS, overrides)

	return NewService(label, hostSource(), logger)
}

// GetPlatformVersion returns "<label> <version>" for the host. Every failure is a
// *model.CallError with code PlatformUnavailable.
func (s *service) GetPlatformVersion(ctx context.Context) (model.PlatformVersion, error) {
	if s.label == "" {
		return model.PlatformVersion{}, s.unavailable(errors.New("platform label is not set"))
	}

	if s.source == nil {
		return model.PlatformVersion{}, s.unavailable(errors.New("host exposes no version API"))
	}

	raw, err := s.source.OSVersion(ctx)
	if err != nil {
		return model.PlatformVersion{}, s.unavailable(fmt.Errorf("read os version: %w", err))
	}

	pv, err := model.NewPlatformVersion(s.label, normalizeVersion(raw))
	if err != nil {
		return model.PlatformVersion{}, s.unavailable(err)
	}

	s.log.WithFields(logrus.Fields{"platform": pv.Name, "version": pv.Version}).Debug("resolved platform version")

	return pv, nil
}

func (s *service) unavailable(cause error) *model.CallError {
	s.log.WithError(cause).Debug("platform version unavailable")
	return model.NewPlatformUnavailable(cause)
}

// normalizeVersion keeps the first whitespace-separated field, so
// "10.0.22631 Build 22631" becomes "10.0.22631".
func normalizeVersion(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
