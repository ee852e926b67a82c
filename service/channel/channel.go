// Package channel dispatches typed requests from the host application to the
// device info provider.
package channel

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/service/deviceinfo"
	"github.com/colmeia/colmeia-native/shared/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// String returns the wire name of m.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a wire name to its Method.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrMethodNotImplemented, name)
}

// Methods returns the wire names of every supported method, sorted.
func Methods() []string {
	names := make([]string, 0, len(methodNames))
	for _, n := range methodNames {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Dispatch answers req using provider. It has no side effects beyond the
// provider call.
func Dispatch(ctx context.Context, provider deviceinfo.Service, req Request) Response {
	switch req.Method {
	case MethodGetPlatformVersion:
		pv, err := provider.GetPlatformVersion(ctx)
		if err != nil {
			return Response{Method: req.Method, Err: asCallError(err)}
		}
		return Response{Method: req.Method, Value: pv.String()}
	default:
		return Response{
			Method: req.Method,
			Err:    model.NewPlatformUnavailable(fmt.Errorf("%w: %s", ErrMethodNotImplemented, req.Method)),
		}
	}
}

func asCallError(err error) *model.CallError {
	var ce *model.CallError
	if errors.As(err, &ce) {
		return ce
	}

	return model.NewPlatformUnavailable(err)
}

// Register creates the channel called name backed by provider. The host
// application calls it once during start-up. A nil logger discards output.
func Register(name string, provider deviceinfo.Service, logger logrus.FieldLogger) (*Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty channel name", ErrInvalidRegistration)
	}

	if provider == nil {
		return nil, fmt.Errorf("%w: nil provider for %q", ErrInvalidRegistration, name)
	}

	if logger == nil {
		logger = logging.Discard()
	}

	logger.WithField("channel", name).Debug("registered channel")

	return &Channel{
		name:     name,
		provider: provider,
		log:      logger,
	}, nil
}

// Name returns the registered channel name.
func (c *Channel) Name() string {
	return c.name
}

// Invoke handles one call by wire name. The returned error covers the
// boundary only: unknown methods and an expired or cancelled ctx. Provider
// failures are carried in Response.Err. Providers must return once ctx is done.
func (c *Channel) Invoke(ctx context.Context, methodName string) (Response, error) {
	method, err := ParseMethod(methodName)
	if err != nil {
		return Response{}, err
	}

	log := c.log.WithFields(logrus.Fields{"channel": c.name, "method": method.String()})
	log.Debug("invoking method")

	if err := ctx.Err(); err != nil {
		return Response{}, c.abandoned(log, method, err)
	}

	var resp Response
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp = Dispatch(gctx, c.provider, Request{Method: method})
		if !resp.OK() {
			// A failure caused by the caller giving up is not the provider's answer.
			return ctx.Err()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Response{}, c.abandoned(log, method, err)
	}

	if !resp.OK() {
		log.WithField("code", resp.Err.Code).Debug("method failed")
	}

	return resp, nil
}

func (c *Channel) abandoned(log logrus.FieldLogger, method Method, cause error) error {
	log.WithError(cause).Warn("call abandoned")
	return fmt.Errorf("%s on channel %s: %w", method, c.name, cause)
}
