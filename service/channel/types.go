package channel

import (
	"errors"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/service/deviceinfo"
	"github.com/sirupsen/logrus"
)

// DefaultName is the channel name the host application registers.
const DefaultName = "colmeia_native"

// Method is a request the channel understands.
type Method int

const (
	// MethodGetPlatformVersion asks for "<PlatformName> <VersionNumber>".
	MethodGetPlatformVersion Method = iota + 1
)

var methodNames = map[Method]string{
	MethodGetPlatformVersion: "getPlatformVersion",
}

var (
	// ErrMethodNotImplemented is returned for method names the channel does not know.
	ErrMethodNotImplemented = errors.New("method not implemented")
	// ErrInvalidRegistration is returned by Register for an empty name or nil provider.
	ErrInvalidRegistration = errors.New("invalid channel registration")
)

// Request is a single inbound call.
type Request struct {
	Method Method
}

// Response is the answer to one Request. Exactly one of Value and Err is set.
type Response struct {
	Method Method
	Value  string
	Err    *model.CallError
}

// OK reports whether the call succeeded.
func (r Response) OK() bool {
	return r.Err == nil
}

// Channel connects a named endpoint to a DeviceInfoProvider.
type Channel struct {
	name     string
	provider deviceinfo.Service
	log      logrus.FieldLogger
}
