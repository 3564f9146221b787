package slack

import (
	"errors"
	"fmt"

	"github.com/slacktime-io/slack-client/internal/constants"
)

// APIError represents a call that reached the service but was rejected by it:
// the response body carried a falsy "ok" indicator. Code preserves the remote
// "error" string verbatim so callers can branch on it.
type APIError struct {
	// Code is the remote error code, e.g. "invalid_auth" or "channel_not_found".
	Code string

	// Method is the camelCase dot-path of the rejected method.
	Method string

	// Warnings holds any "warning" values the service attached to the response.
	Warnings []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("slack: %s failed with %q (see %s/%s#errors)",
		e.Method, e.Code, constants.MethodDocURL, e.Method)
}

// ConfigurationError represents missing or invalid configuration detected at
// construction time, before any network call is attempted.
type ConfigurationError struct {
	// Field names the offending configuration field or environment variable.
	Field string

	// Reason describes what was wrong with it.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("slack: configuration error: %s: %s", e.Field, e.Reason)
}

// TransportError represents a network-level failure: the request never
// produced a response from the service. The underlying error is preserved.
type TransportError struct {
	// Method is the camelCase dot-path of the attempted method.
	Method string

	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("slack: %s: transport failure: %v", e.Method, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrTokenRequired     = errors.New("token is required")
	ErrMethodRequired    = errors.New("method path is required")
	ErrFileRequired      = errors.New("file content is required")
	ErrInvalidProxyURL   = errors.New("invalid proxy URL")
	ErrCacheDisabled     = errors.New("cache disabled")
	ErrCacheKeyNotFound  = errors.New("key not found in cache")
	ErrCacheEntryTooBig  = errors.New("cache entry exceeds maximum size")
	ErrNATSConfigMissing = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCache  = errors.New("unsupported cache type")
)

// IsAPIError reports whether err is (or wraps) a service-level rejection, and
// if so returns it.
func IsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsConfigurationError reports whether err is (or wraps) a configuration error.
func IsConfigurationError(err error) bool {
	confErr := &ConfigurationError{}

	return errors.As(err, &confErr)
}

// IsTransportError reports whether err is (or wraps) a network-level failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// ErrorCode returns the remote error code carried by err, or "" when err is
// not a service-level rejection.
func ErrorCode(err error) string {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Code
	}

	return ""
}
