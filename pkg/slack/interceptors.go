package slack

import (
	"context"
	"fmt"
	"time"
)

// CallInfo describes one Web API call before it is sent.
type CallInfo struct {
	// Method is the camelCase dot-path, e.g. "chat.postMessage".
	Method string

	// Verb is the HTTP verb used ("POST" or "GET").
	Verb string

	// Multipart reports whether the call carries a file payload.
	Multipart bool
}

// CallResult describes the outcome of one Web API call.
type CallResult struct {
	StatusCode int
	Err        error
	Elapsed    time.Duration
}

// RequestInterceptor is called before a call is sent. Returning an error
// aborts the call.
type RequestInterceptor func(ctx context.Context, info *CallInfo) error

// ResponseInterceptor is called after a call completes, whether it succeeded
// or not.
type ResponseInterceptor func(ctx context.Context, info *CallInfo, result *CallResult) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, info *CallInfo) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, info)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, info *CallInfo, result *CallResult) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, info, result)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs outgoing calls.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, info *CallInfo) error {
		logger.Debug("API Request", map[string]interface{}{
			"method":    info.Method,
			"verb":      info.Verb,
			"multipart": info.Multipart,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs completed calls.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, info *CallInfo, result *CallResult) error {
		fields := map[string]interface{}{
			"method":      info.Method,
			"status_code": result.StatusCode,
			"elapsed_ms":  result.Elapsed.Milliseconds(),
		}

		if result.Err != nil {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// RateLimitInterceptor implements simple client-side rate limiting.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	bucket := make(chan struct{}, requestsPerSecond)

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(requestsPerSecond))
		defer ticker.Stop()

		for range ticker.C {
			select {
			case <-bucket:
			default:
			}
		}
	}()

	return func(ctx context.Context, info *CallInfo) error {
		select {
		case bucket <- struct{}{}:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("rate limit wait cancelled: %w", ctx.Err())
		}
	}
}
