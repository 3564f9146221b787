// Package transport implements the HTTP layer of the Slack Web API client:
// URL construction, bearer authentication, payload encoding (form vs
// multipart), and proxy/timeout wiring. Response-body interpretation lives
// one level up, in internal/client.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/slacktime-io/slack-client/internal/constants"
	"github.com/slacktime-io/slack-client/pkg/slack"
)

// Request represents one Web API invocation at the wire level.
type Request struct {
	// Verb is the HTTP verb, http.MethodPost or http.MethodGet.
	Verb string

	// Method is the camelCase dot-path appended to the base URL.
	Method string

	// Params are the flattened named parameters.
	Params map[string]string

	// Files maps form field names to upload payloads. Non-empty Files forces
	// multipart encoding regardless of Verb.
	Files map[string]slack.File
}

// Response is the raw HTTP outcome of a request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Options configures a transport Client.
type Options struct {
	HTTPClient   *http.Client
	Proxies      map[string]string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	UserAgent    string
	Logger       slack.Logger
	Debug        bool
}

// Client performs authenticated HTTP requests against the Web API.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     slack.Logger
	debug      bool
}

// NewClient creates a transport client. baseURL must already be normalized
// (scheme present, no trailing slash).
func NewClient(baseURL, token string, opts Options) (*Client, error) {
	inner := opts.HTTPClient
	if inner == nil {
		httpTransport, err := buildTransport(opts.Proxies)
		if err != nil {
			return nil, err
		}

		timeout := opts.Timeout
		if timeout == 0 {
			timeout = constants.DefaultHTTPTimeout
		}

		inner = &http.Client{
			Timeout:   timeout,
			Transport: httpTransport,
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = inner
	retryClient.RetryMax = opts.RetryMax
	retryClient.Logger = nil

	if opts.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = opts.RetryWaitMin
	}

	if opts.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = opts.RetryWaitMax
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "slack-client-go"
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: retryClient,
		userAgent:  userAgent,
		logger:     opts.Logger,
		debug:      opts.Debug,
	}, nil
}

// buildTransport wires an optional scheme->proxy mapping into an
// http.Transport. Schemes not in the map fall back to the environment.
func buildTransport(proxies map[string]string) (*http.Transport, error) {
	if len(proxies) == 0 {
		return http.DefaultTransport.(*http.Transport).Clone(), nil
	}

	parsed := make(map[string]*url.URL, len(proxies))

	for scheme, raw := range proxies {
		proxyURL, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", slack.ErrInvalidProxyURL, raw, err)
		}

		parsed[scheme] = proxyURL
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpTransport.Proxy = func(req *http.Request) (*url.URL, error) {
		if proxyURL, ok := parsed[req.URL.Scheme]; ok {
			return proxyURL, nil
		}

		return http.ProxyFromEnvironment(req)
	}

	return httpTransport, nil
}

// BaseURL returns the Web API root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes exactly one Web API request (retries are off unless the caller
// opted in at construction). Network-level failures come back as
// *slack.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	targetURL := c.baseURL + "/" + req.Method

	var (
		httpReq *retryablehttp.Request
		err     error
	)

	switch {
	case len(req.Files) > 0:
		httpReq, err = c.newMultipartRequest(ctx, targetURL, req)
	case req.Verb == http.MethodGet:
		httpReq, err = c.newQueryRequest(ctx, targetURL, req)
	default:
		httpReq, err = c.newFormRequest(ctx, targetURL, req)
	}

	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP request", map[string]interface{}{
			"url":  targetURL,
			"verb": req.Verb,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &slack.TransportError{Method: req.Method, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &slack.TransportError{Method: req.Method, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP response", map[string]interface{}{
			"url":         targetURL,
			"status_code": httpResp.StatusCode,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) newFormRequest(ctx context.Context, targetURL string, req *Request) (*retryablehttp.Request, error) {
	form := url.Values{}
	for key, value := range req.Params {
		form.Set(key, value)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Verb, targetURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return httpReq, nil
}

func (c *Client) newQueryRequest(ctx context.Context, targetURL string, req *Request) (*retryablehttp.Request, error) {
	query := url.Values{}
	for key, value := range req.Params {
		query.Set(key, value)
	}

	if len(query) > 0 {
		targetURL += "?" + query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return httpReq, nil
}

func (c *Client) newMultipartRequest(ctx context.Context, targetURL string, req *Request) (*retryablehttp.Request, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for key, value := range req.Params {
		err := writer.WriteField(key, value)
		if err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	for field, file := range req.Files {
		name := file.Name
		if name == "" {
			name = field
		}

		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			return nil, fmt.Errorf("creating form file %q: %w", field, err)
		}

		_, err = io.Copy(part, file.Reader)
		if err != nil {
			return nil, fmt.Errorf("copying file content %q: %w", field, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, targetURL, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	return httpReq, nil
}
