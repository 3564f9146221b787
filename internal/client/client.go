// Package client implements the slack.Client interface: the generic dot-path
// dispatcher plus the typed namespace clients layered on top of it.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/slacktime-io/slack-client/internal/constants"
	"github.com/slacktime-io/slack-client/internal/transport"
	"github.com/slacktime-io/slack-client/pkg/slack"
)

// Client implements the slack.Client interface.
type Client struct {
	httpClient   *transport.Client
	baseURL      string
	logger       slack.Logger
	interceptors *slack.InterceptorChain

	cache     slack.Cache
	cacheTTL  time.Duration
	cacheable map[string]bool

	// Namespace clients
	auth          slack.AuthClient
	chat          slack.ChatClient
	conversations slack.ConversationsClient
	users         slack.UsersClient
	files         slack.FilesClient
	reactions     slack.ReactionsClient
	emoji         slack.EmojiClient
	team          slack.TeamClient
	admin         slack.AdminClient
}

// New creates a concrete client from an already-normalized config. Token
// validation happens here so that no constructor path can reach the network
// without one.
func New(config *slack.Config) (*Client, error) {
	if config == nil {
		return nil, &slack.ConfigurationError{Field: "config", Reason: "config is required"}
	}

	if config.Token == "" {
		return nil, &slack.ConfigurationError{Field: "token", Reason: "token must not be empty"}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient, err := transport.NewClient(baseURL, config.Token, transport.Options{
		HTTPClient:   config.HTTPClient,
		Proxies:      config.Proxies,
		Timeout:      config.Timeout,
		RetryMax:     config.RetryMax,
		RetryWaitMin: config.RetryWaitMin,
		RetryWaitMax: config.RetryWaitMax,
		UserAgent:    config.UserAgent,
		Logger:       config.Logger,
		Debug:        config.Debug,
	})
	if err != nil {
		return nil, &slack.ConfigurationError{Field: "proxies", Reason: err.Error()}
	}

	client := &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		logger:       config.Logger,
		interceptors: config.Interceptors,
	}

	if client.interceptors == nil {
		client.interceptors = slack.NewInterceptorChain()
	}

	if config.Debug && config.Logger != nil {
		client.interceptors.AddRequestInterceptor(slack.LoggingInterceptor(config.Logger))
		client.interceptors.AddResponseInterceptor(slack.LoggingResponseInterceptor(config.Logger))
	}

	err = client.initializeCache(config.Cache)
	if err != nil {
		return nil, err
	}

	client.initializeNamespaceClients()

	return client, nil
}

func (c *Client) initializeCache(config *slack.CacheConfig) error {
	if config == nil {
		return nil
	}

	cache, err := slack.NewCacheFromConfig(config)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	methods := config.Methods
	if len(methods) == 0 {
		methods = slack.DefaultCacheableMethods()
	}

	ttl := config.TTL
	if ttl == 0 {
		ttl = constants.DefaultCacheTTL
	}

	c.cache = cache
	c.cacheTTL = ttl
	c.cacheable = make(map[string]bool, len(methods))

	for _, method := range methods {
		c.cacheable[slack.CamelPath(method)] = true
	}

	return nil
}

func (c *Client) initializeNamespaceClients() {
	c.auth = &AuthClient{client: c}
	c.chat = &ChatClient{client: c}
	c.conversations = &ConversationsClient{client: c}
	c.users = &UsersClient{client: c}
	c.files = &FilesClient{client: c}
	c.reactions = &ReactionsClient{client: c}
	c.emoji = &EmojiClient{client: c}
	c.team = &TeamClient{client: c}
	c.admin = &AdminClient{client: c}
}

// BaseURL implements slack.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Namespace implements slack.Client.Namespace.
func (c *Client) Namespace(segments ...string) *slack.Namespace {
	return slack.NewNamespace(c, segments...)
}

// Call implements slack.Caller.Call.
func (c *Client) Call(ctx context.Context, dotPath string, args slack.Args) (*slack.Response, error) {
	return c.call(ctx, http.MethodPost, dotPath, args)
}

// CallGet implements slack.Caller.CallGet.
func (c *Client) CallGet(ctx context.Context, dotPath string, args slack.Args) (*slack.Response, error) {
	return c.call(ctx, http.MethodGet, dotPath, args)
}

func (c *Client) call(ctx context.Context, verb, dotPath string, args slack.Args) (*slack.Response, error) {
	if dotPath == "" {
		return nil, fmt.Errorf("calling web API: %w", slack.ErrMethodRequired)
	}

	method := slack.CamelPath(dotPath)

	params, files, err := flattenArgs(args)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}

	if verb == http.MethodGet && len(files) > 0 {
		return nil, fmt.Errorf("calling %s: file payloads require POST", method)
	}

	if resp, ok := c.cachedResponse(ctx, method, args, files); ok {
		return resp, nil
	}

	info := &slack.CallInfo{Method: method, Verb: verb, Multipart: len(files) > 0}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, info)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(ctx, &transport.Request{
		Verb:   verb,
		Method: method,
		Params: params,
		Files:  files,
	})

	result := &slack.CallResult{Err: err, Elapsed: time.Since(start)}
	if httpResp != nil {
		result.StatusCode = httpResp.StatusCode
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, info, result)

	if err != nil {
		return nil, err
	}

	if interceptErr != nil {
		return nil, interceptErr
	}

	resp, err := c.interpretResponse(method, httpResp)
	if err != nil {
		return nil, err
	}

	c.storeResponse(ctx, method, args, files, resp)

	return resp, nil
}

// interpretResponse decodes the body and turns service-level rejections
// (ok=false) into *slack.APIError with the remote code preserved verbatim.
func (c *Client) interpretResponse(method string, httpResp *transport.Response) (*slack.Response, error) {
	resp, err := slack.NewResponse(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("calling %s: unexpected response (status %d): %w",
			method, httpResp.StatusCode, err)
	}

	if !resp.OK {
		apiErr := &slack.APIError{
			Code:     resp.Error,
			Method:   method,
			Warnings: resp.ResponseMetadata.Warnings,
		}
		if resp.Warning != "" {
			apiErr.Warnings = append(apiErr.Warnings, resp.Warning)
		}

		return nil, apiErr
	}

	return resp, nil
}

func (c *Client) cachedResponse(ctx context.Context, method string, args slack.Args, files map[string]slack.File) (*slack.Response, bool) {
	if c.cache == nil || !c.cacheable[method] || len(files) > 0 {
		return nil, false
	}

	entry, err := c.cache.Get(ctx, slack.CacheKey(method, args))
	if err != nil {
		return nil, false
	}

	resp, err := slack.NewResponse(entry.Data)
	if err != nil {
		return nil, false
	}

	return resp, true
}

func (c *Client) storeResponse(ctx context.Context, method string, args slack.Args, files map[string]slack.File, resp *slack.Response) {
	if c.cache == nil || !c.cacheable[method] || len(files) > 0 {
		return
	}

	err := c.cache.Set(ctx, slack.CacheKey(method, args), &slack.CacheEntry{
		Data:      resp.Bytes(),
		ExpiresAt: time.Now().Add(c.cacheTTL),
	})
	if err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{
			"method": method,
			"error":  err.Error(),
		})
	}
}

// flattenArgs renders args into form parameters and file payloads. A value
// is a file payload iff it can be read from; everything else becomes text.
func flattenArgs(args slack.Args) (map[string]string, map[string]slack.File, error) {
	params := make(map[string]string, len(args))

	var files map[string]slack.File

	addFile := func(key string, file slack.File) {
		if files == nil {
			files = make(map[string]slack.File)
		}

		files[key] = file
	}

	for key, value := range args {
		switch v := value.(type) {
		case nil:
			continue
		case slack.File:
			if v.Reader == nil {
				return nil, nil, fmt.Errorf("argument %q: %w", key, slack.ErrFileRequired)
			}

			addFile(key, v)
		case *slack.File:
			if v == nil || v.Reader == nil {
				return nil, nil, fmt.Errorf("argument %q: %w", key, slack.ErrFileRequired)
			}

			addFile(key, *v)
		case string:
			params[key] = v
		case bool:
			params[key] = strconv.FormatBool(v)
		case int:
			params[key] = strconv.Itoa(v)
		case int64:
			params[key] = strconv.FormatInt(v, 10)
		case float64:
			params[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case fmt.Stringer:
			params[key] = v.String()
		default:
			if reader, ok := value.(interface{ Read([]byte) (int, error) }); ok {
				addFile(key, slack.File{Name: key, Reader: reader})

				continue
			}

			// Structured values (blocks, attachments, ...) travel as JSON text.
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, nil, fmt.Errorf("argument %q: %w", key, err)
			}

			params[key] = string(encoded)
		}
	}

	return params, files, nil
}
