package slack

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Args holds the named parameters of one Web API call, keyed by the remote
// parameter name. Values are rendered as form fields: strings, booleans, and
// numbers are formatted directly; anything implementing io.Reader (including
// File) switches the whole request to multipart encoding; other values are
// serialized as JSON, which is what the service expects for structured
// parameters such as "blocks" or "attachments".
type Args map[string]interface{}

// File is an upload payload: a reader plus the filename reported to the
// service. Whether a value triggers multipart encoding is a capability check
// (does it read?), never a type-name check, and plain string paths are never
// opened implicitly.
type File struct {
	// Name is the filename sent in the multipart part header.
	Name string

	// Reader supplies the file content.
	Reader io.Reader
}

// Read implements io.Reader.
func (f File) Read(p []byte) (int, error) {
	return f.Reader.Read(p)
}

// Config represents client configuration for building a slack.Client.
//
// Token is the only required field. All other fields have working defaults:
// BaseURL defaults to the public Web API root, Timeout to 10 seconds, and
// retries are disabled so every call maps to exactly one HTTP request.
// Config is copied at construction time and never mutated afterwards.
type Config struct {
	// Token is the Bearer token attached to every request (required).
	Token string

	// BaseURL overrides the Web API root, mainly for tests and proxies.
	// Normalized by slackclient.New (trailing slash trimmed, https:// added
	// when no scheme is present).
	BaseURL string

	// HTTPClient optionally supplies the underlying *http.Client. When nil a
	// fresh one is created. Sharing a client across slack.Client instances is
	// safe as long as the http.Client itself is.
	HTTPClient *http.Client

	// Proxies maps URL scheme ("http", "https") to a proxy URL. Ignored when
	// HTTPClient is supplied, since the transport is then caller-owned.
	Proxies map[string]string

	// Timeout bounds each request. Zero means the default of 10 seconds.
	Timeout time.Duration

	// RetryMax is the maximum number of retries for transient failures. The
	// default of 0 disables retries entirely.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables verbose request/response logging when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the transport layer.
	Logger Logger

	// Cache optionally enables response caching for the read-only methods the
	// client marks cacheable. Nil disables caching.
	Cache *CacheConfig

	// Interceptors optionally hook into every call. When Debug is set and a
	// Logger is present, logging interceptors are installed automatically.
	Interceptors *InterceptorChain
}

// Caller executes one Web API method call. It is the narrow interface the
// Namespace builder needs; Client embeds it.
type Caller interface {
	// Call POSTs to baseURL/<dotPath> with args as the request body. dotPath
	// segments may be written in snake_case or camelCase.
	Call(ctx context.Context, dotPath string, args Args) (*Response, error)

	// CallGet issues the same method as a GET with args as query parameters.
	// Args containing readers are rejected; uploads always go through Call.
	CallGet(ctx context.Context, dotPath string, args Args) (*Response, error)
}

// CoreClients provides access to the everyday namespace clients.
type CoreClients interface {
	Auth() AuthClient
	Chat() ChatClient
	Conversations() ConversationsClient
	Users() UsersClient
	Files() FilesClient
}

// WorkspaceClients provides access to workspace-wide namespace clients.
type WorkspaceClients interface {
	Team() TeamClient
	Emoji() EmojiClient
	Reactions() ReactionsClient
	Admin() AdminClient
}

// Client is the root of the method catalog: a Caller with an empty
// accumulated path, plus the typed namespace clients layered on top.
type Client interface {
	Caller
	CoreClients
	WorkspaceClients

	// Namespace descends into the catalog, one segment per argument. The
	// returned node is immutable; each further descent allocates a new node.
	Namespace(segments ...string) *Namespace

	// BaseURL returns the normalized Web API root this client targets.
	BaseURL() string
}
