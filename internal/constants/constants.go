package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Web API defaults.
const (
	// DefaultBaseURL is the root of the Slack Web API.
	DefaultBaseURL = "https://slack.com/api"

	// MethodDocURL is the root of the per-method documentation pages.
	MethodDocURL = "https://api.slack.com/methods"

	// DefaultEnvVar is the environment variable consulted by the
	// convenience constructor when no token is supplied explicitly.
	DefaultEnvVar = "SLACK_API_TOKEN"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for Web API requests.
	DefaultHTTPTimeout = 10 * time.Second

	// UploadHTTPTimeout is used for file upload operations.
	UploadHTTPTimeout = 60 * time.Second
)

// Retry limits. Retries are off by default; every call maps to exactly
// one HTTP request unless the caller opts in.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 100

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80
)

// Cache sizing.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
