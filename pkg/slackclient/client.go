// Package slackclient provides the entry point for creating Slack Web API clients.
package slackclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/slacktime-io/slack-client/internal/client"
	"github.com/slacktime-io/slack-client/internal/constants"
	"github.com/slacktime-io/slack-client/pkg/slack"
)

// New creates a new Slack Web API client. The config's Token is required;
// everything else defaults sensibly (public API root, 10 second timeout, no
// retries). The config is copied, so later mutation by the caller has no
// effect on the client.
func New(config *slack.Config) (slack.Client, error) {
	if config == nil {
		return nil, &slack.ConfigurationError{Field: "config", Reason: "config is required"}
	}

	cfg := *config
	cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)

	cli, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewFromToken creates a client from a bare token with default configuration.
func NewFromToken(token string) (slack.Client, error) {
	return New(&slack.Config{Token: token})
}

// NewFromEnv creates a client whose token is read from the named environment
// variable. An empty envVar means the default, SLACK_API_TOKEN. When the
// variable is unset or empty, construction fails with a ConfigurationError
// before any network call is attempted.
func NewFromEnv(envVar string, config *slack.Config) (slack.Client, error) {
	if envVar == "" {
		envVar = constants.DefaultEnvVar
	}

	token := os.Getenv(envVar)
	if token == "" {
		return nil, &slack.ConfigurationError{
			Field:  envVar,
			Reason: "environment variable is not set",
		}
	}

	var cfg slack.Config
	if config != nil {
		cfg = *config
	}

	cfg.Token = token

	return New(&cfg)
}

// normalizeBaseURL trims a trailing slash and adds https:// when no scheme is
// present. An empty value falls through to the client default.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
