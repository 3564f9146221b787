package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/slacktime-io/slack-client/internal/constants"
	"github.com/slacktime-io/slack-client/pkg/slack"
	"github.com/slacktime-io/slack-client/pkg/slackclient"
)

// NotAvailable is rendered when a table cell has no value.
const NotAvailable = "N/A"

// Common static errors used throughout the commands package.
var (
	ErrTokenNotConfigured = errors.New("no token configured: run 'slack login' or set SLACK_API_TOKEN")
	ErrInvalidParamFormat = errors.New("invalid parameter format, expected key=value")
	ErrInvalidFileFormat  = errors.New("invalid file format, expected field=path")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyToken         = errors.New("token must not be empty")
)

// createClient builds a Web API client from the effective configuration: the
// --token flag or config file when set, the environment variable otherwise.
func createClient() (slack.Client, error) {
	cfg := &slack.Config{
		BaseURL: viper.GetString("api"),
		Debug:   viper.GetBool("verbose"),
	}

	token := viper.GetString("token")
	if token == "" {
		client, err := slackclient.NewFromEnv("", cfg)
		if err != nil {
			if slack.IsConfigurationError(err) {
				return nil, ErrTokenNotConfigured
			}

			return nil, fmt.Errorf("failed to create client: %w", err)
		}

		return client, nil
	}

	cfg.Token = token

	client, err := slackclient.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parseParams converts repeated key=value flags into call arguments.
func parseParams(pairs []string) (slack.Args, error) {
	args := make(slack.Args, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", constants.KeyValueSplitParts)
		if len(parts) != constants.KeyValueSplitParts || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParamFormat, pair)
		}

		args[parts[0]] = parts[1]
	}

	return args, nil
}

// renderObject writes data to stdout in the configured output format. Table
// output is produced by the provided renderer; nil falls back to renderRawTable
// via a JSON round trip.
func renderObject(data interface{}, renderTable func() error) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding response to JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding response to YAML: %w", err)
		}

		return nil
	default:
		if renderTable != nil {
			return renderTable()
		}

		return renderGenericTable(data)
	}
}

// renderGenericTable renders any JSON-encodable value as a two-column table.
func renderGenericTable(data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}

	var fields map[string]interface{}

	err = json.Unmarshal(encoded, &fields)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return renderRawTable(fields)
}

// renderRawTable renders a generic response mapping with sorted keys.
func renderRawTable(fields map[string]interface{}) error {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for _, key := range keys {
		err := table.Append(key, formatCell(fields[key]))
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatCell renders a single response value for table output. Nested
// structures collapse to compact JSON.
func formatCell(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return NotAvailable
	case string:
		return typed
	case bool, float64:
		return fmt.Sprintf("%v", typed)
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}

		return string(encoded)
	}
}

// yesNo renders a boolean for table output.
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
