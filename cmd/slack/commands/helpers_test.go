package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	args, err := parseParams([]string{"channel=general", "text=hello world", "markdown="})
	require.NoError(t, err)
	assert.Equal(t, "general", args["channel"])
	assert.Equal(t, "hello world", args["text"])
	assert.Equal(t, "", args["markdown"])
}

func TestParseParams_ValueContainsEquals(t *testing.T) {
	t.Parallel()

	args, err := parseParams([]string{"text=a=b=c"})
	require.NoError(t, err)
	assert.Equal(t, "a=b=c", args["text"])
}

func TestParseParams_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pair string
	}{
		{"missing separator", "channel"},
		{"empty key", "=value"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseParams([]string{tt.pair})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParamFormat)
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", formatCell("hello"))
	assert.Equal(t, "true", formatCell(true))
	assert.Equal(t, "42", formatCell(float64(42)))
	assert.Equal(t, NotAvailable, formatCell(nil))
	assert.Equal(t, `["a","b"]`, formatCell([]interface{}{"a", "b"}))
}

func TestApplyConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, applyConfigValue(config, "api", "https://example.com/api"))
	require.NoError(t, applyConfigValue(config, "token", "xoxb-test"))
	require.NoError(t, applyConfigValue(config, "output", "json"))

	assert.Equal(t, "https://example.com/api", config.API)
	assert.Equal(t, "xoxb-test", config.Token)
	assert.Equal(t, "json", config.Output)

	err := applyConfigValue(config, "color", "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownConfigKey)
}

func TestYesNo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
