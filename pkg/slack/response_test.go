package slack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

func TestNewResponse(t *testing.T) {
	t.Parallel()

	body := []byte(`{"ok": true, "warning": "missing_charset", "response_metadata": {"next_cursor": "dXNlcjpVMDYx"}}`)

	resp, err := slack.NewResponse(body)
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "missing_charset", resp.Warning)
	assert.Equal(t, "dXNlcjpVMDYx", resp.ResponseMetadata.NextCursor)
}

func TestNewResponse_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := slack.NewResponse([]byte("<html>not json</html>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response body")
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	body := []byte(`{"ok": true, "channel": "C123", "ts": "1618033988.749"}`)

	resp, err := slack.NewResponse(body)
	require.NoError(t, err)

	var msg slack.MessageResponse

	require.NoError(t, resp.Decode(&msg))
	assert.True(t, msg.OK)
	assert.Equal(t, "C123", msg.Channel)
	assert.Equal(t, "1618033988.749", msg.TS)
}

func TestResponse_Raw(t *testing.T) {
	t.Parallel()

	resp, err := slack.NewResponse([]byte(`{"ok": true, "team": {"id": "T123"}}`))
	require.NoError(t, err)

	raw, err := resp.Raw()
	require.NoError(t, err)
	assert.Equal(t, true, raw["ok"])

	team, ok := raw["team"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "T123", team["id"])
}
