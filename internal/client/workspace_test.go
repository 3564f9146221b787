package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

func TestEmojiClient_List(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"emoji": {"bowtie": "https://emoji.example/bowtie.png"}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Emoji().List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/emoji.list", recorded.Path)
	assert.Equal(t, "https://emoji.example/bowtie.png", result.Emoji["bowtie"])
}

func TestTeamClient_Info(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"team": {"id": "T12345", "name": "My Team", "domain": "example"}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Team().Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/team.info", recorded.Path)
	assert.Equal(t, "T12345", result.Team.ID)
	assert.Equal(t, "example", result.Team.Domain)
}

func TestReactionsClient_Add(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	resp, err := client.Reactions().Add(context.Background(), "thumbsup", "C1234567890", "1234567890.123456")
	require.NoError(t, err)

	assert.Equal(t, "/reactions.add", recorded.Path)
	assert.Equal(t, "thumbsup", recorded.field("name"))
	assert.Equal(t, "C1234567890", recorded.field("channel"))
	assert.Equal(t, "1234567890.123456", recorded.field("timestamp"))
	assert.True(t, resp.OK)
}

func TestReactionsClient_Remove(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.Reactions().Remove(context.Background(), "thumbsup", "C1234567890", "1234567890.123456")
	require.NoError(t, err)
	assert.Equal(t, "/reactions.remove", recorded.Path)
}

func TestReactionsClient_Get(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"type": "message",
		"channel": "C1234567890",
		"message": {"text": "so popular", "ts": "1234567890.123456"}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Reactions().Get(context.Background(), "C1234567890", "1234567890.123456")
	require.NoError(t, err)

	assert.Equal(t, "/reactions.get", recorded.Path)
	assert.Equal(t, "message", result.Type)
	assert.Equal(t, "so popular", result.Message.Text)
}

func TestAdminConversationsClient_ConvertToPrivate(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	resp, err := client.Admin().Conversations().ConvertToPrivate(context.Background(), "C1234567890")
	require.NoError(t, err)

	assert.Equal(t, "/admin.conversations.convertToPrivate", recorded.Path)
	assert.Equal(t, "C1234567890", recorded.field("channel_id"))
	assert.True(t, resp.OK)
}

func TestAdminConversationsClient_SetTeams(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.Admin().Conversations().SetTeams(context.Background(), "C1234567890", slack.Args{
		"team_id": "T1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "/admin.conversations.setTeams", recorded.Path)
	assert.Equal(t, "T1234", recorded.field("team_id"))
	assert.Equal(t, "C1234567890", recorded.field("channel_id"))
}

func TestAdminConversationsClient_RestrictedAction(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": false, "error": "restricted_action"}`)
	client := newTestClient(t, server.URL)

	_, err := client.Admin().Conversations().ConvertToPrivate(context.Background(), "C1")
	require.Error(t, err)
	assert.Equal(t, "restricted_action", slack.ErrorCode(err))
}
