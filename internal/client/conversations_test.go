package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

func TestConversationsClient_Create(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"channel": {"id": "C0EAQDV4Z", "name": "endeavor", "is_private": true}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Conversations().Create(context.Background(), "endeavor", true)
	require.NoError(t, err)

	assert.Equal(t, "/conversations.create", recorded.Path)
	assert.Equal(t, "endeavor", recorded.field("name"))
	assert.Equal(t, "true", recorded.field("is_private"))
	assert.Equal(t, "C0EAQDV4Z", result.Channel.ID)
	assert.True(t, result.Channel.IsPrivate)
}

func TestConversationsClient_Info(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"channel": {"id": "C012AB3CD", "name": "general", "topic": {"value": "talk about anything"}}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Conversations().Info(context.Background(), "C012AB3CD")
	require.NoError(t, err)

	assert.Equal(t, "/conversations.info", recorded.Path)
	assert.Equal(t, "C012AB3CD", recorded.field("channel"))
	assert.Equal(t, "general", result.Channel.Name)
	assert.Equal(t, "talk about anything", result.Channel.Topic.Value)
}

func TestConversationsClient_List(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"channels": [
			{"id": "C012AB3CD", "name": "general"},
			{"id": "C061EG9T2", "name": "random"}
		],
		"response_metadata": {"next_cursor": "dGVhbTpDMDYxRkE1UEI="}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Conversations().List(context.Background(), slack.Args{"limit": 2})
	require.NoError(t, err)

	assert.Equal(t, "/conversations.list", recorded.Path)
	assert.Equal(t, "2", recorded.field("limit"))
	require.Len(t, result.Channels, 2)
	assert.Equal(t, "general", result.Channels[0].Name)
	assert.Equal(t, "dGVhbTpDMDYxRkE1UEI=", result.ResponseMetadata.NextCursor)
}

func TestConversationsClient_History(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"messages": [{"type": "message", "user": "U012AB3CDE", "text": "hello", "ts": "1512085950.000216"}],
		"has_more": true
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Conversations().History(context.Background(), "C012AB3CD", slack.Args{"limit": 1})
	require.NoError(t, err)

	assert.Equal(t, "/conversations.history", recorded.Path)
	assert.Equal(t, "C012AB3CD", recorded.field("channel"))
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "hello", result.Messages[0].Text)
	assert.True(t, result.HasMore)
}

func TestConversationsClient_Invite(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true, "channel": {"id": "C012AB3CD"}}`)
	client := newTestClient(t, server.URL)

	_, err := client.Conversations().Invite(context.Background(), "C012AB3CD", []string{"W1234567890", "U2345678901"})
	require.NoError(t, err)

	assert.Equal(t, "/conversations.invite", recorded.Path)
	assert.Equal(t, "W1234567890,U2345678901", recorded.field("users"))
}

func TestConversationsClient_ChannelNotFound(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": false, "error": "channel_not_found"}`)
	client := newTestClient(t, server.URL)

	_, err := client.Conversations().Info(context.Background(), "C000000")
	require.Error(t, err)
	assert.Equal(t, "channel_not_found", slack.ErrorCode(err))
}
