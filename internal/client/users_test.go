package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

func TestUsersClient_Info(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"user": {
			"id": "W012A3CDE",
			"name": "spengler",
			"real_name": "Egon Spengler",
			"profile": {"email": "spengler@ghostbusters.example.com"}
		}
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Users().Info(context.Background(), "W012A3CDE")
	require.NoError(t, err)

	assert.Equal(t, "/users.info", recorded.Path)
	assert.Equal(t, "W012A3CDE", recorded.field("user"))
	assert.Equal(t, "spengler", result.User.Name)
	assert.Equal(t, "spengler@ghostbusters.example.com", result.User.Profile.Email)
}

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{
		"ok": true,
		"members": [{"id": "U023BECGF", "name": "bobby"}, {"id": "W07QCRPA4", "name": "glinda"}]
	}`)
	client := newTestClient(t, server.URL)

	result, err := client.Users().List(context.Background(), slack.Args{"limit": 2})
	require.NoError(t, err)

	assert.Equal(t, "/users.list", recorded.Path)
	require.Len(t, result.Members, 2)
	assert.Equal(t, "bobby", result.Members[0].Name)
}

func TestUsersClient_LookupByEmail(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true, "user": {"id": "W012A3CDE"}}`)
	client := newTestClient(t, server.URL)

	result, err := client.Users().LookupByEmail(context.Background(), "spengler@ghostbusters.example.com")
	require.NoError(t, err)

	assert.Equal(t, "/users.lookupByEmail", recorded.Path)
	assert.Equal(t, "spengler@ghostbusters.example.com", recorded.field("email"))
	assert.Equal(t, "W012A3CDE", result.User.ID)
}

func TestUsersClient_UserNotFound(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": false, "error": "users_not_found"}`)
	client := newTestClient(t, server.URL)

	_, err := client.Users().LookupByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.Equal(t, "users_not_found", slack.ErrorCode(err))
}
