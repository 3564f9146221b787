package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// AdminClient implements slack.AdminClient.
type AdminClient struct {
	client *Client
}

// Conversations implements slack.AdminClient.Conversations.
func (c *AdminClient) Conversations() slack.AdminConversationsClient {
	return &AdminConversationsClient{client: c.client}
}

// AdminConversationsClient implements slack.AdminConversationsClient.
type AdminConversationsClient struct {
	client *Client
}

// ConvertToPrivate implements slack.AdminConversationsClient.ConvertToPrivate.
func (c *AdminConversationsClient) ConvertToPrivate(ctx context.Context, channelID string) (*slack.Response, error) {
	resp, err := c.client.Call(ctx, "admin.conversations.convert_to_private", slack.Args{
		"channel_id": channelID,
	})
	if err != nil {
		return nil, fmt.Errorf("converting conversation to private: %w", err)
	}

	return resp, nil
}

// SetTeams implements slack.AdminConversationsClient.SetTeams.
func (c *AdminConversationsClient) SetTeams(ctx context.Context, channelID string, args slack.Args) (*slack.Response, error) {
	merged := mergeArgs(args, slack.Args{"channel_id": channelID})

	resp, err := c.client.Call(ctx, "admin.conversations.set_teams", merged)
	if err != nil {
		return nil, fmt.Errorf("setting conversation teams: %w", err)
	}

	return resp, nil
}
