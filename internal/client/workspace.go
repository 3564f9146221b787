package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// EmojiClient implements slack.EmojiClient.
type EmojiClient struct {
	client *Client
}

// List implements slack.EmojiClient.List.
func (c *EmojiClient) List(ctx context.Context) (*slack.EmojiList, error) {
	resp, err := c.client.Call(ctx, "emoji.list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing emoji: %w", err)
	}

	var result slack.EmojiList

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing emoji.list response: %w", err)
	}

	return &result, nil
}

// TeamClient implements slack.TeamClient.
type TeamClient struct {
	client *Client
}

// Info implements slack.TeamClient.Info.
func (c *TeamClient) Info(ctx context.Context) (*slack.TeamResponse, error) {
	resp, err := c.client.Call(ctx, "team.info", nil)
	if err != nil {
		return nil, fmt.Errorf("getting team info: %w", err)
	}

	var result slack.TeamResponse

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing team.info response: %w", err)
	}

	return &result, nil
}
