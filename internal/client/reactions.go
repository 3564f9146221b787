package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// ReactionsClient implements slack.ReactionsClient.
type ReactionsClient struct {
	client *Client
}

// Add implements slack.ReactionsClient.Add.
func (c *ReactionsClient) Add(ctx context.Context, name, channel, timestamp string) (*slack.Response, error) {
	resp, err := c.client.Call(ctx, "reactions.add", slack.Args{
		"name":      name,
		"channel":   channel,
		"timestamp": timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("adding reaction: %w", err)
	}

	return resp, nil
}

// Remove implements slack.ReactionsClient.Remove.
func (c *ReactionsClient) Remove(ctx context.Context, name, channel, timestamp string) (*slack.Response, error) {
	resp, err := c.client.Call(ctx, "reactions.remove", slack.Args{
		"name":      name,
		"channel":   channel,
		"timestamp": timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("removing reaction: %w", err)
	}

	return resp, nil
}

// Get implements slack.ReactionsClient.Get.
func (c *ReactionsClient) Get(ctx context.Context, channel, timestamp string) (*slack.ReactionsGetResponse, error) {
	resp, err := c.client.Call(ctx, "reactions.get", slack.Args{
		"channel":   channel,
		"timestamp": timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("getting reactions: %w", err)
	}

	var result slack.ReactionsGetResponse

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing reactions.get response: %w", err)
	}

	return &result, nil
}
