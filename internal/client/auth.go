package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// AuthClient implements slack.AuthClient.
type AuthClient struct {
	client *Client
}

// Test implements slack.AuthClient.Test.
func (c *AuthClient) Test(ctx context.Context) (*slack.AuthTest, error) {
	resp, err := c.client.Call(ctx, "auth.test", nil)
	if err != nil {
		return nil, fmt.Errorf("testing auth: %w", err)
	}

	var result slack.AuthTest

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing auth.test response: %w", err)
	}

	return &result, nil
}

// Revoke implements slack.AuthClient.Revoke.
func (c *AuthClient) Revoke(ctx context.Context, test bool) (*slack.AuthRevoke, error) {
	args := slack.Args{}
	if test {
		args["test"] = true
	}

	resp, err := c.client.Call(ctx, "auth.revoke", args)
	if err != nil {
		return nil, fmt.Errorf("revoking token: %w", err)
	}

	var result slack.AuthRevoke

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing auth.revoke response: %w", err)
	}

	return &result, nil
}
