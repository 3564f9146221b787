package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// UsersClient implements slack.UsersClient.
type UsersClient struct {
	client *Client
}

// Info implements slack.UsersClient.Info.
func (c *UsersClient) Info(ctx context.Context, user string) (*slack.UserResponse, error) {
	resp, err := c.client.Call(ctx, "users.info", slack.Args{"user": user})
	if err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}

	return decodeUserResponse(resp, "users.info")
}

// List implements slack.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, args slack.Args) (*slack.UserList, error) {
	resp, err := c.client.Call(ctx, "users.list", args)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var result slack.UserList

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing users.list response: %w", err)
	}

	return &result, nil
}

// LookupByEmail implements slack.UsersClient.LookupByEmail.
func (c *UsersClient) LookupByEmail(ctx context.Context, email string) (*slack.UserResponse, error) {
	resp, err := c.client.Call(ctx, "users.lookup_by_email", slack.Args{"email": email})
	if err != nil {
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}

	return decodeUserResponse(resp, "users.lookupByEmail")
}

func decodeUserResponse(resp *slack.Response, method string) (*slack.UserResponse, error) {
	var result slack.UserResponse

	err := resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", method, err)
	}

	return &result, nil
}
