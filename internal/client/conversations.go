package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// ConversationsClient implements slack.ConversationsClient.
type ConversationsClient struct {
	client *Client
}

// Create implements slack.ConversationsClient.Create.
func (c *ConversationsClient) Create(ctx context.Context, name string, isPrivate bool) (*slack.ChannelResponse, error) {
	resp, err := c.client.Call(ctx, "conversations.create", slack.Args{
		"name":       name,
		"is_private": isPrivate,
	})
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	return decodeChannelResponse(resp, "conversations.create")
}

// Info implements slack.ConversationsClient.Info.
func (c *ConversationsClient) Info(ctx context.Context, channel string) (*slack.ChannelResponse, error) {
	resp, err := c.client.Call(ctx, "conversations.info", slack.Args{"channel": channel})
	if err != nil {
		return nil, fmt.Errorf("getting conversation info: %w", err)
	}

	return decodeChannelResponse(resp, "conversations.info")
}

// List implements slack.ConversationsClient.List.
func (c *ConversationsClient) List(ctx context.Context, args slack.Args) (*slack.ChannelList, error) {
	resp, err := c.client.Call(ctx, "conversations.list", args)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}

	var result slack.ChannelList

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing conversations.list response: %w", err)
	}

	return &result, nil
}

// History implements slack.ConversationsClient.History.
func (c *ConversationsClient) History(ctx context.Context, channel string, args slack.Args) (*slack.HistoryResponse, error) {
	merged := mergeArgs(args, slack.Args{"channel": channel})

	resp, err := c.client.Call(ctx, "conversations.history", merged)
	if err != nil {
		return nil, fmt.Errorf("getting conversation history: %w", err)
	}

	var result slack.HistoryResponse

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing conversations.history response: %w", err)
	}

	return &result, nil
}

// Invite implements slack.ConversationsClient.Invite.
func (c *ConversationsClient) Invite(ctx context.Context, channel string, users []string) (*slack.ChannelResponse, error) {
	resp, err := c.client.Call(ctx, "conversations.invite", slack.Args{
		"channel": channel,
		"users":   strings.Join(users, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("inviting users: %w", err)
	}

	return decodeChannelResponse(resp, "conversations.invite")
}

func decodeChannelResponse(resp *slack.Response, method string) (*slack.ChannelResponse, error) {
	var result slack.ChannelResponse

	err := resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", method, err)
	}

	return &result, nil
}
