package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// ChatClient implements slack.ChatClient. The channel parameter of each
// method is the primary payload argument of the corresponding Web API method.
type ChatClient struct {
	client *Client
}

// PostMessage implements slack.ChatClient.PostMessage.
func (c *ChatClient) PostMessage(ctx context.Context, channel string, args slack.Args) (*slack.MessageResponse, error) {
	merged := mergeArgs(args, slack.Args{"channel": channel})

	resp, err := c.client.Call(ctx, "chat.post_message", merged)
	if err != nil {
		return nil, fmt.Errorf("posting message: %w", err)
	}

	return decodeMessageResponse(resp, "chat.postMessage")
}

// Update implements slack.ChatClient.Update.
func (c *ChatClient) Update(ctx context.Context, channel, timestamp string, args slack.Args) (*slack.MessageResponse, error) {
	merged := mergeArgs(args, slack.Args{"channel": channel, "ts": timestamp})

	resp, err := c.client.Call(ctx, "chat.update", merged)
	if err != nil {
		return nil, fmt.Errorf("updating message: %w", err)
	}

	return decodeMessageResponse(resp, "chat.update")
}

// Delete implements slack.ChatClient.Delete.
func (c *ChatClient) Delete(ctx context.Context, channel, timestamp string) (*slack.MessageResponse, error) {
	resp, err := c.client.Call(ctx, "chat.delete", slack.Args{"channel": channel, "ts": timestamp})
	if err != nil {
		return nil, fmt.Errorf("deleting message: %w", err)
	}

	return decodeMessageResponse(resp, "chat.delete")
}

// MeMessage implements slack.ChatClient.MeMessage.
func (c *ChatClient) MeMessage(ctx context.Context, channel, text string) (*slack.MessageResponse, error) {
	resp, err := c.client.Call(ctx, "chat.me_message", slack.Args{"channel": channel, "text": text})
	if err != nil {
		return nil, fmt.Errorf("posting me message: %w", err)
	}

	return decodeMessageResponse(resp, "chat.meMessage")
}

// ScheduledMessages implements slack.ChatClient.ScheduledMessages.
func (c *ChatClient) ScheduledMessages() slack.ScheduledMessagesClient {
	return &ScheduledMessagesClient{client: c.client}
}

// ScheduledMessagesClient implements slack.ScheduledMessagesClient.
type ScheduledMessagesClient struct {
	client *Client
}

// List implements slack.ScheduledMessagesClient.List.
func (c *ScheduledMessagesClient) List(ctx context.Context, args slack.Args) (*slack.ScheduledMessagesList, error) {
	resp, err := c.client.Call(ctx, "chat.scheduled_messages.list", args)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled messages: %w", err)
	}

	var result slack.ScheduledMessagesList

	err = resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing chat.scheduledMessages.list response: %w", err)
	}

	return &result, nil
}

func decodeMessageResponse(resp *slack.Response, method string) (*slack.MessageResponse, error) {
	var result slack.MessageResponse

	err := resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", method, err)
	}

	return &result, nil
}

// mergeArgs overlays required on top of optional without mutating either.
// Positional arguments always win over the same key in args.
func mergeArgs(optional, required slack.Args) slack.Args {
	merged := make(slack.Args, len(optional)+len(required))

	for key, value := range optional {
		merged[key] = value
	}

	for key, value := range required {
		merged[key] = value
	}

	return merged
}
