package client

import "github.com/slacktime-io/slack-client/pkg/slack"

// Auth implements slack.CoreClients.Auth.
func (c *Client) Auth() slack.AuthClient {
	return c.auth
}

// Chat implements slack.CoreClients.Chat.
func (c *Client) Chat() slack.ChatClient {
	return c.chat
}

// Conversations implements slack.CoreClients.Conversations.
func (c *Client) Conversations() slack.ConversationsClient {
	return c.conversations
}

// Users implements slack.CoreClients.Users.
func (c *Client) Users() slack.UsersClient {
	return c.users
}

// Files implements slack.CoreClients.Files.
func (c *Client) Files() slack.FilesClient {
	return c.files
}

// Team implements slack.WorkspaceClients.Team.
func (c *Client) Team() slack.TeamClient {
	return c.team
}

// Emoji implements slack.WorkspaceClients.Emoji.
func (c *Client) Emoji() slack.EmojiClient {
	return c.emoji
}

// Reactions implements slack.WorkspaceClients.Reactions.
func (c *Client) Reactions() slack.ReactionsClient {
	return c.reactions
}

// Admin implements slack.WorkspaceClients.Admin.
func (c *Client) Admin() slack.AdminClient {
	return c.admin
}
