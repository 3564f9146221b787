package slack

import "context"

// Message represents a posted message as echoed back by chat methods.
type Message struct {
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"`
	User     string `json:"user,omitempty"     yaml:"user,omitempty"`
	BotID    string `json:"bot_id,omitempty"   yaml:"bot_id,omitempty"`
	Text     string `json:"text,omitempty"     yaml:"text,omitempty"`
	TS       string `json:"ts,omitempty"       yaml:"ts,omitempty"`
	ThreadTS string `json:"thread_ts,omitempty" yaml:"thread_ts,omitempty"`
}

// MessageResponse is the payload of chat.postMessage and friends.
type MessageResponse struct {
	Response `yaml:",inline"`

	Channel string  `json:"channel,omitempty" yaml:"channel,omitempty"`
	TS      string  `json:"ts,omitempty"      yaml:"ts,omitempty"`
	Message Message `json:"message,omitempty" yaml:"message,omitempty"`
}

// ScheduledMessage represents one entry of chat.scheduledMessages.list.
type ScheduledMessage struct {
	ID          string `json:"id"           yaml:"id"`
	ChannelID   string `json:"channel_id"   yaml:"channel_id"`
	PostAt      int64  `json:"post_at"      yaml:"post_at"`
	DateCreated int64  `json:"date_created" yaml:"date_created"`
	Text        string `json:"text"         yaml:"text"`
}

// ScheduledMessagesList is the payload of chat.scheduledMessages.list.
type ScheduledMessagesList struct {
	Response `yaml:",inline"`

	ScheduledMessages []ScheduledMessage `json:"scheduled_messages" yaml:"scheduled_messages"`
}

// Channel represents a conversation of any type.
type Channel struct {
	ID         string `json:"id"                    yaml:"id"`
	Name       string `json:"name"                  yaml:"name"`
	IsChannel  bool   `json:"is_channel,omitempty"  yaml:"is_channel,omitempty"`
	IsGroup    bool   `json:"is_group,omitempty"    yaml:"is_group,omitempty"`
	IsIM       bool   `json:"is_im,omitempty"       yaml:"is_im,omitempty"`
	IsPrivate  bool   `json:"is_private,omitempty"  yaml:"is_private,omitempty"`
	IsArchived bool   `json:"is_archived,omitempty" yaml:"is_archived,omitempty"`
	Created    int64  `json:"created,omitempty"     yaml:"created,omitempty"`
	Creator    string `json:"creator,omitempty"     yaml:"creator,omitempty"`
	NumMembers int    `json:"num_members,omitempty" yaml:"num_members,omitempty"`
	Topic      Topic  `json:"topic,omitempty"       yaml:"topic,omitempty"`
	Purpose    Topic  `json:"purpose,omitempty"     yaml:"purpose,omitempty"`
}

// Topic is a channel topic or purpose.
type Topic struct {
	Value   string `json:"value"    yaml:"value"`
	Creator string `json:"creator"  yaml:"creator"`
	LastSet int64  `json:"last_set" yaml:"last_set"`
}

// ChannelResponse is the payload of conversation methods returning one channel.
type ChannelResponse struct {
	Response `yaml:",inline"`

	Channel Channel `json:"channel" yaml:"channel"`
}

// ChannelList is the payload of conversations.list.
type ChannelList struct {
	Response `yaml:",inline"`

	Channels []Channel `json:"channels" yaml:"channels"`
}

// HistoryResponse is the payload of conversations.history.
type HistoryResponse struct {
	Response `yaml:",inline"`

	Messages []Message `json:"messages"            yaml:"messages"`
	HasMore  bool      `json:"has_more,omitempty"  yaml:"has_more,omitempty"`
	PinCount int       `json:"pin_count,omitempty" yaml:"pin_count,omitempty"`
}

// User represents a workspace member.
type User struct {
	ID       string      `json:"id"                  yaml:"id"`
	TeamID   string      `json:"team_id,omitempty"   yaml:"team_id,omitempty"`
	Name     string      `json:"name"                yaml:"name"`
	RealName string      `json:"real_name,omitempty" yaml:"real_name,omitempty"`
	Deleted  bool        `json:"deleted,omitempty"   yaml:"deleted,omitempty"`
	IsAdmin  bool        `json:"is_admin,omitempty"  yaml:"is_admin,omitempty"`
	IsBot    bool        `json:"is_bot,omitempty"    yaml:"is_bot,omitempty"`
	TZ       string      `json:"tz,omitempty"        yaml:"tz,omitempty"`
	Profile  UserProfile `json:"profile,omitempty"   yaml:"profile,omitempty"`
}

// UserProfile is the profile block of a User.
type UserProfile struct {
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	RealName    string `json:"real_name,omitempty"    yaml:"real_name,omitempty"`
	Email       string `json:"email,omitempty"        yaml:"email,omitempty"`
	StatusText  string `json:"status_text,omitempty"  yaml:"status_text,omitempty"`
	StatusEmoji string `json:"status_emoji,omitempty" yaml:"status_emoji,omitempty"`
}

// UserResponse is the payload of users.info and users.lookupByEmail.
type UserResponse struct {
	Response `yaml:",inline"`

	User User `json:"user" yaml:"user"`
}

// UserList is the payload of users.list.
type UserList struct {
	Response `yaml:",inline"`

	Members []User `json:"members" yaml:"members"`
}

// FileInfo represents an uploaded file.
type FileInfo struct {
	ID         string `json:"id"                    yaml:"id"`
	Name       string `json:"name"                  yaml:"name"`
	Title      string `json:"title,omitempty"       yaml:"title,omitempty"`
	Mimetype   string `json:"mimetype,omitempty"    yaml:"mimetype,omitempty"`
	Filetype   string `json:"filetype,omitempty"    yaml:"filetype,omitempty"`
	Size       int64  `json:"size,omitempty"        yaml:"size,omitempty"`
	User       string `json:"user,omitempty"        yaml:"user,omitempty"`
	URLPrivate string `json:"url_private,omitempty" yaml:"url_private,omitempty"`
}

// FileResponse is the payload of files.upload and files.info.
type FileResponse struct {
	Response `yaml:",inline"`

	File FileInfo `json:"file" yaml:"file"`
}

// AuthTest is the payload of auth.test.
type AuthTest struct {
	Response `yaml:",inline"`

	URL    string `json:"url"               yaml:"url"`
	Team   string `json:"team"              yaml:"team"`
	User   string `json:"user"              yaml:"user"`
	TeamID string `json:"team_id"           yaml:"team_id"`
	UserID string `json:"user_id"           yaml:"user_id"`
	BotID  string `json:"bot_id,omitempty"  yaml:"bot_id,omitempty"`
}

// AuthRevoke is the payload of auth.revoke.
type AuthRevoke struct {
	Response `yaml:",inline"`

	Revoked bool `json:"revoked" yaml:"revoked"`
}

// Team represents workspace info.
type Team struct {
	ID     string `json:"id"               yaml:"id"`
	Name   string `json:"name"             yaml:"name"`
	Domain string `json:"domain"           yaml:"domain"`
	Icon   map[string]interface{} `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// TeamResponse is the payload of team.info.
type TeamResponse struct {
	Response `yaml:",inline"`

	Team Team `json:"team" yaml:"team"`
}

// EmojiList is the payload of emoji.list.
type EmojiList struct {
	Response `yaml:",inline"`

	Emoji map[string]string `json:"emoji" yaml:"emoji"`
}

// ReactionsGetResponse is the payload of reactions.get.
type ReactionsGetResponse struct {
	Response `yaml:",inline"`

	Type    string  `json:"type"    yaml:"type"`
	Channel string  `json:"channel" yaml:"channel"`
	Message Message `json:"message" yaml:"message"`
}

// AuthClient provides access to the auth.* methods.
type AuthClient interface {
	// Test checks authentication and identity.
	Test(ctx context.Context) (*AuthTest, error)

	// Revoke revokes the client's token. With test=true the service only
	// simulates the revocation.
	Revoke(ctx context.Context, test bool) (*AuthRevoke, error)
}

// ChatClient provides access to the chat.* methods. The channel argument is
// the primary payload argument of each method.
type ChatClient interface {
	PostMessage(ctx context.Context, channel string, args Args) (*MessageResponse, error)
	Update(ctx context.Context, channel, timestamp string, args Args) (*MessageResponse, error)
	Delete(ctx context.Context, channel, timestamp string) (*MessageResponse, error)
	MeMessage(ctx context.Context, channel, text string) (*MessageResponse, error)

	// ScheduledMessages descends into the chat.scheduledMessages.* namespace.
	ScheduledMessages() ScheduledMessagesClient
}

// ScheduledMessagesClient provides access to chat.scheduledMessages.*.
type ScheduledMessagesClient interface {
	List(ctx context.Context, args Args) (*ScheduledMessagesList, error)
}

// ConversationsClient provides access to the conversations.* methods.
type ConversationsClient interface {
	Create(ctx context.Context, name string, isPrivate bool) (*ChannelResponse, error)
	Info(ctx context.Context, channel string) (*ChannelResponse, error)
	List(ctx context.Context, args Args) (*ChannelList, error)
	History(ctx context.Context, channel string, args Args) (*HistoryResponse, error)
	Invite(ctx context.Context, channel string, users []string) (*ChannelResponse, error)
}

// UsersClient provides access to the users.* methods.
type UsersClient interface {
	Info(ctx context.Context, user string) (*UserResponse, error)
	List(ctx context.Context, args Args) (*UserList, error)
	LookupByEmail(ctx context.Context, email string) (*UserResponse, error)
}

// FilesClient provides access to the files.* methods.
type FilesClient interface {
	// Upload sends file as multipart form data. Extra parameters (channels,
	// title, initial_comment, ...) go in args.
	Upload(ctx context.Context, file File, args Args) (*FileResponse, error)
	Info(ctx context.Context, file string) (*FileResponse, error)
	Delete(ctx context.Context, file string) (*Response, error)
}

// ReactionsClient provides access to the reactions.* methods.
type ReactionsClient interface {
	Add(ctx context.Context, name, channel, timestamp string) (*Response, error)
	Remove(ctx context.Context, name, channel, timestamp string) (*Response, error)
	Get(ctx context.Context, channel, timestamp string) (*ReactionsGetResponse, error)
}

// EmojiClient provides access to the emoji.* methods.
type EmojiClient interface {
	List(ctx context.Context) (*EmojiList, error)
}

// TeamClient provides access to the team.* methods.
type TeamClient interface {
	Info(ctx context.Context) (*TeamResponse, error)
}

// AdminClient provides access to the admin.* namespaces.
type AdminClient interface {
	Conversations() AdminConversationsClient
}

// AdminConversationsClient provides access to admin.conversations.*.
type AdminConversationsClient interface {
	ConvertToPrivate(ctx context.Context, channelID string) (*Response, error)
	SetTeams(ctx context.Context, channelID string, args Args) (*Response, error)
}
