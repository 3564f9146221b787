// Package slack provides types, interfaces, and helpers for working with the
// Slack Web API.
//
// # Overview
//
// The slack package defines the client configuration, the error taxonomy, the
// generic method dispatcher (Namespace), and the interfaces for the typed
// namespace clients (e.g. AuthClient, ChatClient, ConversationsClient). A
// concrete implementation of these clients is provided by the slackclient
// package, which wires configuration, transport, and caching. Most consumers
// should import slackclient to construct a client and then interact with the
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/slacktime-io/slack-client/pkg/slack"
//	  "github.com/slacktime-io/slack-client/pkg/slackclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := slackclient.New(&slack.Config{Token: "xoxb-..."})
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.Chat().PostMessage(ctx, "#general", slack.Args{"text": "hey team!"})
//	  if err != nil { log.Fatal(err) }
//	}
//
// # The generic method surface
//
// The Web API method catalog is owned by the remote service and changes over
// time, so the client never hard-codes it. Every method is reachable through
// the generic surface, either by its full dot-path or by descending the
// namespace tree one segment at a time:
//
//	resp, err := cli.Call(ctx, "admin.conversations.convert_to_private", slack.Args{"channel_id": "C123"})
//
//	admin := cli.Namespace("admin", "conversations")
//	resp, err = admin.Call(ctx, "convert_to_private", slack.Args{"channel_id": "C123"})
//
// Segment names written in snake_case are translated to the camelCase form the
// service expects; segments without underscores pass through unchanged, so
// both spellings work. The typed clients (cli.Chat(), cli.Users(), ...) are
// thin convenience wrappers over this surface.
package slack
