package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// NewConversationsCommand creates the conversations command group.
func NewConversationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Manage channels and conversations",
		Long:  "Commands for listing, inspecting and managing conversations of all types",
	}

	cmd.AddCommand(newConversationsListCommand())
	cmd.AddCommand(newConversationsInfoCommand())
	cmd.AddCommand(newConversationsCreateCommand())
	cmd.AddCommand(newConversationsHistoryCommand())
	cmd.AddCommand(newConversationsInviteCommand())

	return cmd
}

func newConversationsListCommand() *cobra.Command {
	var types string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations",
		Long:  "List conversations the authenticated user may see",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			callArgs := slack.Args{}
			if types != "" {
				callArgs["types"] = types
			}

			result, err := client.Conversations().List(context.Background(), callArgs)
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}

			if len(result.Channels) == 0 {
				_, _ = os.Stdout.WriteString("No conversations found\n")

				return nil
			}

			return renderObject(result.Channels, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Private", "Archived", "Members")

				for _, channel := range result.Channels {
					err := table.Append(
						channel.ID,
						channel.Name,
						yesNo(channel.IsPrivate),
						yesNo(channel.IsArchived),
						strconv.Itoa(channel.NumMembers),
					)
					if err != nil {
						return fmt.Errorf("failed to append table row: %w", err)
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&types, "types", "", "comma-separated conversation types (public_channel, private_channel, mpim, im)")

	return cmd
}

func newConversationsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info CHANNEL",
		Short: "Show conversation details",
		Long:  "Display details about a single conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Conversations().Info(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get conversation: %w", err)
			}

			return renderObject(result.Channel, nil)
		},
	}
}

func newConversationsCreateCommand() *cobra.Command {
	var private bool

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a conversation",
		Long:  "Create a public or private channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Conversations().Create(context.Background(), args[0], private)
			if err != nil {
				return fmt.Errorf("failed to create conversation: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created conversation '%s' with ID %s\n", result.Channel.Name, result.Channel.ID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&private, "private", false, "create a private channel")

	return cmd
}

func newConversationsHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history CHANNEL",
		Short: "Fetch conversation history",
		Long:  "Fetch recent messages from a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			callArgs := slack.Args{}
			if limit > 0 {
				callArgs["limit"] = limit
			}

			result, err := client.Conversations().History(context.Background(), args[0], callArgs)
			if err != nil {
				return fmt.Errorf("failed to fetch history: %w", err)
			}

			if len(result.Messages) == 0 {
				_, _ = os.Stdout.WriteString("No messages found\n")

				return nil
			}

			return renderObject(result.Messages, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("TS", "User", "Text")

				for _, message := range result.Messages {
					err := table.Append(message.TS, message.User, message.Text)
					if err != nil {
						return fmt.Errorf("failed to append table row: %w", err)
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of messages to return")

	return cmd
}

func newConversationsInviteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invite CHANNEL USER[,USER...]",
		Short: "Invite users to a conversation",
		Long:  "Invite one or more users to a conversation by their IDs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			users := strings.Split(args[1], ",")

			result, err := client.Conversations().Invite(context.Background(), args[0], users)
			if err != nil {
				return fmt.Errorf("failed to invite users: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Invited %d user(s) to %s\n", len(users), result.Channel.Name)

			return nil
		},
	}
}
