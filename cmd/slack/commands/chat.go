package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// NewChatCommand creates the chat command group.
func NewChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send and manage messages",
		Long:  "Commands for posting, updating and deleting messages",
	}

	cmd.AddCommand(newChatPostMessageCommand())
	cmd.AddCommand(newChatUpdateCommand())
	cmd.AddCommand(newChatDeleteCommand())
	cmd.AddCommand(newChatMeMessageCommand())
	cmd.AddCommand(newChatScheduledMessagesCommand())

	return cmd
}

func newChatPostMessageCommand() *cobra.Command {
	var (
		threadTS string
		params   []string
	)

	cmd := &cobra.Command{
		Use:   "post-message CHANNEL TEXT",
		Short: "Post a message to a channel",
		Long:  "Post a message to a channel, group or direct message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs, err := parseParams(params)
			if err != nil {
				return err
			}

			callArgs["text"] = args[1]
			if threadTS != "" {
				callArgs["thread_ts"] = threadTS
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Chat().PostMessage(context.Background(), args[0], callArgs)
			if err != nil {
				return fmt.Errorf("failed to post message: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Message posted to %s (ts: %s)\n", result.Channel, result.TS)

			return nil
		},
	}

	cmd.Flags().StringVar(&threadTS, "thread-ts", "", "post as a reply to the given thread")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "extra method parameter (key=value, repeatable)")

	return cmd
}

func newChatUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update CHANNEL TS TEXT",
		Short: "Update a message",
		Long:  "Replace the text of an existing message identified by channel and timestamp",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Chat().Update(context.Background(), args[0], args[1], slack.Args{"text": args[2]})
			if err != nil {
				return fmt.Errorf("failed to update message: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Message %s updated in %s\n", result.TS, result.Channel)

			return nil
		},
	}
}

func newChatDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CHANNEL TS",
		Short: "Delete a message",
		Long:  "Delete a message identified by channel and timestamp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Chat().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete message: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Message %s deleted from %s\n", result.TS, result.Channel)

			return nil
		},
	}
}

func newChatMeMessageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me-message CHANNEL TEXT",
		Short: "Share a me message",
		Long:  "Share a me message into a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Chat().MeMessage(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to post me message: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Message posted (ts: %s)\n", result.TS)

			return nil
		},
	}
}

func newChatScheduledMessagesCommand() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "scheduled-messages",
		Short: "List scheduled messages",
		Long:  "List messages scheduled for later delivery, optionally filtered by channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			callArgs := slack.Args{}
			if channel != "" {
				callArgs["channel"] = channel
			}

			result, err := client.Chat().ScheduledMessages().List(context.Background(), callArgs)
			if err != nil {
				return fmt.Errorf("failed to list scheduled messages: %w", err)
			}

			if len(result.ScheduledMessages) == 0 {
				_, _ = os.Stdout.WriteString("No scheduled messages found\n")

				return nil
			}

			return renderObject(result.ScheduledMessages, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Channel", "Post At", "Text")

				for _, message := range result.ScheduledMessages {
					postAt := time.Unix(message.PostAt, 0).Format(time.RFC3339)

					err := table.Append(message.ID, message.ChannelID, postAt, message.Text)
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

	cmd.Flags().StringVar(&channel, "channel", "", "only list messages scheduled for this channel")

	return cmd
}
