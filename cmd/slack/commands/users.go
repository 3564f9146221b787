package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up workspace members",
		Long:  "Commands for listing and inspecting workspace members",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersInfoCommand())
	cmd.AddCommand(newUsersLookupByEmailCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace members",
		Long:  "List all members of the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			callArgs := slack.Args{}
			if limit > 0 {
				callArgs["limit"] = limit
			}

			result, err := client.Users().List(context.Background(), callArgs)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if len(result.Members) == 0 {
				_, _ = os.Stdout.WriteString("No users found\n")

				return nil
			}

			return renderObject(result.Members, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Real Name", "Admin", "Bot", "Deleted")

				for _, user := range result.Members {
					err := table.Append(
						user.ID,
						user.Name,
						user.RealName,
						yesNo(user.IsAdmin),
						yesNo(user.IsBot),
						yesNo(user.Deleted),
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

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of users to return")

	return cmd
}

func newUsersInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info USER_ID",
		Short: "Show user details",
		Long:  "Display details about a single workspace member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Users().Info(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderObject(result.User, nil)
		},
	}
}

func newUsersLookupByEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup-by-email EMAIL",
		Short: "Find a user by email address",
		Long:  "Find a workspace member by their registered email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Users().LookupByEmail(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to look up user: %w", err)
			}

			return renderObject(result.User, nil)
		},
	}
}
