package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTeamCommand creates the team command group.
func NewTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect the workspace",
		Long:  "Commands for displaying workspace information",
	}

	cmd.AddCommand(newTeamInfoCommand())

	return cmd
}

func newTeamInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show workspace details",
		Long:  "Display name, domain and ID of the current workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Team().Info(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get team info: %w", err)
			}

			return renderObject(result.Team, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", result.Team.ID)
				_ = table.Append("Name", result.Team.Name)
				_ = table.Append("Domain", result.Team.Domain)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

// NewEmojiCommand creates the emoji command group.
func NewEmojiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "Inspect custom emoji",
		Long:  "Commands for listing the workspace's custom emoji",
	}

	cmd.AddCommand(newEmojiListCommand())

	return cmd
}

func newEmojiListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom emoji",
		Long:  "List all custom emoji registered in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Emoji().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list emoji: %w", err)
			}

			if len(result.Emoji) == 0 {
				_, _ = os.Stdout.WriteString("No custom emoji found\n")

				return nil
			}

			return renderObject(result.Emoji, func() error {
				names := make([]string, 0, len(result.Emoji))
				for name := range result.Emoji {
					names = append(names, name)
				}

				sort.Strings(names)

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "URL")

				for _, name := range names {
					err := table.Append(name, result.Emoji[name])
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
}
