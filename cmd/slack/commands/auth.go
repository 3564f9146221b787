package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect and manage authentication",
		Long:  "Commands for checking the current identity and revoking tokens",
	}

	cmd.AddCommand(newAuthTestCommand())
	cmd.AddCommand(newAuthRevokeCommand())

	return cmd
}

func newAuthTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check authentication and identity",
		Long:  "Call auth.test and display the authenticated user, team and endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			identity, err := client.Auth().Test(context.Background())
			if err != nil {
				return fmt.Errorf("auth test failed: %w", err)
			}

			return renderObject(identity, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("URL", identity.URL)
				_ = table.Append("Team", identity.Team)
				_ = table.Append("User", identity.User)
				_ = table.Append("Team ID", identity.TeamID)
				_ = table.Append("User ID", identity.UserID)

				if identity.BotID != "" {
					_ = table.Append("Bot ID", identity.BotID)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newAuthRevokeCommand() *cobra.Command {
	var test bool

	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the current token",
		Long:  "Call auth.revoke; with --test the service only simulates the revocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Auth().Revoke(context.Background(), test)
			if err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}

			if result.Revoked {
				_, _ = os.Stdout.WriteString("Token revoked\n")
			} else {
				_, _ = os.Stdout.WriteString("Token not revoked (test mode)\n")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&test, "test", false, "simulate the revocation without invalidating the token")

	return cmd
}
