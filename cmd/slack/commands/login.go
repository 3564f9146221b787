package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/slacktime-io/slack-client/pkg/slack"
	"github.com/slacktime-io/slack-client/pkg/slackclient"
)

// NewLoginCommand creates the login command. The token is verified against
// auth.test before it is stored.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Slack Web API",
		Long:  "Verify an API token against auth.test and store it in the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				fmt.Println()

				token = strings.TrimSpace(string(byteToken))
			}

			if token == "" {
				return ErrEmptyToken
			}

			client, err := slackclient.New(&slack.Config{
				Token:   token,
				BaseURL: viper.GetString("api"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			identity, err := client.Auth().Test(context.Background())
			if err != nil {
				return fmt.Errorf("token verification failed: %w", err)
			}

			config := loadConfig()
			config.Token = token

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in as %s on team %s\n", identity.User, identity.Team)

			return nil
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		Long:  "Remove the stored API token from the CLI configuration, optionally revoking it first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if revoke {
				client, err := createClient()
				if err != nil {
					return err
				}

				_, err = client.Auth().Revoke(context.Background(), false)
				if err != nil {
					return fmt.Errorf("failed to revoke token: %w", err)
				}

				_, _ = os.Stdout.WriteString("Token revoked\n")
			}

			config := loadConfig()
			config.Token = ""

			err := saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Logged out\n")

			return nil
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "revoke the token remotely before removing it")

	return cmd
}
