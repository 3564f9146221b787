package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slacktime-io/slack-client/internal/constants"
	"github.com/slacktime-io/slack-client/pkg/slack"
)

// NewCallCommand creates the generic method invocation command.
func NewCallCommand() *cobra.Command {
	var (
		params []string
		files  []string
		useGet bool
	)

	cmd := &cobra.Command{
		Use:   "call METHOD",
		Short: "Invoke an arbitrary Web API method",
		Long: `Invoke any Web API method by its dotted name, for example
"chat.postMessage" or the equivalent snake_case form "chat.post_message".
Parameters are passed as repeated --param key=value flags, file uploads as
--file field=path.`,
		Example: `  slack call auth.test
  slack call chat.post_message --param channel=general --param text="hello"
  slack call files.upload --param channels=general --file file=./report.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := args[0]

			callArgs, err := parseParams(params)
			if err != nil {
				return err
			}

			for _, pair := range files {
				parts := strings.SplitN(pair, "=", constants.KeyValueSplitParts)
				if len(parts) != constants.KeyValueSplitParts || parts[0] == "" || parts[1] == "" {
					return fmt.Errorf("%w: %q", ErrInvalidFileFormat, pair)
				}

				handle, err := os.Open(parts[1])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", parts[1], err)
				}

				defer func() { _ = handle.Close() }()

				callArgs[parts[0]] = slack.File{Name: filepath.Base(parts[1]), Reader: handle}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var resp *slack.Response
			if useGet {
				resp, err = client.CallGet(ctx, method, callArgs)
			} else {
				resp, err = client.Call(ctx, method, callArgs)
			}

			if err != nil {
				return fmt.Errorf("method %s failed: %w", method, err)
			}

			fields, err := resp.Raw()
			if err != nil {
				return err
			}

			return renderObject(fields, func() error {
				return renderRawTable(fields)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "method parameter (key=value, repeatable)")
	cmd.Flags().StringArrayVar(&files, "file", nil, "file upload (field=path, repeatable)")
	cmd.Flags().BoolVar(&useGet, "get", false, "send the request as GET instead of POST")

	return cmd
}
