package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// NewFilesCommand creates the files command group.
func NewFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Upload and manage files",
		Long:  "Commands for uploading, inspecting and deleting files",
	}

	cmd.AddCommand(newFilesUploadCommand())
	cmd.AddCommand(newFilesInfoCommand())
	cmd.AddCommand(newFilesDeleteCommand())

	return cmd
}

func newFilesUploadCommand() *cobra.Command {
	var (
		channels string
		title    string
		comment  string
	)

	cmd := &cobra.Command{
		Use:   "upload PATH",
		Short: "Upload a file",
		Long:  "Upload a local file, optionally sharing it into one or more channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = handle.Close() }()

			callArgs := slack.Args{}
			if channels != "" {
				callArgs["channels"] = channels
			}

			if title != "" {
				callArgs["title"] = title
			}

			if comment != "" {
				callArgs["initial_comment"] = comment
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			file := slack.File{Name: filepath.Base(args[0]), Reader: handle}

			result, err := client.Files().Upload(context.Background(), file, callArgs)
			if err != nil {
				return fmt.Errorf("failed to upload file: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Uploaded '%s' with ID %s\n", result.File.Name, result.File.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&channels, "channels", "", "comma-separated channels to share the file into")
	cmd.Flags().StringVar(&title, "title", "", "file title")
	cmd.Flags().StringVar(&comment, "comment", "", "initial comment for the file")

	return cmd
}

func newFilesInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE_ID",
		Short: "Show file details",
		Long:  "Display details about an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Files().Info(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get file: %w", err)
			}

			return renderObject(result.File, nil)
		},
	}
}

func newFilesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILE_ID",
		Short: "Delete a file",
		Long:  "Delete an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			_, err = client.Files().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete file: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted file %s\n", args[0])

			return nil
		},
	}
}
