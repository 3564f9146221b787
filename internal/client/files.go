package client

import (
	"context"
	"fmt"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// FilesClient implements slack.FilesClient.
type FilesClient struct {
	client *Client
}

// Upload implements slack.FilesClient.Upload. The file is the primary payload
// argument and always forces multipart encoding.
func (c *FilesClient) Upload(ctx context.Context, file slack.File, args slack.Args) (*slack.FileResponse, error) {
	if file.Reader == nil {
		return nil, fmt.Errorf("uploading file: %w", slack.ErrFileRequired)
	}

	merged := mergeArgs(args, slack.Args{"file": file})
	if file.Name != "" {
		if _, ok := merged["filename"]; !ok {
			merged["filename"] = file.Name
		}
	}

	resp, err := c.client.Call(ctx, "files.upload", merged)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	return decodeFileResponse(resp, "files.upload")
}

// Info implements slack.FilesClient.Info.
func (c *FilesClient) Info(ctx context.Context, file string) (*slack.FileResponse, error) {
	resp, err := c.client.Call(ctx, "files.info", slack.Args{"file": file})
	if err != nil {
		return nil, fmt.Errorf("getting file info: %w", err)
	}

	return decodeFileResponse(resp, "files.info")
}

// Delete implements slack.FilesClient.Delete.
func (c *FilesClient) Delete(ctx context.Context, file string) (*slack.Response, error) {
	resp, err := c.client.Call(ctx, "files.delete", slack.Args{"file": file})
	if err != nil {
		return nil, fmt.Errorf("deleting file: %w", err)
	}

	return resp, nil
}

func decodeFileResponse(resp *slack.Response, method string) (*slack.FileResponse, error) {
	var result slack.FileResponse

	err := resp.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", method, err)
	}

	return &result, nil
}
