package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacktime-io/slack-client/internal/transport"
	"github.com/slacktime-io/slack-client/pkg/slack"
)

func TestClient_Do_FormRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "general", r.PostForm.Get("channel"))
		assert.Equal(t, "hi", r.PostForm.Get("text"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client, err := transport.NewClient(server.URL, "test-token", transport.Options{})
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), &transport.Request{
		Verb:   http.MethodPost,
		Method: "chat.postMessage",
		Params: map[string]string{"channel": "general", "text": "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `"ok":true`)
}

func TestClient_Do_QueryRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users.list", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client, err := transport.NewClient(server.URL, "test-token", transport.Options{})
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), &transport.Request{
		Verb:   http.MethodGet,
		Method: "users.list",
		Params: map[string]string{"limit": "100"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_Do_MultipartRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files.upload", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "C123", r.MultipartForm.Value["channels"][0])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer func() {
			_ = file.Close()
		}()

		assert.Equal(t, "report.txt", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "file content", string(content))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client, err := transport.NewClient(server.URL, "test-token", transport.Options{})
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), &transport.Request{
		Verb:   http.MethodPost,
		Method: "files.upload",
		Params: map[string]string{"channels": "C123"},
		Files: map[string]slack.File{
			"file": {Name: "report.txt", Reader: strings.NewReader("file content")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_Do_TransportError(t *testing.T) {
	t.Parallel()

	// Server closed before the call: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := transport.NewClient(server.URL, "test-token", transport.Options{})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), &transport.Request{
		Verb:   http.MethodPost,
		Method: "auth.test",
	})
	require.Error(t, err)
	assert.True(t, slack.IsTransportError(err))

	transportErr := &slack.TransportError{}
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "auth.test", transportErr.Method)
}

func TestClient_Do_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/1.0", r.Header.Get("User-Agent"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client, err := transport.NewClient(server.URL, "test-token", transport.Options{
		UserAgent: "custom-agent/1.0",
	})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), &transport.Request{
		Verb:   http.MethodPost,
		Method: "auth.test",
	})
	require.NoError(t, err)
}

func TestNewClient_InvalidProxy(t *testing.T) {
	t.Parallel()

	_, err := transport.NewClient("https://slack.com/api", "test-token", transport.Options{
		Proxies: map[string]string{"https": "http://%zz"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, slack.ErrInvalidProxyURL)
}

func TestClient_Do_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := transport.NewClient(server.URL, "test-token", transport.Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Do(ctx, &transport.Request{Verb: http.MethodPost, Method: "auth.test"})
	require.Error(t, err)
	assert.True(t, slack.IsTransportError(err))
}
