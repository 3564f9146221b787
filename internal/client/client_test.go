package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacktime-io/slack-client/pkg/slack"
)

// newTestServer returns a server that records the last request and answers
// with the given body.
func newTestServer(t *testing.T, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Path = r.URL.Path
		recorded.Method = r.Method
		recorded.Authorization = r.Header.Get("Authorization")

		if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			_ = r.ParseMultipartForm(1 << 20)

			recorded.Multipart = true
			recorded.Form = r.MultipartForm.Value
		} else {
			_ = r.ParseForm()
			recorded.Form = r.Form
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server, recorded
}

type recordedRequest struct {
	Path          string
	Method        string
	Authorization string
	Multipart     bool
	Form          map[string][]string
}

func (r *recordedRequest) field(key string) string {
	values := r.Form[key]
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&slack.Config{Token: "test-token", BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

func TestNew_RequiresToken(t *testing.T) {
	t.Parallel()

	_, err := New(&slack.Config{})
	require.Error(t, err)
	assert.True(t, slack.IsConfigurationError(err))

	_, err = New(nil)
	require.Error(t, err)
	assert.True(t, slack.IsConfigurationError(err))
}

func TestClient_Call_TranslatesPath(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "chat.post_message", slack.Args{
		"channel": "general",
		"text":    "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "/chat.postMessage", recorded.Path)
	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "Bearer test-token", recorded.Authorization)
	assert.Equal(t, "general", recorded.field("channel"))
	assert.Equal(t, "hi", recorded.field("text"))
}

func TestClient_Call_DeepPath(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "admin.conversations.convert_to_private", slack.Args{
		"channel_id": "C123",
	})
	require.NoError(t, err)
	assert.Equal(t, "/admin.conversations.convertToPrivate", recorded.Path)
}

func TestClient_Call_APIError(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": false, "error": "invalid_auth"}`)
	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "auth.test", nil)
	require.Error(t, err)

	apiErr, ok := slack.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_auth", apiErr.Code)
	assert.Equal(t, "auth.test", apiErr.Method)
	assert.False(t, slack.IsTransportError(err))
}

func TestClient_Call_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "auth.test", nil)
	require.Error(t, err)
	assert.True(t, slack.IsTransportError(err))
}

func TestClient_Call_EmptyMethod(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "", nil)
	require.ErrorIs(t, err, slack.ErrMethodRequired)
}

func TestClient_CallGet_RejectsFiles(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.CallGet(context.Background(), "files.upload", slack.Args{
		"file": slack.File{Name: "x", Reader: strings.NewReader("content")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "require POST")
}

func TestClient_Call_MultipartForFiles(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "files.upload", slack.Args{
		"file":     slack.File{Name: "report.txt", Reader: strings.NewReader("content")},
		"channels": "C123",
	})
	require.NoError(t, err)
	assert.True(t, recorded.Multipart)
	assert.Equal(t, "C123", recorded.field("channels"))
}

func TestClient_Namespace(t *testing.T) {
	t.Parallel()

	server, recorded := newTestServer(t, `{"ok": true}`)
	client := newTestClient(t, server.URL)

	admin := client.Namespace("admin", "conversations")

	_, err := admin.Call(context.Background(), "convert_to_private", slack.Args{"channel_id": "C1"})
	require.NoError(t, err)
	assert.Equal(t, "/admin.conversations.convertToPrivate", recorded.Path)
}

func TestClient_Call_InterceptorsRun(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, `{"ok": true}`)

	chain := slack.NewInterceptorChain()

	var seen []string

	chain.AddRequestInterceptor(func(ctx context.Context, info *slack.CallInfo) error {
		seen = append(seen, "req:"+info.Method)

		return nil
	})
	chain.AddResponseInterceptor(func(ctx context.Context, info *slack.CallInfo, result *slack.CallResult) error {
		seen = append(seen, "resp")

		return nil
	})

	client, err := New(&slack.Config{
		Token:        "test-token",
		BaseURL:      server.URL,
		Interceptors: chain,
	})
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "auth.test", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"req:auth.test", "resp"}, seen)
}

func TestClient_Call_CachesReadOnlyMethods(t *testing.T) {
	t.Parallel()

	hits := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":    true,
			"emoji": map[string]string{"tada": "https://emoji.example/tada.png"},
		})
	}))
	t.Cleanup(server.Close)

	client, err := New(&slack.Config{
		Token:   "test-token",
		BaseURL: server.URL,
		Cache:   slack.DefaultCacheConfig(),
	})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.Call(ctx, "emoji.list", nil)
	require.NoError(t, err)

	_, err = client.Call(ctx, "emoji.list", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second call should be served from cache")

	// Non-cacheable methods always hit the server.
	_, err = client.Call(ctx, "team.billing.info", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestFlattenArgs(t *testing.T) {
	t.Parallel()

	params, files, err := flattenArgs(slack.Args{
		"text":   "hello",
		"count":  3,
		"limit":  int64(200),
		"ratio":  0.5,
		"mrkdwn": true,
		"skip":   nil,
		"blocks": []map[string]interface{}{{"type": "divider"}},
	})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, "hello", params["text"])
	assert.Equal(t, "3", params["count"])
	assert.Equal(t, "200", params["limit"])
	assert.Equal(t, "0.5", params["ratio"])
	assert.Equal(t, "true", params["mrkdwn"])
	assert.NotContains(t, params, "skip")
	assert.JSONEq(t, `[{"type":"divider"}]`, params["blocks"])
}

func TestFlattenArgs_Readers(t *testing.T) {
	t.Parallel()

	params, files, err := flattenArgs(slack.Args{
		"file":    strings.NewReader("raw reader"),
		"content": slack.File{Name: "notes.txt", Reader: strings.NewReader("typed file")},
		"title":   "Notes",
	})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "notes.txt", files["content"].Name)
	assert.Equal(t, "file", files["file"].Name)
	assert.Equal(t, "Notes", params["title"])
}

func TestFlattenArgs_NilFileReader(t *testing.T) {
	t.Parallel()

	_, _, err := flattenArgs(slack.Args{"file": slack.File{Name: "empty"}})
	require.ErrorIs(t, err, slack.ErrFileRequired)
}
