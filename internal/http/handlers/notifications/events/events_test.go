package events

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/user"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*httptest.Server, *sse.Server) {
	return newServerWithReplay(t, true)
}

func newServerWithReplay(t *testing.T, autoReplay bool) (*httptest.Server, *sse.Server) {
	sseServer := sse.New()
	sseServer.AutoStream = true
	sseServer.AutoReplay = autoReplay
	t.Cleanup(sseServer.Close)

	authenticator := user.NewFakeAuthenticator()
	authenticator.Users["token-1"] = "u-1"
	server := httptest.NewServer(New(logging.NewFakeLogger(), sseServer, authenticator))
	t.Cleanup(server.Close)
	return server, sseServer
}

func firstData(t *testing.T, url string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.Nil(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.Nil(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "data: ") {
			return strings.TrimPrefix(line, "data: ")
		}
	}
	return ""
}

func TestStreamsOwnNotifications(t *testing.T) {
	// Setup ---
	server, sseServer := newServer(t)
	sseServer.CreateStream("u-1")
	sseServer.CreateStream("u-2")
	sseServer.Publish("u-2", &sse.Event{Data: []byte("for u-2")})
	sseServer.Publish("u-1", &sse.Event{Data: []byte("for u-1")})

	// Exercise ---
	data := firstData(t, server.URL+"?token=token-1&stream=u-2")

	// Verify ---
	assert.Equal(t, "for u-1", data)
}

func TestStreamIsRemovedAfterLastDisconnect(t *testing.T) {
	// Setup ---
	server, sseServer := newServerWithReplay(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"?token=token-1", nil)
	require.Nil(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.Nil(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Eventually(t, func() bool { return sseServer.StreamExists("u-1") }, time.Second, 10*time.Millisecond)

	// Exercise ---
	cancel()

	// Verify ---
	assert.Eventually(t, func() bool { return !sseServer.StreamExists("u-1") }, 2*time.Second, 10*time.Millisecond)
}

func TestRejectsInvalidTokens(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"no token", ""},
		{"unknown token", "?token=nope"},
		{"too long token", "?token=" + strings.Repeat("a", 5000)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := newServer(t)

			resp, err := http.Get(server.URL + tc.query)

			require.Nil(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
