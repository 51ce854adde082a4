package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillforge/logger"
)

func testBackoff(maxAttempts int) BackoffPolicy {
	return BackoffPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   time.Millisecond,
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	}
}

func newTestClient(t *testing.T, serverURL string, backoff BackoffPolicy) *PerplexityClient {
	t.Helper()
	oc := openai.DefaultConfig("test-key")
	oc.BaseURL = serverURL
	return &PerplexityClient{
		client:      openai.NewClientWithConfig(oc),
		model:       "test-model",
		temperature: 0.3,
		timeout:     5 * time.Second,
		backoff:     backoff,
		log:         logger.NewNop(),
	}
}

func chatCompletionBody(content string) string {
	return fmt.Sprintf(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":%q},"finish_reason":"stop"}]}`, content)
}

func TestChatRetriesRateLimitThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"message":"rate limited","type":"rate_limit"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletionBody("hello"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, testBackoff(3))
	out, err := c.Chat(context.Background(), "say hello", ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, 2, calls)
}

func TestChatAuthFailureIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key","type":"auth"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, testBackoff(3))
	_, err := c.Chat(context.Background(), "hi", ChatOptions{})
	require.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, 1, calls)
}

func TestChatBadRequestIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"bad payload","type":"invalid_request"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, testBackoff(3))
	_, err := c.Chat(context.Background(), "hi", ChatOptions{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "bad payload")
	assert.Equal(t, 1, calls)
}

func TestChatExhaustsAttempts(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, testBackoff(3))
	_, err := c.Chat(context.Background(), "hi", ChatOptions{})
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, 3, calls)
}

func TestChatDelaySchedulePerErrorClass(t *testing.T) {
	serve := func(status int) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"message":"nope","type":"err"}}`)
		}))
	}

	newClient := func(srvURL string, slept *[]time.Duration) *PerplexityClient {
		backoff := BackoffPolicy{
			MaxAttempts: 3,
			BaseDelay:   time.Second,
			MaxDelay:    30 * time.Second,
			Sleep: func(ctx context.Context, d time.Duration) error {
				*slept = append(*slept, d)
				return nil
			},
		}
		return newTestClient(t, srvURL, backoff)
	}

	t.Run("rate limits back off exponentially", func(t *testing.T) {
		srv := serve(http.StatusTooManyRequests)
		defer srv.Close()
		var slept []time.Duration
		_, err := newClient(srv.URL, &slept).Chat(context.Background(), "hi", ChatOptions{})
		require.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
	})

	t.Run("server errors retry after the base delay", func(t *testing.T) {
		srv := serve(http.StatusInternalServerError)
		defer srv.Close()
		var slept []time.Duration
		_, err := newClient(srv.URL, &slept).Chat(context.Background(), "hi", ChatOptions{})
		require.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)
	})
}

func TestBackoffDelayDoublesAndCaps(t *testing.T) {
	p := BackoffPolicy{BaseDelay: time.Second, MaxDelay: 3 * time.Second}
	assert.Equal(t, time.Second, p.Delay(0))
	assert.Equal(t, 2*time.Second, p.Delay(1))
	assert.Equal(t, 3*time.Second, p.Delay(2))
}
