package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin_branding/config"
)

func newTestLinkedInClient(srvURL string) *LinkedInClient {
	cfg := &config.Config{}
	cfg.LinkedIn.AccessToken = "test-token"
	cfg.LinkedIn.BaseURL = srvURL
	cfg.LinkedIn.TimeoutSec = 5
	return NewLinkedInClient(cfg)
}

func TestPublish_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/posts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "u1", payload["user_id"])
		assert.Equal(t, "hello", payload["content"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "published", "post_id": "urn:li:share:123"}`))
	}))
	defer srv.Close()

	result, err := newTestLinkedInClient(srv.URL).Publish(context.Background(), "u1", "hello", "text")
	require.NoError(t, err)
	assert.Equal(t, "published", result.Status)
	assert.Equal(t, "urn:li:share:123", result.PostID)
}

func TestPublish_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid token"}`))
	}))
	defer srv.Close()

	_, err := newTestLinkedInClient(srv.URL).Publish(context.Background(), "u1", "hello", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGetAnalytics_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/posts/urn:li:share:123/analytics", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"impressions": 100, "likes": 5}`))
	}))
	defer srv.Close()

	analytics, err := newTestLinkedInClient(srv.URL).GetAnalytics(context.Background(), "urn:li:share:123")
	require.NoError(t, err)
	assert.EqualValues(t, 100, analytics["impressions"])
}

func TestGetAnalytics_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立即关闭，模拟网络故障

	_, err := newTestLinkedInClient(srv.URL).GetAnalytics(context.Background(), "p1")
	require.Error(t, err)
}

func TestStubPlatformClient(t *testing.T) {
	stub := NewStubPlatformClient()

	result, err := stub.Publish(context.Background(), "u1", "hello", "text")
	require.NoError(t, err)
	assert.Equal(t, "published", result.Status)
	assert.NotEmpty(t, result.PostID)

	analytics, err := stub.GetAnalytics(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", analytics["post_id"])
}
