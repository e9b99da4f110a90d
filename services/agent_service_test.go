package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin_branding/config"
	"linkedin_branding/models"
)

// newFakeOpenAI 返回固定回复内容的OpenAI兼容测试服务
func newFakeOpenAI(t *testing.T, reply string, statusCode int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if statusCode != http.StatusOK {
			w.WriteHeader(statusCode)
			fmt.Fprint(w, `{"error": {"message": "boom"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAgent(srvURL string) *BrandingAgent {
	cfg := &config.Config{}
	cfg.OpenAI.APIKey = "test-key"
	cfg.OpenAI.Model = "gpt-4o-mini"
	cfg.OpenAI.BaseURL = srvURL + "/v1"
	cfg.OpenAI.TimeoutSec = 5
	return NewBrandingAgent(cfg)
}

var testProfileData = models.ProfileData{
	Bio:       "Engineer",
	Industry:  "Software",
	Skills:    []string{"Go"},
	Interests: []string{"AI"},
}

func TestAnalyzeProfile_Success(t *testing.T) {
	srv := newFakeOpenAI(t, `{"sentiment_score": 0.8, "keywords": ["engineering", "go", "go"]}`, http.StatusOK)
	defer srv.Close()

	result := newTestAgent(srv.URL).AnalyzeProfile(context.Background(), testProfileData)

	assert.InDelta(t, 0.8, result.SentimentScore, 1e-9)
	assert.Equal(t, []string{"engineering", "go"}, result.Keywords)
}

func TestAnalyzeProfile_SurroundingText(t *testing.T) {
	reply := "Sure! Here is the analysis:\n```json\n{\"sentiment_score\": 0.6, \"keywords\": [\"ai\"]}\n```"
	srv := newFakeOpenAI(t, reply, http.StatusOK)
	defer srv.Close()

	result := newTestAgent(srv.URL).AnalyzeProfile(context.Background(), testProfileData)

	assert.InDelta(t, 0.6, result.SentimentScore, 1e-9)
	assert.Equal(t, []string{"ai"}, result.Keywords)
}

func TestAnalyzeProfile_ScoreClamped(t *testing.T) {
	srv := newFakeOpenAI(t, `{"sentiment_score": 3.5, "keywords": []}`, http.StatusOK)
	defer srv.Close()

	result := newTestAgent(srv.URL).AnalyzeProfile(context.Background(), testProfileData)
	assert.Equal(t, 1.0, result.SentimentScore)

	srv2 := newFakeOpenAI(t, `{"sentiment_score": -0.2, "keywords": []}`, http.StatusOK)
	defer srv2.Close()

	result = newTestAgent(srv2.URL).AnalyzeProfile(context.Background(), testProfileData)
	assert.Equal(t, 0.0, result.SentimentScore)
}

func TestAnalyzeProfile_MalformedReplyFallsBack(t *testing.T) {
	cases := []string{
		"I cannot analyze this profile.",
		`{"sentiment_score": "high", "keywords": ["go"]}`,
		`{"sentiment_score": 0.5, "keywords": "go"}`,
		`{broken json`,
	}

	for _, reply := range cases {
		srv := newFakeOpenAI(t, reply, http.StatusOK)
		result := newTestAgent(srv.URL).AnalyzeProfile(context.Background(), testProfileData)
		srv.Close()

		// 任何解析或校验失败都必须落到安全默认值，分数始终在[0,1]内
		assert.Equal(t, 0.0, result.SentimentScore, "reply: %s", reply)
		assert.NotNil(t, result.Keywords, "reply: %s", reply)
		assert.Empty(t, result.Keywords, "reply: %s", reply)
	}
}

func TestAnalyzeProfile_ProviderErrorFallsBack(t *testing.T) {
	srv := newFakeOpenAI(t, "", http.StatusInternalServerError)
	defer srv.Close()

	result := newTestAgent(srv.URL).AnalyzeProfile(context.Background(), testProfileData)

	assert.Equal(t, 0.0, result.SentimentScore)
	assert.Empty(t, result.Keywords)
}

func TestGenerateContent_Success(t *testing.T) {
	srv := newFakeOpenAI(t, "Exciting times in software! #AI", http.StatusOK)
	defer srv.Close()

	profile := &models.UserProfile{ID: "u1", Bio: "Engineer", Industry: "Software", Skills: []string{"Go"}}
	result := newTestAgent(srv.URL).GenerateContent(context.Background(), profile, "text", []string{"AI trends"})

	assert.Equal(t, "Exciting times in software! #AI", result.Content)
	assert.Equal(t, []string{"#LinkedIn", "#PersonalBranding", "#Software"}, result.Hashtags)
}

func TestGenerateContent_TruncatesTo1300(t *testing.T) {
	srv := newFakeOpenAI(t, strings.Repeat("x", 2000), http.StatusOK)
	defer srv.Close()

	profile := &models.UserProfile{ID: "u1", Industry: "Software"}
	result := newTestAgent(srv.URL).GenerateContent(context.Background(), profile, "text", nil)

	require.Len(t, []rune(result.Content), 1300)
}

func TestGenerateContent_ProviderErrorFallsBack(t *testing.T) {
	srv := newFakeOpenAI(t, "", http.StatusBadGateway)
	defer srv.Close()

	profile := &models.UserProfile{ID: "u1", Industry: "Software"}
	result := newTestAgent(srv.URL).GenerateContent(context.Background(), profile, "text", nil)

	assert.Equal(t, "", result.Content)
	assert.NotNil(t, result.Hashtags)
	assert.Empty(t, result.Hashtags)
}

func TestSynthesizeHashtags(t *testing.T) {
	assert.Equal(t, []string{"#LinkedIn", "#PersonalBranding", "#FinancialServices"}, SynthesizeHashtags("Financial Services"))

	// 行业为空时只有两个固定标签
	assert.Equal(t, []string{"#LinkedIn", "#PersonalBranding"}, SynthesizeHashtags(""))
}
