package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"linkedin_branding/config"
	"linkedin_branding/logger"
	"linkedin_branding/models"
)

// LinkedInClient LinkedIn平台客户端，Bearer令牌认证的HTTP调用
type LinkedInClient struct {
	accessToken string
	baseURL     string
	client      *http.Client
}

func NewLinkedInClient(cfg *config.Config) *LinkedInClient {
	baseURL := cfg.LinkedIn.BaseURL
	if baseURL == "" {
		baseURL = "https://api.linkedin.com"
	}

	timeoutSec := cfg.LinkedIn.TimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = 10 // 默认值
	}

	return &LinkedInClient{
		accessToken: cfg.LinkedIn.AccessToken,
		baseURL:     baseURL,
		client:      &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// publishPayload 发布帖子的请求体
type publishPayload struct {
	UserID      string `json:"user_id"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// Publish 发布帖子到LinkedIn，失败向上传播
func (c *LinkedInClient) Publish(ctx context.Context, userID, content, contentType string) (*models.PublishResult, error) {
	body, err := json.Marshal(publishPayload{
		UserID:      userID,
		Content:     content,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	respBody, err := c.do(ctx, http.MethodPost, "/v2/posts", bytes.NewReader(body))
	if err != nil {
		logger.Error("发布帖子到LinkedIn失败", "error", err, "user_id", userID)
		return nil, err
	}

	var result models.PublishResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		logger.Error("解析LinkedIn发布响应失败", "error", err, "user_id", userID)
		return nil, err
	}

	logger.Info("帖子发布成功", "user_id", userID, "post_id", result.PostID)
	return &result, nil
}

// GetAnalytics 获取帖子的分析数据，失败向上传播
func (c *LinkedInClient) GetAnalytics(ctx context.Context, postID string) (map[string]interface{}, error) {
	respBody, err := c.do(ctx, http.MethodGet, "/v2/posts/"+postID+"/analytics", nil)
	if err != nil {
		logger.Error("获取LinkedIn分析数据失败", "error", err, "post_id", postID)
		return nil, err
	}

	var analytics map[string]interface{}
	if err := json.Unmarshal(respBody, &analytics); err != nil {
		logger.Error("解析LinkedIn分析数据失败", "error", err, "post_id", postID)
		return nil, err
	}
	return analytics, nil
}

// do 执行一次平台API调用并读取响应体
func (c *LinkedInClient) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug("LinkedIn API调用完成",
		"method", method,
		"path", path,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		preview := string(respBody)
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		return nil, fmt.Errorf("LinkedIn API请求失败: %d - %s", resp.StatusCode, preview)
	}
	return respBody, nil
}

// StubPlatformClient LinkedIn桩客户端，
// 无访问令牌的本地运行和测试使用（对应原型中的dummy实现）
type StubPlatformClient struct{}

func NewStubPlatformClient() *StubPlatformClient {
	return &StubPlatformClient{}
}

func (s *StubPlatformClient) Publish(ctx context.Context, userID, content, contentType string) (*models.PublishResult, error) {
	preview := content
	if len([]rune(preview)) > 30 {
		preview = string([]rune(preview)[:30]) + "..."
	}
	logger.Info("桩客户端模拟发布帖子", "user_id", userID, "content_preview", preview)
	return &models.PublishResult{Status: "published", PostID: "stub_post_id"}, nil
}

func (s *StubPlatformClient) GetAnalytics(ctx context.Context, postID string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"post_id":     postID,
		"impressions": 0,
		"likes":       0,
		"comments":    0,
	}, nil
}
