package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"linkedin_branding/config"
	"linkedin_branding/logger"
	"linkedin_branding/models"
	"linkedin_branding/utils"
)

// maxPostRunes LinkedIn帖子正文的字符上限
const maxPostRunes = 1300

var errEmptyCompletion = errors.New("模型回复中没有内容")

// BrandingAgent 基于OpenAI的内容代理实现
type BrandingAgent struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewBrandingAgent 创建内容代理。base_url可配置，
// 与OpenAI兼容的网关和测试桩共用同一路径
func NewBrandingAgent(cfg *config.Config) *BrandingAgent {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	timeoutSec := cfg.OpenAI.TimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = 60 // 默认值
	}
	clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(timeoutSec) * time.Second}

	temperature := cfg.OpenAI.Temperature
	if temperature <= 0 {
		temperature = 0.7
	}

	return &BrandingAgent{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.OpenAI.Model,
		temperature: temperature,
	}
}

// analysisPayload 模型分析回复必须匹配的结构，类型不符即解析失败
type analysisPayload struct {
	SentimentScore float64  `json:"sentiment_score"`
	Keywords       []string `json:"keywords"`
}

// AnalyzeProfile 调用模型分析档案情感与关键词。
// 模型回复只接受严格的JSON解析，任何提供方错误、解析失败
// 或字段校验失败都降级为 {0, []}，绝不把回复当代码执行
func (a *BrandingAgent) AnalyzeProfile(ctx context.Context, data models.ProfileData) models.AnalysisResult {
	fallback := models.AnalysisResult{SentimentScore: 0, Keywords: []string{}}

	prompt := buildAnalysisPrompt(data)
	reply, err := a.complete(ctx, prompt)
	if err != nil {
		logger.Error("档案分析调用模型失败", "error", err)
		return fallback
	}

	var payload analysisPayload
	raw := extractJSONFromText(reply)
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logger.Error("解析模型分析回复失败", "error", err, "reply", reply)
		return fallback
	}

	// 校验并收敛到合法范围
	score := payload.SentimentScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	keywords := utils.DeduplicateSlice(payload.Keywords)

	logger.Info("档案分析完成", "sentiment_score", score, "keywords_count", len(keywords))
	return models.AnalysisResult{SentimentScore: score, Keywords: keywords}
}

// GenerateContent 调用模型生成LinkedIn帖子。正文截断到1300字符兜底；
// 话题标签由代理确定性合成：两个固定标签加一个行业派生标签。
// 任何失败降级为 {content: "", hashtags: []}
func (a *BrandingAgent) GenerateContent(ctx context.Context, profile *models.UserProfile, contentType string, trends []string) models.GeneratedContent {
	fallback := models.GeneratedContent{Content: "", Hashtags: []string{}}

	prompt := buildGenerationPrompt(profile, contentType, trends)
	reply, err := a.complete(ctx, prompt)
	if err != nil {
		logger.Error("帖子生成调用模型失败", "error", err, "user_id", profile.ID)
		return fallback
	}

	content := utils.TruncateRunes(strings.TrimSpace(reply), maxPostRunes)

	logger.Info("帖子生成完成", "user_id", profile.ID, "content_length", len([]rune(content)), "trends_count", len(trends))
	return models.GeneratedContent{
		Content:  content,
		Hashtags: SynthesizeHashtags(profile.Industry),
	}
}

// SynthesizeHashtags 合成话题标签：固定标签加行业派生标签
func SynthesizeHashtags(industry string) []string {
	tags := []string{"#LinkedIn", "#PersonalBranding"}
	if industryTag := utils.HashtagFromIndustry(industry); industryTag != "" {
		tags = append(tags, industryTag)
	}
	return tags
}

// complete 单轮chat completion调用
func (a *BrandingAgent) complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: a.temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	logger.Debug("模型调用完成",
		"model", a.model,
		"tokens_total", resp.Usage.TotalTokens,
		"duration_ms", time.Since(start).Milliseconds())
	return resp.Choices[0].Message.Content, nil
}
