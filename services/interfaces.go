package services

import (
	"context"

	"linkedin_branding/models"
)

// ContentAgent 内容代理接口，封装生成式模型的分析和生成能力。
// 两个操作都把内部失败吞掉并返回安全默认值：对尽力而为的AI特性，
// 质量降级优于整个HTTP请求失败
type ContentAgent interface {
	// 分析档案，失败时返回 {sentiment_score: 0, keywords: []}
	AnalyzeProfile(ctx context.Context, data models.ProfileData) models.AnalysisResult

	// 生成帖子，失败时返回 {content: "", hashtags: []}
	GenerateContent(ctx context.Context, profile *models.UserProfile, contentType string, trends []string) models.GeneratedContent
}

// PlatformClient LinkedIn平台客户端接口。与内容代理不同，
// 发布和分析数据的失败向上传播，由HTTP层转为通用服务器错误
type PlatformClient interface {
	Publish(ctx context.Context, userID, content, contentType string) (*models.PublishResult, error)
	GetAnalytics(ctx context.Context, postID string) (map[string]interface{}, error)
}
