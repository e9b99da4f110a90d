package models

import "time"

// UserProfile 用户档案，analyze接口全量覆盖写入
type UserProfile struct {
	ID             string    `db:"id" json:"user_id"`
	Bio            string    `db:"bio" json:"bio"`
	Industry       string    `db:"industry" json:"industry"`
	Skills         []string  `db:"skills" json:"skills"`       // JSONB列
	Interests      []string  `db:"interests" json:"interests"` // JSONB列
	SentimentScore float64   `db:"sentiment_score" json:"sentiment_score"`
	Keywords       []string  `db:"keywords" json:"keywords"` // 仅由内容代理生成，不接受用户输入
	UpdatedAt      time.Time `json:"updated_at"`
}

// AnalysisResult 内容代理对档案的分析结果
type AnalysisResult struct {
	SentimentScore float64  `json:"sentiment_score"` // 范围0-1
	Keywords       []string `json:"keywords"`
}

// GeneratedContent 内容代理生成的帖子
type GeneratedContent struct {
	Content  string   `json:"content"`  // 不超过1300字符
	Hashtags []string `json:"hashtags"` // 由代理确定性合成，非模型输出
}
