package models

import "time"

// ProfileData analyze请求中的档案字段
type ProfileData struct {
	Bio       string   `json:"bio"`
	Industry  string   `json:"industry"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// AnalyzeRequest POST /api/analyze 请求体
type AnalyzeRequest struct {
	UserID      string       `json:"user_id" example:"u1"`
	ProfileData *ProfileData `json:"profile_data"` // 必填，缺失时拒绝请求
}

// GenerateRequest POST /api/generate 请求体
type GenerateRequest struct {
	UserID      string `json:"user_id" example:"u1"`
	ContentType string `json:"content_type" example:"text"` // 缺省为text
	Industry    string `json:"industry,omitempty"`
}

// ScheduleRequest POST /api/schedule 请求体
type ScheduleRequest struct {
	UserID       string    `json:"user_id" example:"u1"`
	Content      string    `json:"content"`
	ContentType  string    `json:"content_type" example:"text"`
	ScheduleTime time.Time `json:"schedule_time"`
}

// AnalyticsRequest GET /api/analytics 请求参数
type AnalyticsRequest struct {
	UserID string `json:"user_id" example:"u1"`
	PostID string `json:"post_id" example:"urn:li:share:123"`
}
