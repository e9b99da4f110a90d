package models

// AnalyzeResponse 档案分析响应
type AnalyzeResponse struct {
	Status      string      `json:"status" example:"success"`
	UserProfile UserProfile `json:"user_profile"`
}

// GenerateResponse 内容生成响应
type GenerateResponse struct {
	Status  string           `json:"status" example:"success"`
	Content GeneratedContent `json:"content"`
}

// ScheduleResponse 排期响应
type ScheduleResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Post scheduled successfully"`
	PostID  string `json:"post_id" example:"urn:li:share:123"`
}

// AnalyticsResponse 帖子分析数据响应
type AnalyticsResponse struct {
	Status    string                 `json:"status" example:"success"`
	Analytics map[string]interface{} `json:"analytics"`
}

// CalendarResponse 内容日历响应
type CalendarResponse struct {
	Status   string          `json:"status" example:"success"`
	Calendar []ScheduledPost `json:"calendar"`
}
