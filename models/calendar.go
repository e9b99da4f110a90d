package models

import "time"

// ScheduledPost 内容日历条目，schedule接口创建后不再更新或删除
type ScheduledPost struct {
	ID           int64     `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"` // 有索引，非唯一，不强制外键指向user_profiles
	Content      string    `db:"content" json:"content"`
	ContentType  string    `db:"content_type" json:"content_type"`
	ScheduleTime time.Time `db:"schedule_time" json:"schedule_time"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PublishResult LinkedIn发布结果
type PublishResult struct {
	Status string `json:"status"`
	PostID string `json:"post_id"`
}
