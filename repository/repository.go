package repository

import (
	"context"

	"linkedin_branding/models"
)

// ProfileRepository 用户档案存取接口
type ProfileRepository interface {
	// 按id全量覆盖写入，不做字段合并
	Upsert(ctx context.Context, p *models.UserProfile) error

	// 获取用户档案，不存在时返回sql.ErrNoRows
	Get(ctx context.Context, id string) (*models.UserProfile, error)
}

// CalendarRepository 内容日历存取接口
type CalendarRepository interface {
	// 插入新条目并返回自增id
	Insert(ctx context.Context, p *models.ScheduledPost) (int64, error)

	// 按创建顺序返回指定用户的全部条目，没有数据时返回空切片
	ListByUser(ctx context.Context, userID string) ([]models.ScheduledPost, error)
}
