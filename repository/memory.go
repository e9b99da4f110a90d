package repository

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"linkedin_branding/models"
)

// MemoryProfileRepo 用户档案的内存实现，用于测试和本地运行
type MemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[string]models.UserProfile)}
}

func (r *MemoryProfileRepo) Upsert(ctx context.Context, p *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.UpdatedAt = time.Now()
	// 全量覆盖，不合并旧档案的字段
	r.profiles[p.ID] = stored
	return nil
}

func (r *MemoryProfileRepo) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := p
	return &out, nil
}

// MemoryCalendarRepo 内容日历的内存实现
type MemoryCalendarRepo struct {
	mu     sync.RWMutex
	nextID int64
	posts  []models.ScheduledPost
}

func NewMemoryCalendarRepo() *MemoryCalendarRepo {
	return &MemoryCalendarRepo{nextID: 1}
}

func (r *MemoryCalendarRepo) Insert(ctx context.Context, p *models.ScheduledPost) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++
	r.posts = append(r.posts, stored)
	p.ID = stored.ID
	return stored.ID, nil
}

func (r *MemoryCalendarRepo) ListByUser(ctx context.Context, userID string) ([]models.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.ScheduledPost, 0)
	for _, p := range r.posts {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}
