package repository

import (
	"context"
	"database/sql"

	"linkedin_branding/models"
)

// PostgresCalendarRepo 内容日历的Postgres实现
type PostgresCalendarRepo struct {
	db *sql.DB
}

func NewPostgresCalendarRepo(db *sql.DB) *PostgresCalendarRepo {
	return &PostgresCalendarRepo{db: db}
}

// Insert 插入新日历条目，事务内执行，返回自增id
func (r *PostgresCalendarRepo) Insert(ctx context.Context, p *models.ScheduledPost) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO content_calendar (user_id, content, content_type, schedule_time, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id`,
		p.UserID, p.Content, p.ContentType, p.ScheduleTime).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// ListByUser 按创建顺序返回指定用户的日历条目，无数据时返回空切片而非错误
func (r *PostgresCalendarRepo) ListByUser(ctx context.Context, userID string) ([]models.ScheduledPost, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, content, content_type, schedule_time, created_at
		FROM content_calendar WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.ScheduledPost, 0)
	for rows.Next() {
		var p models.ScheduledPost
		var content, contentType sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &content, &contentType, &p.ScheduleTime, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Content = content.String
		p.ContentType = contentType.String
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
