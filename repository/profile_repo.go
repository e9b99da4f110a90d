package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"linkedin_branding/models"
)

// PostgresProfileRepo 用户档案的Postgres实现
type PostgresProfileRepo struct {
	db *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{db: db}
}

// Get 获取用户档案，不存在时返回sql.ErrNoRows
func (r *PostgresProfileRepo) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, bio, industry, skills, interests, sentiment_score, keywords, updated_at
		FROM user_profiles WHERE id = $1`, id)

	p := &models.UserProfile{}
	var bio, industry sql.NullString
	var skills, interests, keywords []byte
	if err := row.Scan(&p.ID, &bio, &industry, &skills, &interests, &p.SentimentScore, &keywords, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Bio = bio.String
	p.Industry = industry.String

	// JSONB列反序列化失败视为数据损坏，按错误处理
	if err := unmarshalList(skills, &p.Skills); err != nil {
		return nil, err
	}
	if err := unmarshalList(interests, &p.Interests); err != nil {
		return nil, err
	}
	if err := unmarshalList(keywords, &p.Keywords); err != nil {
		return nil, err
	}
	return p, nil
}

// Upsert 按id全量覆盖写入档案，事务内执行，失败回滚
func (r *PostgresProfileRepo) Upsert(ctx context.Context, p *models.UserProfile) error {
	skills, err := json.Marshal(emptyIfNil(p.Skills))
	if err != nil {
		return err
	}
	interests, err := json.Marshal(emptyIfNil(p.Interests))
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(emptyIfNil(p.Keywords))
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_profiles (id, bio, industry, skills, interests, sentiment_score, keywords, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			bio = EXCLUDED.bio,
			industry = EXCLUDED.industry,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			sentiment_score = EXCLUDED.sentiment_score,
			keywords = EXCLUDED.keywords,
			updated_at = NOW()`,
		p.ID, p.Bio, p.Industry, skills, interests, p.SentimentScore, keywords)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func unmarshalList(raw []byte, dst *[]string) error {
	*dst = make([]string, 0)
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
