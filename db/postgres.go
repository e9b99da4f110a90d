package db

import (
	"database/sql"
	"time"

	"linkedin_branding/config"

	_ "github.com/lib/pq"
)

// InitPostgres 初始化数据库连接
func InitPostgres(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return conn, conn.Ping()
}

// InitPostgresWithConfig 使用配置初始化数据库连接池
func InitPostgresWithConfig(cfg *config.Config) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	// 从配置读取连接池参数，提供默认值保护
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 50 // 默认最大连接数
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 10 // 默认最大空闲连接数
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 默认连接最大生命周期（分钟）
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	return conn, conn.Ping()
}

// InitSchema 启动时创建业务表，已存在时不做变更
func InitSchema(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_profiles (
			id              TEXT PRIMARY KEY,
			bio             TEXT,
			industry        TEXT,
			skills          JSONB,
			interests       JSONB,
			sentiment_score DOUBLE PRECISION,
			keywords        JSONB,
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS content_calendar (
			id            BIGSERIAL PRIMARY KEY,
			user_id       TEXT NOT NULL,
			content       TEXT,
			content_type  TEXT,
			schedule_time TIMESTAMPTZ,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_content_calendar_user_id ON content_calendar (user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
