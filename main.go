package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // 导入 swag

	"linkedin_branding/cache"
	"linkedin_branding/config"
	"linkedin_branding/db"
	_ "linkedin_branding/docs" // 导入 swagger 文档
	"linkedin_branding/handlers"
	"linkedin_branding/logger"
	"linkedin_branding/repository"
	"linkedin_branding/scheduler"
	"linkedin_branding/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	conn, err := db.InitPostgresWithConfig(cfg)
	if err != nil {
		logger.Error("初始化Postgres失败", "error", err)
		os.Exit(1)
	}
	if err := db.InitSchema(conn); err != nil {
		logger.Error("初始化数据库表失败", "error", err)
		os.Exit(1)
	}
	logger.Info("Postgres连接成功",
		"max_open_conns", cfg.DB.MaxOpenConns,
		"max_idle_conns", cfg.DB.MaxIdleConns,
		"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

	// 启动时无条件写入行业趋势种子。写入失败视为致命，
	// 后续读取降级由缓存层自己处理
	redisClient := cache.NewRedisClient(cfg)
	trendCache := cache.NewRedisTrendCache(redisClient, cfg)
	if err := trendCache.SetTrends(context.Background(), cfg.Trends.Seed); err != nil {
		logger.Error("写入趋势缓存失败", "error", err)
		os.Exit(1)
	}
	logger.Info("趋势缓存写入成功", "trends", cfg.Trends.Seed)

	// 进程级共享客户端，创建一次供所有请求复用
	agent := services.NewBrandingAgent(cfg)
	var platform services.PlatformClient
	if cfg.Debug.UseStubPlatform {
		logger.Warn("使用LinkedIn桩客户端，不会发布真实帖子")
		platform = services.NewStubPlatformClient()
	} else {
		platform = services.NewLinkedInClient(cfg)
	}

	profileRepo := repository.NewPostgresProfileRepo(conn)
	calendarRepo := repository.NewPostgresCalendarRepo(conn)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := handlers.NewBrandingHandler(cfg, profileRepo, calendarRepo, trendCache, agent, platform)
	handlers.RegisterRoutes(r, h)

	// start cron
	scheduler.Start(cfg, trendCache)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("服务器启动", "address", serverAddr)
	logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  secondsOrDefault(cfg.Timeouts.RequestSec, 15),
		WriteTimeout: secondsOrDefault(cfg.Timeouts.ResponseSec, 120),
		IdleTimeout:  secondsOrDefault(cfg.Timeouts.IdleSec, 60),
	}
	log.Fatal(srv.ListenAndServe())
}

func secondsOrDefault(seconds, def int) time.Duration {
	if seconds <= 0 {
		seconds = def
	}
	return time.Duration(seconds) * time.Second
}
