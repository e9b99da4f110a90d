package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"linkedin_branding/cache"
	"linkedin_branding/config"
	"linkedin_branding/logger"
)

// 验证小时和分钟是否有效
func validateHourMinute(cfg *config.Config, hour, minute int) (int, int) {
	defaultHour := cfg.Scheduler.DefaultHour
	defaultMinute := cfg.Scheduler.DefaultMinute

	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour, "default", defaultHour)
		hour = defaultHour
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute, "default", defaultMinute)
		minute = defaultMinute
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// 任务类型
type TaskType int

const (
	TaskTrendRefresh TaskType = iota
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// Scheduler 任务调度器，当前只有一个任务：定时刷新趋势缓存
type Scheduler struct {
	cfg    *config.Config
	trends cache.TrendStore
	tasks  map[TaskType]*TaskStatus
	mutex  sync.Mutex
}

// NewScheduler 创建新的调度器
func NewScheduler(cfg *config.Config, trends cache.TrendStore) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		trends: trends,
		tasks:  make(map[TaskType]*TaskStatus),
	}
}

// Start 启动调度器。趋势刷新未启用时不启动任何任务
func Start(cfg *config.Config, trends cache.TrendStore) {
	if !cfg.Trends.RefreshEnabled {
		logger.Info("趋势缓存定时刷新未启用")
		return
	}

	scheduler := NewScheduler(cfg, trends)
	scheduler.initTasks()
	go scheduler.run()

	checkInterval := cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	logger.Info("调度器已启动", "check_interval_sec", checkInterval)
}

// 初始化任务
func (s *Scheduler) initTasks() {
	now := time.Now()

	if s.cfg.Debug.Enabled {
		// Debug模式：按配置的秒数间隔刷新
		freqSeconds := s.cfg.Debug.TrendRefreshFreq
		if freqSeconds <= 0 {
			freqSeconds = 1800
		}
		interval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskTrendRefresh] = &TaskStatus{
			LastRun:     now.Add(-interval),
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("趋势缓存刷新 (Debug模式: 每%d秒)", freqSeconds),
		}
		logger.Info("Debug模式已启用", "frequency_seconds", freqSeconds)
	} else {
		// 正常模式：每天在指定时间点刷新
		hour, minute := validateHourMinute(s.cfg, s.cfg.Trends.RefreshHour, s.cfg.Trends.RefreshMin)
		nextRun := getNextTimePoint(now, hour, minute)

		s.tasks[TaskTrendRefresh] = &TaskStatus{
			LastRun:     nextRun.Add(-24 * time.Hour),
			NextRun:     nextRun,
			Description: fmt.Sprintf("趋势缓存刷新 (%02d:%02d)", hour, minute),
		}
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

// 主循环
func (s *Scheduler) run() {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// 检查任务
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning {
			continue
		}
		if status.NextRun.IsZero() {
			continue
		}

		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		// 更新下次运行时间
		if s.cfg.Debug.Enabled {
			freqSeconds := s.cfg.Debug.TrendRefreshFreq
			if freqSeconds <= 0 {
				freqSeconds = 1800
			}
			status.NextRun = now.Add(time.Duration(freqSeconds) * time.Second)
		} else {
			hour, minute := validateHourMinute(s.cfg, s.cfg.Trends.RefreshHour, s.cfg.Trends.RefreshMin)
			status.NextRun = getNextTimePoint(now, hour, minute)
		}

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskTrendRefresh:
		// 重新写入配置的趋势列表。键的覆盖是刷新语义，不涉及用户数据
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.trends.SetTrends(ctx, s.cfg.Trends.Seed); err != nil {
			logger.Error("定时刷新趋势缓存失败", "error", err)
			return
		}
		logger.Info("趋势缓存已刷新", "trends_count", len(s.cfg.Trends.Seed))
	}
}
