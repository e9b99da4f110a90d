package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"linkedin_branding/config"
)

// Logger 全局日志记录器
var Logger *slog.Logger

func init() {
	// 未初始化时退化为stdout文本日志，保证测试环境可用
	Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// Init 根据配置初始化slog日志系统
func Init(cfg *config.Config) error {
	level := parseLevel(cfg.Log.Level)

	writer, err := buildWriter(cfg.Log.Output, cfg.Log.FilePath)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	// 设置默认logger和全局Logger变量
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return nil
}

// parseLevel 解析日志级别
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildWriter 构建日志输出目标
func buildWriter(output, filePath string) (io.Writer, error) {
	openFile := func() (*os.File, error) {
		if dir := filepath.Dir(filePath); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
		return os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	}

	switch strings.ToLower(output) {
	case "file":
		return openFile()
	case "both":
		file, err := openFile()
		if err != nil {
			return nil, err
		}
		return io.MultiWriter(os.Stdout, file), nil
	default:
		return os.Stdout, nil
	}
}

// Debug 记录调试级别的日志
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info 记录信息级别的日志
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn 记录警告级别的日志
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error 记录错误级别的日志
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
