package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	OpenAI struct {
		APIKey      string  `yaml:"api_key"`
		Model       string  `yaml:"model"`
		BaseURL     string  `yaml:"base_url"`
		Temperature float32 `yaml:"temperature"`
		TimeoutSec  int     `yaml:"timeout_sec"` // 请求超时时间,单位:秒
	} `yaml:"openai"`
	LinkedIn struct {
		AccessToken string `yaml:"access_token"`
		BaseURL     string `yaml:"base_url"`
		TimeoutSec  int    `yaml:"timeout_sec"` // 请求超时时间,单位:秒
	} `yaml:"linkedin"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		SSLMode         string `yaml:"sslmode"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Redis struct {
		Host       string `yaml:"host"`
		Port       int    `yaml:"port"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TimeoutSec int    `yaml:"timeout_sec"` // 单次操作超时时间,单位:秒
	} `yaml:"redis"`
	Trends struct {
		Seed           []string `yaml:"seed"`            // 启动时写入缓存的行业趋势列表
		RefreshEnabled bool     `yaml:"refresh_enabled"` // 是否启用定时刷新趋势缓存
		RefreshHour    int      `yaml:"refresh_hour"`    // 每天刷新趋势的小时（0-23）
		RefreshMin     int      `yaml:"refresh_min"`     // 每天刷新趋势的分钟（0-59）
	} `yaml:"trends"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`  // 请求超时，单位：秒
		ResponseSec int `yaml:"response_sec"` // 响应超时，单位：秒
		IdleSec     int `yaml:"idle_sec"`     // 空闲超时，单位：秒
	} `yaml:"timeouts"`
	Debug struct {
		Enabled          bool `yaml:"enabled"`            // 是否启用debug模式
		TrendRefreshFreq int  `yaml:"trend_refresh_freq"` // debug模式下趋势刷新频率，单位：秒
		UseStubPlatform  bool `yaml:"use_stub_platform"`  // 使用LinkedIn桩客户端（无token本地运行）
	} `yaml:"debug"`
	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec"` // 调度器检查间隔（秒）
		DefaultHour      int `yaml:"default_hour"`       // 默认执行小时
		DefaultMinute    int `yaml:"default_minute"`     // 默认执行分钟
	} `yaml:"scheduler"`
}

// DefaultTrendSeed 配置缺失时写入趋势缓存的默认行业趋势列表
var DefaultTrendSeed = []string{"AI trends", "Cloud computing", "Digital transformation"}

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		applyEnvOverrides(&cfg)
		applyDerived(&cfg)
		return &cfg
	}

	// 如果config.yaml不存在，则完全从环境变量加载配置
	return loadFromEnv()
}

// applyEnvOverrides 从环境变量中加载敏感信息，覆盖配置文件中的值
func applyEnvOverrides(cfg *Config) {
	// 数据库用户名和密码
	if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
		cfg.DB.Username = envUsername
	}
	if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
		cfg.DB.Password = envPassword
	}

	// OpenAI API密钥
	if envAPIKey := os.Getenv("OPENAI_API_KEY"); envAPIKey != "" {
		cfg.OpenAI.APIKey = envAPIKey
	}

	// LinkedIn访问令牌
	if envToken := os.Getenv("LINKEDIN_ACCESS_TOKEN"); envToken != "" {
		cfg.LinkedIn.AccessToken = envToken
	}

	// Redis地址
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Redis.Port = p
		}
	}
}

// applyDerived 计算派生字段并填充默认值
func applyDerived(cfg *Config) {
	// 计算 Server.Addr 字段
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o-mini"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if len(cfg.Trends.Seed) == 0 {
		cfg.Trends.Seed = DefaultTrendSeed
	}

	// 计算 DB.DSN 字段
	if cfg.DB.DSN == "" {
		if cfg.DB.SSLMode == "" {
			cfg.DB.SSLMode = "disable"
		}
		cfg.DB.DSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.SSLMode)
	}
}

func loadFromEnv() *Config {
	// 当config.yaml加载失败时，创建一个最小配置
	var cfg Config

	// 设置服务器地址
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	// 只从环境变量中加载敏感信息和连接串
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DB.DSN = dsn
	}

	applyEnvOverrides(&cfg)
	applyDerived(&cfg)

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}
