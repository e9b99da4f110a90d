package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"linkedin_branding/config"
)

func TestGetNextTimePoint(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	// 当天的时间点还没到
	next := getNextTimePoint(now, 9, 0)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), next)

	// 当天的时间点已过，顺延到次日
	next = getNextTimePoint(now, 6, 0)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), next)
}

func TestValidateHourMinute(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.DefaultHour = 6
	cfg.Scheduler.DefaultMinute = 30

	hour, minute := validateHourMinute(cfg, 9, 15)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 15, minute)

	// 越界值回落到默认值
	hour, minute = validateHourMinute(cfg, 25, -1)
	assert.Equal(t, 6, hour)
	assert.Equal(t, 30, minute)
}
