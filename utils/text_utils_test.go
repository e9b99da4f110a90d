package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateSlice(t *testing.T) {
	got := DeduplicateSlice([]string{"Go", " Go ", "AI", "", "  ", "AI", "Cloud"})
	assert.Equal(t, []string{"Go", "AI", "Cloud"}, got)
}

func TestDeduplicateSlice_Empty(t *testing.T) {
	assert.Equal(t, []string{}, DeduplicateSlice(nil))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "he", TruncateRunes("hello", 2))

	// 多字节字符按字符数截断，不能截出半个字符
	assert.Equal(t, "数字化", TruncateRunes("数字化转型", 3))

	long := strings.Repeat("a", 2000)
	assert.Len(t, TruncateRunes(long, 1300), 1300)
}

func TestHashtagFromIndustry(t *testing.T) {
	assert.Equal(t, "#Software", HashtagFromIndustry("Software"))
	assert.Equal(t, "#FinancialServices", HashtagFromIndustry("Financial Services"))
	assert.Equal(t, "#CloudComputing", HashtagFromIndustry("  Cloud   Computing  "))
	assert.Equal(t, "", HashtagFromIndustry(""))
	assert.Equal(t, "", HashtagFromIndustry("   "))
}
