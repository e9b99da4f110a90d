package utils

import "strings"

// DeduplicateSlice 去重字符串切片
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// TruncateRunes 按字符数截断文本（LinkedIn帖子上限1300字符）
func TruncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// HashtagFromIndustry 从行业名称派生话题标签：去除空白后加#前缀
func HashtagFromIndustry(industry string) string {
	compact := strings.Join(strings.Fields(industry), "")
	if compact == "" {
		return ""
	}
	return "#" + compact
}
