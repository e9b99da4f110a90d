package services

import (
	"fmt"
	"strings"

	"linkedin_branding/logger"
	"linkedin_branding/models"
)

// buildAnalysisPrompt 构建档案分析提示词，要求模型以JSON格式返回结果
func buildAnalysisPrompt(data models.ProfileData) string {
	return fmt.Sprintf(`Analyze this LinkedIn profile:
Bio: %s
Industry: %s
Skills: %s
Interests: %s

Return ONLY a JSON object with this structure:
{
  "sentiment_score": 0.0,
  "keywords": ["keyword1", "keyword2"]
}
sentiment_score is a number between 0 and 1. keywords is a list of strings extracted from the profile.`,
		data.Bio,
		data.Industry,
		strings.Join(data.Skills, ", "),
		strings.Join(data.Interests, ", "))
}

// buildGenerationPrompt 构建帖子生成提示词，嵌入行业、简介、技能和趋势列表
func buildGenerationPrompt(profile *models.UserProfile, contentType string, trends []string) string {
	return fmt.Sprintf(`Generate a LinkedIn %s post for a user in %s with bio: %s, skills: %s.
Incorporate trends: %s.
Keep it under 1300 characters, professional, engaging, with 4-6 hashtags and a call-to-action.
Return only the post text.`,
		contentType,
		profile.Industry,
		profile.Bio,
		strings.Join(profile.Skills, ", "),
		strings.Join(trends, ", "))
}

// extractJSONFromText 从模型回复文本中提取JSON部分
func extractJSONFromText(text string) string {
	// 查找文本中的JSON部分
	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx >= 0 && endIdx > startIdx {
		return text[startIdx : endIdx+1]
	}

	// 如果找不到JSON部分，尝试查找```json和```之间的内容
	startMarker := "```json"
	endMarker := "```"
	startIdx = strings.Index(text, startMarker)
	if startIdx >= 0 {
		startIdx += len(startMarker)
		endIdx = strings.Index(text[startIdx:], endMarker)
		if endIdx > 0 {
			return strings.TrimSpace(text[startIdx : startIdx+endIdx])
		}
	}

	// 如果仍然找不到，返回原始文本
	logger.Warn("无法从模型回复中提取JSON部分，返回原始文本")
	return text
}
