package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkedin_branding/models"
)

func TestExtractJSONFromText_PlainObject(t *testing.T) {
	text := `Here is the analysis: {"sentiment_score": 0.8, "keywords": ["go"]} hope it helps`
	assert.Equal(t, `{"sentiment_score": 0.8, "keywords": ["go"]}`, extractJSONFromText(text))
}

func TestExtractJSONFromText_CodeFence(t *testing.T) {
	text := "```json\n{\"sentiment_score\": 0.5}\n```"
	// 大括号扫描优先命中，围栏只是兜底
	assert.Equal(t, `{"sentiment_score": 0.5}`, extractJSONFromText(text))
}

func TestExtractJSONFromText_NoJSON(t *testing.T) {
	assert.Equal(t, "no structured data here", extractJSONFromText("no structured data here"))
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt(models.ProfileData{
		Bio:       "Engineer",
		Industry:  "Software",
		Skills:    []string{"Go", "SQL"},
		Interests: []string{"AI"},
	})

	assert.Contains(t, prompt, "Bio: Engineer")
	assert.Contains(t, prompt, "Industry: Software")
	assert.Contains(t, prompt, "Go, SQL")
	assert.Contains(t, prompt, "sentiment_score")
	assert.Contains(t, prompt, "keywords")
}

func TestBuildGenerationPrompt(t *testing.T) {
	profile := &models.UserProfile{
		ID:       "u1",
		Bio:      "Engineer",
		Industry: "Software",
		Skills:   []string{"Go"},
	}
	prompt := buildGenerationPrompt(profile, "text", []string{"AI trends", "Cloud computing"})

	assert.Contains(t, prompt, "LinkedIn text post")
	assert.Contains(t, prompt, "Software")
	assert.Contains(t, prompt, "AI trends, Cloud computing")
	assert.Contains(t, prompt, "1300 characters")
	assert.Contains(t, prompt, "call-to-action")
}
