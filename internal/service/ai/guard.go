package ai

import (
	"regexp"
	"strings"
)

// maxMessageLength 聊天输入的最大长度
const maxMessageLength = 1000

// truncationMarker 截断标记
const truncationMarker = "..."

// suspiciousPhrases 已知的提示词注入片段，命中即视为注入尝试
var suspiciousPhrases = []string{
	"ignore previous instructions",
	"forget everything",
	"you are now",
	"pretend to be",
	"act as if",
	"roleplay as",
	"system prompt",
	"admin access",
	"bypass security",
	"jailbreak",
}

// injectionPatterns 注入片段的宽松空白写法
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+previous\s+instructions`),
	regexp.MustCompile(`(?i)forget\s+everything`),
	regexp.MustCompile(`(?i)you\s+are\s+now`),
	regexp.MustCompile(`(?i)pretend\s+to\s+be`),
	regexp.MustCompile(`(?i)act\s+as\s+if`),
	regexp.MustCompile(`(?i)roleplay\s+as`),
}

// IsPromptInjection 判断消息是否包含提示词注入尝试
// 大小写不敏感的子串匹配，未接入主回复路径，单独给调用方使用
func IsPromptInjection(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Sanitize 清洗用户输入：剔除注入片段并截断超长消息
// 截断按字符计数，不会把多字节字符切成非法 UTF-8
func Sanitize(message string) string {
	sanitized := message
	for _, pattern := range injectionPatterns {
		sanitized = pattern.ReplaceAllString(sanitized, "")
	}

	if runes := []rune(sanitized); len(runes) > maxMessageLength {
		sanitized = string(runes[:maxMessageLength]) + truncationMarker
	}

	return strings.TrimSpace(sanitized)
}
