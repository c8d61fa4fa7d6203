package voice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
)

// maxTextLength 语音合成输入的最大长度
const maxTextLength = 500

// truncationMarker 截断标记
const truncationMarker = "..."

// injectionPhrases 合成文本里要剔除的注入片段，字面子串匹配
var injectionPhrases = []string{
	"ignore previous instructions",
	"forget everything",
	"you are now",
	"pretend to be",
	"act as if",
	"roleplay as",
	"system prompt",
	"admin access",
	"bypass security",
}

// injectionRemovers 注入片段的大小写不敏感删除模式
var injectionRemovers = func() []*regexp.Regexp {
	removers := make([]*regexp.Regexp, len(injectionPhrases))
	for i, phrase := range injectionPhrases {
		removers[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase))
	}
	return removers
}()

// Synthesizer 语音合成提供商
type Synthesizer interface {
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error)
}

// Service 语音服务
// 合成结果落到本地音频目录，返回 /audio 下的引用路径。
// 与聊天路径不同，提供商失败会原样上抛，没有兜底
type Service struct {
	synthesizer Synthesizer
	audioDir    string
}

// NewService 创建语音服务
func NewService(synthesizer Synthesizer, audioDir string) *Service {
	if audioDir == "" {
		audioDir = "./temp_audio"
	}
	return &Service{
		synthesizer: synthesizer,
		audioDir:    audioDir,
	}
}

// TextToSpeech 文本转语音，返回音频制品引用
// voiceSelector 为空时使用默认英音；目录键解析为提供商语音标识，
// 其他非空取值按提供商语音标识原样透传
func (s *Service) TextToSpeech(ctx context.Context, text, voiceSelector, accent string) (string, error) {
	voiceID := resolveVoice(voiceSelector)
	sanitized := SanitizeText(text)

	audio, err := s.synthesizer.Synthesize(ctx, voiceID, sanitized)
	if err != nil {
		return "", fmt.Errorf("text-to-speech failed: %w", err)
	}

	if err := os.MkdirAll(s.audioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	// 以原始文本的哈希命名，同一段文本覆盖写同一个制品
	filename := fmt.Sprintf("audio_%s.mp3", textHash(text))
	path := filepath.Join(s.audioDir, filename)
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", fmt.Errorf("failed to write audio artifact: %w", err)
	}

	return "/audio/" + filename, nil
}

// GetBritishVoices 返回静态英音目录
func (s *Service) GetBritishVoices() []model.VoiceProfile {
	voices := make([]model.VoiceProfile, len(britishVoices))
	copy(voices, britishVoices)
	return voices
}

// HandlePhoneCall 电话应答占位实现：用默认英音合成应答语音
// 电话接入（拨号路由、播放、转接）留给后续的电话服务协作方
func (s *Service) HandlePhoneCall(ctx context.Context, phoneNumber, message string) (string, error) {
	log.Printf("[voice] phone call from %s", phoneNumber)
	return s.TextToSpeech(ctx, message, "", "british")
}

// AudioDir 音频制品目录
func (s *Service) AudioDir() string {
	return s.audioDir
}

// resolveVoice 把逻辑语音键解析成提供商语音标识
func resolveVoice(selector string) string {
	if selector == "" {
		return defaultVoice().VoiceID
	}
	if profile, ok := lookupVoice(selector); ok {
		return profile.VoiceID
	}
	return selector
}

// SanitizeText 清洗合成文本：剔除注入片段并截断超长输入
// 截断按字符计数，不会把多字节字符切成非法 UTF-8
func SanitizeText(text string) string {
	sanitized := text
	for _, remover := range injectionRemovers {
		sanitized = remover.ReplaceAllString(sanitized, "")
	}

	if runes := []rune(sanitized); len(runes) > maxTextLength {
		sanitized = string(runes[:maxTextLength]) + truncationMarker
	}

	return strings.TrimSpace(sanitized)
}

// IsVoiceInjection 判断合成文本是否包含注入尝试
func IsVoiceInjection(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range injectionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if strings.Contains(lower, "jailbreak") {
		return true
	}
	return false
}

// textHash 音频制品的内容键
func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}
