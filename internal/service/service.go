package service

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TomH0011/OnlineBookingSystem/internal/config"
	"github.com/TomH0011/OnlineBookingSystem/internal/repository"
	"github.com/TomH0011/OnlineBookingSystem/internal/service/ai"
	"github.com/TomH0011/OnlineBookingSystem/internal/service/auth"
	"github.com/TomH0011/OnlineBookingSystem/internal/service/conversation"
	"github.com/TomH0011/OnlineBookingSystem/internal/service/session"
	"github.com/TomH0011/OnlineBookingSystem/internal/service/voice"
)

// Services 服务集合
type Services struct {
	Auth         *auth.Service
	AI           *ai.Service
	Conversation *conversation.Service
	Voice        *voice.Service
	Context      *session.Cache

	Config *config.Config
}

// NewServices 创建所有服务
func NewServices(repos *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	ctx := context.Background()

	return &Services{
		Auth:         auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.ExpirationHours),
		AI:           ai.NewService(newProviders(ctx, cfg)),
		Conversation: conversation.NewService(repos.Chat),
		Voice:        newVoiceService(cfg),
		Context:      session.NewCache(redisClient),
		Config:       cfg,
	}, nil
}

// newProviders 按优先级组装 LLM 提供商：OpenAI 优先，Gemini 兜底
// 未配置密钥的提供商跳过；两个都缺时编排器只剩兜底话术
func newProviders(ctx context.Context, cfg *config.Config) []ai.Provider {
	timeout := time.Duration(cfg.AI.Timeout) * time.Second

	var providers []ai.Provider
	if openaiProvider, err := ai.NewChatModelProvider(ctx, "openai", cfg.AI.OpenAI, timeout); err != nil {
		log.Printf("Warning: openai provider unavailable: %v", err)
	} else {
		providers = append(providers, openaiProvider)
	}

	if geminiProvider, err := ai.NewChatModelProvider(ctx, "gemini", cfg.AI.Gemini, timeout); err != nil {
		log.Printf("Warning: gemini provider unavailable: %v", err)
	} else {
		providers = append(providers, geminiProvider)
	}

	return providers
}

// newVoiceService 创建语音服务
func newVoiceService(cfg *config.Config) *voice.Service {
	client := voice.NewElevenLabsClient(
		cfg.Voice.ElevenLabsAPIKey,
		cfg.Voice.BaseURL,
		cfg.Voice.Model,
		time.Duration(cfg.Voice.Timeout)*time.Second,
	)
	return voice.NewService(client, cfg.Voice.AudioDir)
}
