package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/TomH0011/OnlineBookingSystem/internal/config"
)

// Provider 提供商策略：给定提示与历史，产出文本或失败
// 编排器按优先级顺序逐个尝试
type Provider interface {
	Name() string
	Generate(ctx context.Context, messages []*schema.Message) (string, error)
}

// chatModelProvider 基于 eino ChatModel 的提供商实现
// OpenAI 与 Gemini 都走 OpenAI 兼容协议，仅 BaseURL/模型不同
type chatModelProvider struct {
	name  string
	model ecomodel.ChatModel
}

// NewChatModelProvider 创建提供商
func NewChatModelProvider(ctx context.Context, name string, cfg config.ProviderConfig, timeout time.Duration) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required for provider: %s", name)
	}

	temperature := float32(0.7)
	maxTokens := 500

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		Timeout:     timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model for %s: %w", name, err)
	}

	return &chatModelProvider{name: name, model: chatModel}, nil
}

// Name 提供商名称
func (p *chatModelProvider) Name() string {
	return p.name
}

// Generate 调用模型生成回复
func (p *chatModelProvider) Generate(ctx context.Context, messages []*schema.Message) (string, error) {
	resp, err := p.model.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", errors.New("empty response from model")
	}
	return content, nil
}
