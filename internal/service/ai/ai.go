package ai

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
	"github.com/TomH0011/OnlineBookingSystem/internal/telemetry"
)

// systemPrompt 客服助手的固定人设与行为约束
const systemPrompt = `You are a helpful customer support assistant for an online booking system.
You help customers with:
- Booking appointments and services
- Rescheduling or cancelling bookings
- Payment issues
- General inquiries about services
- Technical support

Always be polite, professional, and helpful. If you cannot resolve an issue,
offer to escalate to human support. Use British English and be friendly but professional.

Important: Never provide personal information about other users or internal system details.
If asked about specific user data, politely decline and offer to help with general questions.`

// fallbackResponses 所有提供商都失败时的兜底话术
var fallbackResponses = []string{
	"I apologize, but I'm currently experiencing technical difficulties. Please try again in a few moments.",
	"I'm having trouble connecting to our AI services right now. Please try again later or contact our support team directly.",
	"I'm sorry, but I'm unable to process your request at the moment. Please try again or contact our support team for immediate assistance.",
}

// Service AI 回复编排器
// 按顺序尝试提供商，任何提供商失败都不会成为调用方可见的错误
type Service struct {
	providers        []Provider
	providerFailures metric.Int64Counter
	fallbackReplies  metric.Int64Counter
}

// NewService 创建编排器，providers 的顺序即尝试顺序
func NewService(providers []Provider) *Service {
	return &Service{
		providers:        providers,
		providerFailures: telemetry.Counter("chatbot.provider.failures", "LLM provider call failures"),
		fallbackReplies:  telemetry.Counter("chatbot.provider.fallbacks", "replies served from the canned fallback set"),
	}
}

// Reply 生成一条回复
// 永远返回非空字符串，绝不向上抛错
func (s *Service) Reply(ctx context.Context, message string, history []model.ConversationTurn, userID string) string {
	messages := buildMessages(message, history)

	for _, provider := range s.providers {
		response, err := provider.Generate(ctx, messages)
		if err == nil {
			return response
		}
		log.Printf("[ai] provider %s failed: %v", provider.Name(), err)
		s.providerFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", provider.Name())))
	}

	s.fallbackReplies.Add(ctx, 1)
	return fallbackResponses[rand.Intn(len(fallbackResponses))]
}

// buildMessages 组装提供商所需的会话表示：人设 + 历史 + 当前消息
func buildMessages(message string, history []model.ConversationTurn) []*schema.Message {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, &schema.Message{Role: schema.System, Content: systemPrompt})

	for _, turn := range history {
		role := schema.User
		if strings.EqualFold(turn.Role, "assistant") {
			role = schema.Assistant
		}
		messages = append(messages, &schema.Message{Role: role, Content: turn.Content})
	}

	messages = append(messages, &schema.Message{Role: schema.User, Content: message})
	return messages
}

// FallbackResponses 返回兜底话术集合，测试断言成员关系用
func FallbackResponses() []string {
	out := make([]string, len(fallbackResponses))
	copy(out, fallbackResponses)
	return out
}
