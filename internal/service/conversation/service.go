package conversation

import (
	"context"
	"errors"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"gorm.io/gorm"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
	"github.com/TomH0011/OnlineBookingSystem/internal/repository"
	"github.com/TomH0011/OnlineBookingSystem/internal/telemetry"
)

// Repository 会话持久化的数据访问面
type Repository interface {
	GetSessionWithMessages(ctx context.Context, reportID string) (*model.ChatSession, error)
	AppendExchange(ctx context.Context, reportID, userID, userContent, aiContent string) error
	UpdateSessionStatus(ctx context.Context, reportID, status string) (int64, error)
	ListSessionsByUser(ctx context.Context, userID string) ([]*model.ChatSession, error)
	CountSessions(ctx context.Context) (int64, error)
	CountSessionsByStatus(ctx context.Context) (map[string]int64, error)
	CountSessionsSince(ctx context.Context, since time.Time) (int64, error)
}

var _ Repository = (*repository.ChatRepository)(nil)

// Service 会话存取服务
// 存储层错误不外传：记日志、打指标，对调用方返回空值/false。
// 调用方因此无法区分"确实为空"与"存储故障"，这是有意的取舍
type Service struct {
	repo          Repository
	storeFailures metric.Int64Counter
}

// NewService 创建会话存取服务
func NewService(repo Repository) *Service {
	return &Service{
		repo:          repo,
		storeFailures: telemetry.Counter("chatbot.store.failures", "conversation store operations that swallowed an error"),
	}
}

// ChatHistory 会话元数据加全部消息
type ChatHistory struct {
	ReportID  string              `json:"report_id"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Messages  []model.ChatMessage `json:"messages"`
}

// ChatSessionSummary 会话概要
type ChatSessionSummary struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"report_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatStatistics 会话统计
type ChatStatistics struct {
	TotalSessions     int64            `json:"total_sessions"`
	StatusCounts      map[string]int64 `json:"status_counts"`
	RecentSessions24h int64            `json:"recent_sessions_24h"`
}

// StoreConversation 记录一次用户/AI 交换
// 会话查找、创建与两条消息写入在一个事务内完成，不会留下半创建的会话
func (s *Service) StoreConversation(ctx context.Context, reportID, userID, userMessage, aiResponse string) bool {
	if err := s.repo.AppendExchange(ctx, reportID, userID, userMessage, aiResponse); err != nil {
		s.fail(ctx, "store_conversation", err)
		return false
	}
	return true
}

// GetChatHistory 获取指定 report 的会话历史
// 无会话或存储失败返回 nil；会话存在但没有消息时仍返回元数据
func (s *Service) GetChatHistory(ctx context.Context, reportID string) *ChatHistory {
	session, err := s.repo.GetSessionWithMessages(ctx, reportID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		s.fail(ctx, "get_chat_history", err)
		return nil
	}

	messages := session.Messages
	if messages == nil {
		messages = []model.ChatMessage{}
	}

	return &ChatHistory{
		ReportID:  session.ReportID,
		Status:    session.Status,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		Messages:  messages,
	}
}

// EscalateChat 升级到人工处理
func (s *Service) EscalateChat(ctx context.Context, reportID string) bool {
	return s.setStatus(ctx, "escalate_chat", reportID, model.SessionStatusEscalated)
}

// CloseChatSession 关闭会话
func (s *Service) CloseChatSession(ctx context.Context, reportID string) bool {
	return s.setStatus(ctx, "close_chat_session", reportID, model.SessionStatusClosed)
}

// setStatus 更新状态；没有匹配会话时返回 false，不创建任何东西
func (s *Service) setStatus(ctx context.Context, op, reportID, status string) bool {
	rows, err := s.repo.UpdateSessionStatus(ctx, reportID, status)
	if err != nil {
		s.fail(ctx, op, err)
		return false
	}
	return rows > 0
}

// GetUserChatSessions 列出用户的会话概要，新的在前
func (s *Service) GetUserChatSessions(ctx context.Context, userID string) []ChatSessionSummary {
	sessions, err := s.repo.ListSessionsByUser(ctx, userID)
	if err != nil {
		s.fail(ctx, "get_user_chat_sessions", err)
		return []ChatSessionSummary{}
	}

	summaries := make([]ChatSessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, ChatSessionSummary{
			ID:        session.ID,
			ReportID:  session.ReportID,
			Status:    session.Status,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return summaries
}

// GetChatStatistics 汇总会话数量：总数、按状态、近 24 小时新建
func (s *Service) GetChatStatistics(ctx context.Context) *ChatStatistics {
	total, err := s.repo.CountSessions(ctx)
	if err != nil {
		s.fail(ctx, "get_chat_statistics", err)
		return &ChatStatistics{StatusCounts: map[string]int64{}}
	}

	statusCounts, err := s.repo.CountSessionsByStatus(ctx)
	if err != nil {
		s.fail(ctx, "get_chat_statistics", err)
		return &ChatStatistics{StatusCounts: map[string]int64{}}
	}

	recent, err := s.repo.CountSessionsSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		s.fail(ctx, "get_chat_statistics", err)
		return &ChatStatistics{StatusCounts: map[string]int64{}}
	}

	return &ChatStatistics{
		TotalSessions:     total,
		StatusCounts:      statusCounts,
		RecentSessions24h: recent,
	}
}

// fail 吞掉存储错误时的统一出口：日志加计数器
func (s *Service) fail(ctx context.Context, op string, err error) {
	log.Printf("[conversation] %s failed: %v", op, err)
	s.storeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}
