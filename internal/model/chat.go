package model

import "time"

// 会话状态
const (
	SessionStatusActive    = "ACTIVE"
	SessionStatusEscalated = "ESCALATED"
	SessionStatusClosed    = "CLOSED"
)

// 消息发送方类型
const (
	SenderTypeUser  = "USER"
	SenderTypeAI    = "AI"
	SenderTypeAdmin = "ADMIN"
)

// ChatSession 聊天会话
// report_id 是调用方系统（工单）的外部关联键，唯一索引同时挡住并发重复创建
type ChatSession struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	ReportID  string        `gorm:"uniqueIndex;size:100;not null" json:"report_id"`
	UserID    string        `gorm:"index;size:36" json:"user_id"`
	Status    string        `gorm:"index;size:20;default:ACTIVE" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	Messages  []ChatMessage `gorm:"foreignKey:ChatSessionID" json:"messages,omitempty"`
}

// ChatMessage 聊天消息，入库后不可变
type ChatMessage struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	ChatSessionID string    `gorm:"column:chat_session_id;index;size:36;not null" json:"chat_session_id"`
	Content       string    `gorm:"type:text" json:"content"`
	SenderType    string    `gorm:"size:20;index" json:"sender_type"` // USER, AI, ADMIN
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 指定表名
func (ChatSession) TableName() string {
	return "chat_sessions"
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ConversationTurn 一次用户消息与 AI 回复的配对，仅用于驱动两条消息写入
type ConversationTurn struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}
