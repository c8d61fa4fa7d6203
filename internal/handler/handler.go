package handler

import (
	"github.com/TomH0011/OnlineBookingSystem/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Chat  *ChatHandler
	Voice *VoiceHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Chat:  NewChatHandler(svc),
		Voice: NewVoiceHandler(svc),
	}
}
