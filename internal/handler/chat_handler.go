package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TomH0011/OnlineBookingSystem/internal/middleware"
	"github.com/TomH0011/OnlineBookingSystem/internal/model"
	"github.com/TomH0011/OnlineBookingSystem/internal/service"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	svc *service.Services
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(svc *service.Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ChatRequest 聊天请求
type ChatRequest struct {
	Message             string                   `json:"message" binding:"required"`
	ReportID            string                   `json:"report_id" binding:"required"`
	ConversationHistory []model.ConversationTurn `json:"conversation_history"`
}

// ChatResponse 聊天响应
type ChatResponse struct {
	Response  string    `json:"response"`
	ReportID  string    `json:"report_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat 与 AI 对话
// 提供商故障在编排器内消化，这条路径不会因为 AI 不可用而失败；
// 持久化失败同样不阻断响应，只能靠日志与指标发现
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	history := req.ConversationHistory
	if len(history) == 0 {
		history = h.svc.Context.History(ctx, req.ReportID)
	}

	response := h.svc.AI.Reply(ctx, req.Message, history, userID)

	h.svc.Conversation.StoreConversation(ctx, req.ReportID, userID, req.Message, response)
	h.svc.Context.AppendTurn(ctx, req.ReportID, req.Message, response)

	c.JSON(http.StatusOK, ChatResponse{
		Response:  response,
		ReportID:  req.ReportID,
		Timestamp: time.Now(),
	})
}

// GetHistory 获取指定 report 的会话历史
func (h *ChatHandler) GetHistory(c *gin.Context) {
	reportID := c.Param("report_id")

	history := h.svc.Conversation.GetChatHistory(c.Request.Context(), reportID)
	if history == nil {
		c.JSON(http.StatusOK, gin.H{"history": []interface{}{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": []interface{}{history}})
}

// Escalate 升级到人工支持
// 对调用方是幂等操作：会话不存在也返回成功，结果只体现在日志里
func (h *ChatHandler) Escalate(c *gin.Context) {
	reportID := c.Param("report_id")

	h.svc.Conversation.EscalateChat(c.Request.Context(), reportID)
	c.JSON(http.StatusOK, gin.H{"message": "Chat escalated successfully"})
}

// Close 关闭会话（管理员）
func (h *ChatHandler) Close(c *gin.Context) {
	reportID := c.Param("report_id")

	if !h.svc.Conversation.CloseChatSession(c.Request.Context(), reportID) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Chat session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat session closed successfully"})
}

// ListSessions 列出当前用户的会话
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID := middleware.GetUserID(c)

	sessions := h.svc.Conversation.GetUserChatSessions(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// Statistics 会话统计（管理员）
func (h *ChatHandler) Statistics(c *gin.Context) {
	stats := h.svc.Conversation.GetChatStatistics(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
