package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomH0011/OnlineBookingSystem/internal/service"
)

// VoiceHandler 语音处理器
type VoiceHandler struct {
	svc *service.Services
}

// NewVoiceHandler 创建语音处理器
func NewVoiceHandler(svc *service.Services) *VoiceHandler {
	return &VoiceHandler{svc: svc}
}

// VoiceRequest 语音合成请求
type VoiceRequest struct {
	Text    string `json:"text" binding:"required"`
	VoiceID string `json:"voice_id"`
	Accent  string `json:"accent"`
}

// VoiceResponse 语音合成响应
type VoiceResponse struct {
	AudioURL string `json:"audio_url"`
	VoiceID  string `json:"voice_id"`
	Accent   string `json:"accent"`
}

// Convert 文本转语音
// 这条路径没有降级：提供商失败就是调用方可见的 500
func (h *VoiceHandler) Convert(c *gin.Context) {
	var req VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	accent := req.Accent
	if accent == "" {
		accent = "british"
	}

	audioURL, err := h.svc.Voice.TextToSpeech(c.Request.Context(), req.Text, req.VoiceID, accent)
	if err != nil {
		log.Printf("[voice] conversion failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error converting text to speech"})
		return
	}

	c.JSON(http.StatusOK, VoiceResponse{
		AudioURL: audioURL,
		VoiceID:  req.VoiceID,
		Accent:   accent,
	})
}

// Voices 列出可用英音
func (h *VoiceHandler) Voices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": h.svc.Voice.GetBritishVoices()})
}
