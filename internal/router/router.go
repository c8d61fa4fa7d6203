package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomH0011/OnlineBookingSystem/internal/handler"
	"github.com/TomH0011/OnlineBookingSystem/internal/middleware"
	"github.com/TomH0011/OnlineBookingSystem/internal/model"
	"github.com/TomH0011/OnlineBookingSystem/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, svc *service.Services) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 存活与健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Chatbot Service is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "ai-chatbot"})
	})

	// 公开接口
	r.GET("/voices", h.Voice.Voices)
	r.Static("/audio", svc.Voice.AudioDir())

	// 需要认证的接口
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(svc.Auth))
	{
		authed.POST("/chat", h.Chat.Chat)
		authed.POST("/voice/convert", h.Voice.Convert)

		authed.GET("/chat/sessions", h.Chat.ListSessions)
		authed.GET("/chat/:report_id/history", h.Chat.GetHistory)
		authed.POST("/chat/:report_id/escalate", h.Chat.Escalate)

		// 管理员
		admin := authed.Group("/")
		admin.Use(middleware.RequireRole(model.RoleAdmin))
		{
			admin.POST("/chat/:report_id/close", h.Chat.Close)
			admin.GET("/chat/statistics", h.Chat.Statistics)
		}
	}

	return r
}
