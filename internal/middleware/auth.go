package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
	"github.com/TomH0011/OnlineBookingSystem/internal/service/auth"
)

// RequireAuth 要求有效认证的中间件
// 必须提供有效的 Bearer token，缺失或无效一律 401
func RequireAuth(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid authentication credentials",
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authSvc.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid authentication credentials",
			})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// RequireRole 要求指定角色权限的中间件，需在 RequireAuth 之后使用
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || !claims.HasPermission(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"detail": "Insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims 从上下文获取当前请求的身份信息
func GetClaims(c *gin.Context) (*model.Claims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*model.Claims)
	return claims, ok
}

// GetUserID 从上下文获取当前用户ID
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get("user_id"); exists {
		if userID, ok := id.(string); ok {
			return userID
		}
	}
	return ""
}
