package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
)

// Service 认证服务
// 校验与签发共用同一个服务端密钥，算法固定为 HS256
type Service struct {
	secret          []byte
	expirationHours int
}

// NewService 创建认证服务
func NewService(secret string, expirationHours int) *Service {
	if expirationHours <= 0 {
		expirationHours = 24
	}
	return &Service{
		secret:          []byte(secret),
		expirationHours: expirationHours,
	}
}

// VerifyToken 验证令牌并返回身份信息
// 签名错误、格式错误、过期一律返回错误，不会 panic
func (s *Service) VerifyToken(tokenString string) (*model.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("[auth] token rejected: %v", err)
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	// jwt v5 已校验 exp，但签发方可能省略该字段，这里不接受无限期令牌
	if _, hasExp := mapClaims["exp"]; !hasExp {
		return nil, errors.New("token has no expiration")
	}

	return &model.Claims{
		UserID:            claimString(mapClaims, "sub"),
		Username:          claimString(mapClaims, "username"),
		Email:             claimString(mapClaims, "email"),
		Role:              claimString(mapClaims, "role"),
		CustomerSupportID: claimString(mapClaims, "customer_support_id"),
	}, nil
}

// CreateToken 为指定身份签发令牌，嵌入 iat 与固定窗口的 exp
// 供其他协作方（如管理后台）调用，核心请求路径只做校验
func (s *Service) CreateToken(claims *model.Claims) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"sub":      claims.UserID,
		"username": claims.Username,
		"email":    claims.Email,
		"role":     claims.Role,
		"exp":      now.Add(time.Duration(s.expirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	if claims.CustomerSupportID != "" {
		mapClaims["customer_support_id"] = claims.CustomerSupportID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// claimString 读取字符串声明，兼容签发方把数字 ID 写成 number 的情况
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
