// Package auth 提供认证服务单元测试
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
)

const testSecret = "test-secret-key"

func newTestService() *Service {
	return NewService(testSecret, 24)
}

func testClaims() *model.Claims {
	return &model.Claims{
		UserID:            "42",
		Username:          "alice",
		Email:             "alice@example.com",
		Role:              model.RoleCustomer,
		CustomerSupportID: "cs-7",
	}
}

func TestCreateAndVerifyToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.CreateToken(testClaims())
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}

	if claims.UserID != "42" {
		t.Errorf("expected user id 42, got %q", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %q", claims.Username)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %q", claims.Email)
	}
	if claims.Role != model.RoleCustomer {
		t.Errorf("expected role CUSTOMER, got %q", claims.Role)
	}
	if claims.CustomerSupportID != "cs-7" {
		t.Errorf("expected customer support id cs-7, got %q", claims.CustomerSupportID)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	other := NewService("another-secret", 24)
	token, err := other.CreateToken(testClaims())
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	svc := newTestService()
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "42",
		"role": model.RoleCustomer,
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	svc := newTestService()
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	svc := newTestService()

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.VerifyToken(token); err == nil {
			t.Errorf("expected malformed token %q to be rejected", token)
		}
	}
}

func TestVerifyTokenWrongAlgorithm(t *testing.T) {
	// alg=none 这类绕过必须被拒绝
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	svc := newTestService()
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected token with none algorithm to be rejected")
	}
}

func TestVerifyTokenWithoutExpiration(t *testing.T) {
	eternal := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
	})
	token, err := eternal.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	svc := newTestService()
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected token without exp to be rejected")
	}
}

func TestVerifyTokenNumericSubject(t *testing.T) {
	numeric := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(42),
		"role": model.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := numeric.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	svc := newTestService()
	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserID != "42" {
		t.Errorf("expected numeric sub to map to \"42\", got %q", claims.UserID)
	}
}

func TestHasPermission(t *testing.T) {
	admin := &model.Claims{Role: model.RoleAdmin}
	business := &model.Claims{Role: model.RoleBusiness}
	customer := &model.Claims{Role: model.RoleCustomer}

	if !admin.HasPermission(model.RoleAdmin) || !admin.HasPermission(model.RoleBusiness) || !admin.HasPermission(model.RoleCustomer) {
		t.Error("admin should have every permission")
	}
	if business.HasPermission(model.RoleAdmin) {
		t.Error("business should not have admin permission")
	}
	if !business.HasPermission(model.RoleBusiness) {
		t.Error("business should have business permission")
	}
	if customer.HasPermission(model.RoleBusiness) {
		t.Error("customer should not have business permission")
	}
	if !customer.HasPermission(model.RoleCustomer) {
		t.Error("customer should have customer permission")
	}
}
