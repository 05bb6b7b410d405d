package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/config"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
)

func TestSignupAndLogin(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	ctrl := NewAuthController(storage.NewMemStorage(), cfg)
	ctx := context.Background()

	user, err := ctrl.Signup(ctx, "admin", "hunter2")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	tokenStr, err := ctrl.Login(ctx, "admin", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != user.ID.String() {
		t.Errorf("token carries wrong user_id")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctrl := NewAuthController(storage.NewMemStorage(), config.Config{JWTSecret: "test-secret"})
	ctx := context.Background()

	if _, err := ctrl.Signup(ctx, "admin", "hunter2"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := ctrl.Login(ctx, "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := ctrl.Login(ctx, "nobody", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
