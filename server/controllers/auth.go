package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/config"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
)

// ErrInvalidCredentials maps to 401 at the route layer.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthController struct {
	store storage.Storage
	cfg   config.Config
}

func NewAuthController(store storage.Storage, cfg config.Config) *AuthController {
	return &AuthController{store: store, cfg: cfg}
}

func (c *AuthController) Signup(ctx context.Context, username, password string) (*models.User, error) {
	return c.store.CreateUser(ctx, username, password)
}

// Login checks the stored credentials and returns a 24h HS256 token.
func (c *AuthController) Login(ctx context.Context, username, password string) (string, error) {
	user, err := c.store.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil || user.Password != password {
		return "", ErrInvalidCredentials
	}
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}
