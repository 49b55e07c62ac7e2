package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gosec/site-backend/internal/admin"
	"github.com/gosec/site-backend/internal/config"
	"github.com/gosec/site-backend/internal/tokens"
	"github.com/gosec/site-backend/pkg/logger"
)

// AuthHandler serves the single-admin login flow.
type AuthHandler struct {
	cfg    *config.Config
	admins *admin.Service
}

func NewAuthHandler(cfg *config.Config, admins *admin.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, admins: admins}
}

// Register routes under /auth.
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
}

// Login implements the password grant: form-encoded credentials in,
// bearer token out. Unknown username and wrong password are
// indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if _, err := h.admins.Authenticate(c.Request.Context(), username, password); err != nil {
		if !errors.Is(err, admin.ErrInvalidCredentials) {
			logger.Errorf("login lookup failed for %s: %v", username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": admin.ErrInvalidCredentials.Error()})
		return
	}

	token, err := tokens.Generate(h.cfg.JWT.Secret, username, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Errorf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Verifier returns the token check used by the admin gate: signature
// and expiry first, then the subject must still exist as an admin.
func (h *AuthHandler) Verifier() *TokenVerifier {
	return &TokenVerifier{secret: h.cfg.JWT.Secret, admins: h.admins}
}

type TokenVerifier struct {
	secret string
	admins *admin.Service
}

func (v *TokenVerifier) Verify(ctx context.Context, raw string) (string, error) {
	username, err := tokens.Verify(v.secret, raw)
	if err != nil {
		return "", err
	}
	acct, err := v.admins.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if acct == nil {
		return "", tokens.ErrInvalidToken
	}
	return username, nil
}
