package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	subject string
	err     error
}

func (v stubVerifier) Verify(ctx context.Context, raw string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return v.subject, nil
}

func protectedRouter(v Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/p", RequireAdmin(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return r
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	r := protectedRouter(stubVerifier{subject: "admin"})

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	r := protectedRouter(stubVerifier{subject: "admin"})

	req := httptest.NewRequest("GET", "/p", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	r := protectedRouter(stubVerifier{subject: "admin"})

	for _, header := range []string{"good-token", "Basic abc", "Bearer", "Bearer "} {
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), "header %q", header)
	}
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	r := protectedRouter(stubVerifier{err: errors.New("expired")})

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRequireAdmin_CaseInsensitiveScheme(t *testing.T) {
	r := protectedRouter(stubVerifier{subject: "admin"})

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
