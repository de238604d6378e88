package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioscale/internal/infrastructure/auth"
	"helioscale/internal/shared/authorization"
	"helioscale/internal/shared/logger"
)

func authRouter(handler gin.HandlerFunc) (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService("middleware-test-secret", 1)
	m := NewAuthMiddleware(jwtService, logger.NewLogger())

	router := gin.New()
	router.GET("/private", m.RequireAuth(), handler)
	router.GET("/public", m.OptionalAuth(), handler)
	return router, jwtService
}

func claimsEcho(c *gin.Context) {
	if claims, ok := ClaimsFromContext(c); ok {
		c.JSON(http.StatusOK, gin.H{"account_id": claims.AccountID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_id": 0})
}

// expiredToken signs a token with the given secret whose expiry is
// already in the past.
func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	past := time.Now().UTC().Add(-time.Hour)
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(past),
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	router, jwtService := authRouter(claimsEcho)

	token, err := jwtService.Generate(7, "user@example.com", authorization.RoleFlags{IsEmployee: true})
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
		wantType   string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, ""},
		{"no header", "", http.StatusUnauthorized, "missing_credential"},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, "missing_credential"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "token_invalid"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "missing_credential"},
		{"expired token", "Bearer " + expiredToken(t, "middleware-test-secret"), http.StatusUnauthorized, "token_expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantType != "" {
				assert.Contains(t, w.Body.String(), `"type":"`+tt.wantType+`"`)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	router, jwtService := authRouter(claimsEcho)

	token, err := jwtService.Generate(7, "user@example.com", authorization.RoleFlags{})
	require.NoError(t, err)

	t.Run("anonymous passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"account_id":0}`, w.Body.String())
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"account_id":7}`, w.Body.String())
	})

	t.Run("invalid token treated as anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"account_id":0}`, w.Body.String())
	})
}
