package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"helioscale/internal/infrastructure/auth"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
	"helioscale/internal/shared/utils"
)

const (
	// ContextKeyClaims holds the *auth.Claims of the authenticated
	// request.
	ContextKeyClaims = "auth_claims"
	// ContextKeyAccountID holds the account ID as uint.
	ContextKeyAccountID = "account_id"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid bearer token and
// attaches the verified claims to the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewMissingCredentialError())
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			authErr := classifyTokenError(err)
			if errors.ShouldLogAuthError(authErr) {
				m.logger.Warnw("failed to verify token",
					"error", err,
					"security_event", errors.IsSecurityEvent(authErr),
				)
			}
			utils.ErrorResponseWithError(c, authErr)
			c.Abort()
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but lets
// anonymous requests through. Used on the public portfolio routes so
// staff see unpublished projects.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			// An invalid token on an optional route is treated as
			// anonymous rather than rejected.
			c.Next()
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Next()
	}
}

// classifyTokenError separates the expired-token case, which callers
// resolve by logging in again, from everything else.
func classifyTokenError(err error) *errors.AuthError {
	if stderrors.Is(err, jwt.ErrTokenExpired) {
		return errors.NewTokenExpiredError("access token")
	}
	return errors.NewTokenInvalidError("access token")
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// ClaimsFromContext extracts the verified claims set by RequireAuth.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
