package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helioscale/internal/domain/account"
	"helioscale/internal/infrastructure/cache"
	"helioscale/internal/shared/authorization"
	"helioscale/internal/shared/logger"
	"helioscale/internal/shared/utils"
)

const roleLookupTimeout = 3 * time.Second

// RoleGateMiddleware enforces role requirements with a two-tier check.
// Tokens are long-lived, so the flags baked into a claim can lag a
// promotion. When the claim alone does not satisfy the requirement the
// gate consults the role cache, then the account store, before
// denying. A successful fallback patches the in-request claims so
// downstream handlers see the refreshed flags.
type RoleGateMiddleware struct {
	roleCache   *cache.RoleCache
	accountRepo account.Repository
	logger      logger.Interface
}

func NewRoleGateMiddleware(
	roleCache *cache.RoleCache,
	accountRepo account.Repository,
	logger logger.Interface,
) *RoleGateMiddleware {
	return &RoleGateMiddleware{
		roleCache:   roleCache,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (m *RoleGateMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(authorization.RequireAdmin)
}

func (m *RoleGateMiddleware) RequireEmployee() gin.HandlerFunc {
	return m.require(authorization.RequireEmployee)
}

func (m *RoleGateMiddleware) require(req authorization.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		if claims.RoleFlags().Satisfies(req) {
			c.Next()
			return
		}

		// Tier two: the token may predate a role change.
		flags, ok := m.currentFlags(c.Request.Context(), claims.AccountID)
		if ok && flags.Satisfies(req) {
			claims.IsAdmin = flags.IsAdmin
			claims.IsEmployee = flags.IsEmployee
			c.Set(ContextKeyClaims, claims)
			c.Next()
			return
		}

		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

// currentFlags resolves the account's current role flags, preferring
// the cache and falling back to the account store on a miss. Lookup
// failures deny rather than grant.
func (m *RoleGateMiddleware) currentFlags(ctx context.Context, accountID uint) (authorization.RoleFlags, bool) {
	ctx, cancel := context.WithTimeout(ctx, roleLookupTimeout)
	defer cancel()

	if m.roleCache != nil {
		if cached, err := m.roleCache.Get(ctx, accountID); err == nil {
			return *cached, true
		} else if !errors.Is(err, cache.ErrRoleNotCached) {
			m.logger.Warnw("role cache lookup failed", "account_id", accountID, "error", err)
		}
	}

	acc, err := m.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		m.logger.Warnw("role fallback lookup failed", "account_id", accountID, "error", err)
		return authorization.RoleFlags{}, false
	}
	if !acc.IsActive() {
		return authorization.RoleFlags{}, false
	}

	flags := acc.RoleFlags()
	if m.roleCache != nil {
		if err := m.roleCache.Set(ctx, accountID, flags); err != nil {
			m.logger.Warnw("failed to cache role flags", "account_id", accountID, "error", err)
		}
	}
	return flags, true
}
