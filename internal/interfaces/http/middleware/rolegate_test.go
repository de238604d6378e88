package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/infrastructure/auth"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAccountRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*account.Account, error)
}

func (s *stubAccountRepository) Save(ctx context.Context, acc *account.Account) error   { return nil }
func (s *stubAccountRepository) Update(ctx context.Context, acc *account.Account) error { return nil }

func (s *stubAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if s.GetByIDFunc != nil {
		return s.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("account not found")
}

func (s *stubAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return nil, errors.NewNotFoundError("account not found")
}

func (s *stubAccountRepository) List(ctx context.Context, filter account.Filter) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (s *stubAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func storedAccount(t *testing.T, id uint, isAdmin, isEmployee, active bool) *account.Account {
	t.Helper()
	email, err := vo.NewEmail("gate@example.com")
	require.NoError(t, err)
	acc, err := account.ReconstructAccount(
		id, email, "Gate Test", "", "", "hash",
		isAdmin, isEmployee, active, true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return acc
}

// gateRequest runs one request through the gate with the given claims
// pre-attached, the way RequireAuth would leave them.
func gateRequest(t *testing.T, gate gin.HandlerFunc, claims *auth.Claims) (*httptest.ResponseRecorder, *auth.Claims) {
	t.Helper()

	var downstream *auth.Claims
	router := gin.New()
	router.GET("/gated",
		func(c *gin.Context) {
			if claims != nil {
				c.Set(ContextKeyClaims, claims)
			}
			c.Next()
		},
		gate,
		func(c *gin.Context) {
			downstream, _ = ClaimsFromContext(c)
			c.Status(http.StatusOK)
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	router.ServeHTTP(w, req)
	return w, downstream
}

func TestRoleGate_ClaimFlagsPass(t *testing.T) {
	repo := &stubAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			t.Fatal("store lookup must not happen when claim flags suffice")
			return nil, nil
		},
	}
	gate := NewRoleGateMiddleware(nil, repo, logger.NewLogger())

	w, _ := gateRequest(t, gate.RequireAdmin(), &auth.Claims{AccountID: 1, IsAdmin: true, IsEmployee: true})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGate_StaleTokenPromotionFallsThrough(t *testing.T) {
	// The token predates the promotion; the account store has the
	// current flags.
	repo := &stubAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return storedAccount(t, id, true, true, true), nil
		},
	}
	gate := NewRoleGateMiddleware(nil, repo, logger.NewLogger())

	claims := &auth.Claims{AccountID: 1, IsAdmin: false, IsEmployee: false}
	w, downstream := gateRequest(t, gate.RequireAdmin(), claims)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, downstream)
	assert.True(t, downstream.IsAdmin, "handlers must see the refreshed flags")
}

func TestRoleGate_NonAdminDenied(t *testing.T) {
	repo := &stubAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return storedAccount(t, id, false, true, true), nil
		},
	}
	gate := NewRoleGateMiddleware(nil, repo, logger.NewLogger())

	w, _ := gateRequest(t, gate.RequireAdmin(), &auth.Claims{AccountID: 1, IsEmployee: true})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleGate_AdminSatisfiesEmployeeRequirement(t *testing.T) {
	gate := NewRoleGateMiddleware(nil, &stubAccountRepository{}, logger.NewLogger())

	w, _ := gateRequest(t, gate.RequireEmployee(), &auth.Claims{AccountID: 1, IsAdmin: true})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGate_DeactivatedAccountDenied(t *testing.T) {
	repo := &stubAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return storedAccount(t, id, true, true, false), nil
		},
	}
	gate := NewRoleGateMiddleware(nil, repo, logger.NewLogger())

	w, _ := gateRequest(t, gate.RequireAdmin(), &auth.Claims{AccountID: 1})
	assert.Equal(t, http.StatusForbidden, w.Code,
		"a deactivated account cannot ride on stored flags")
}

func TestRoleGate_LookupFailureDenies(t *testing.T) {
	repo := &stubAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return nil, assert.AnError
		},
	}
	gate := NewRoleGateMiddleware(nil, repo, logger.NewLogger())

	w, _ := gateRequest(t, gate.RequireAdmin(), &auth.Claims{AccountID: 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleGate_MissingClaims(t *testing.T) {
	gate := NewRoleGateMiddleware(nil, &stubAccountRepository{}, logger.NewLogger())

	w, _ := gateRequest(t, gate.RequireAdmin(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
