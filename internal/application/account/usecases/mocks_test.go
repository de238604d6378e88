package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/infrastructure/auth"
)

type mockAccountRepository struct {
	SaveFunc          func(ctx context.Context, acc *account.Account) error
	UpdateFunc        func(ctx context.Context, acc *account.Account) error
	GetByIDFunc       func(ctx context.Context, id uint) (*account.Account, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*account.Account, error)
	ListFunc          func(ctx context.Context, filter account.Filter) ([]*account.Account, int64, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, acc *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepository) List(ctx context.Context, filter account.Filter) ([]*account.Account, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockAccountMailer struct {
	welcomeCalls  []string
	verifiedCalls []string
	err           error
}

func (m *mockAccountMailer) SendWelcomeEmail(to, name string) error {
	m.welcomeCalls = append(m.welcomeCalls, to)
	return m.err
}

func (m *mockAccountMailer) SendAccountVerifiedEmail(to, name string) error {
	m.verifiedCalls = append(m.verifiedCalls, to)
	return m.err
}

type mockRoleCache struct {
	invalidated []uint
	err         error
}

func (m *mockRoleCache) Invalidate(ctx context.Context, accountID uint) error {
	m.invalidated = append(m.invalidated, accountID)
	return m.err
}

func newTestHasher() *auth.BcryptPasswordHasher {
	// Low cost keeps the suite fast.
	return auth.NewBcryptPasswordHasher(4)
}

func accountWithPassword(t *testing.T, hasher *auth.BcryptPasswordHasher, password string) *account.Account {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	email, err := vo.NewEmail("member@example.com")
	require.NoError(t, err)
	acc, err := account.ReconstructAccount(
		1, email, "Member", "", "", hash,
		false, false, true, true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return acc
}

func reconstructAccount(t *testing.T, id uint, verified bool) *account.Account {
	t.Helper()
	email, err := vo.NewEmail("member@example.com")
	require.NoError(t, err)
	acc, err := account.ReconstructAccount(
		id, email, "Member", "", "", "hash",
		false, false, true, verified,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return acc
}
