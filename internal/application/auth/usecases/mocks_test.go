package usecases

import (
	"context"

	"helioscale/internal/domain/account"
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

type mockWelcomeMailer struct {
	calls []string
	err   error
}

func (m *mockWelcomeMailer) SendWelcomeEmail(to, name string) error {
	m.calls = append(m.calls, to)
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
