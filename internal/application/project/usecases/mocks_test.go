package usecases

import (
	"context"
	"time"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/domain/project"
)

type mockProjectRepository struct {
	SaveFunc        func(ctx context.Context, p *project.Project) error
	UpdateFunc      func(ctx context.Context, p *project.Project) error
	GetByIDFunc     func(ctx context.Context, projectID uint) (*project.Project, error)
	ListFunc        func(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error)
	ReplaceTeamFunc func(ctx context.Context, projectID uint, memberIDs []uint) error
	AddImageFunc    func(ctx context.Context, image *project.Image) error
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) ReplaceTeam(ctx context.Context, projectID uint, memberIDs []uint) error {
	if m.ReplaceTeamFunc != nil {
		return m.ReplaceTeamFunc(ctx, projectID, memberIDs)
	}
	return nil
}

func (m *mockProjectRepository) AddImage(ctx context.Context, image *project.Image) error {
	if m.AddImageFunc != nil {
		return m.AddImageFunc(ctx, image)
	}
	return nil
}

type mockAccountRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*account.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, acc *account.Account) error   { return nil }
func (m *mockAccountRepository) Update(ctx context.Context, acc *account.Account) error { return nil }

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return nil, nil
}

func (m *mockAccountRepository) List(ctx context.Context, filter account.Filter) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

// fakeTransactor runs the function directly and records how often a
// transaction was opened.
type fakeTransactor struct {
	calls int
	err   error
}

func (f *fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func employeeAccount(id uint) *account.Account {
	email, _ := vo.NewEmail("employee@example.com")
	acc, _ := account.ReconstructAccount(
		id, email, "Employee", "", "", "hash",
		false, true, true, true,
		time.Now(), time.Now(),
	)
	return acc
}

func customerAccount(id uint) *account.Account {
	email, _ := vo.NewEmail("customer@example.com")
	acc, _ := account.ReconstructAccount(
		id, email, "Customer", "", "", "hash",
		false, false, true, true,
		time.Now(), time.Now(),
	)
	return acc
}
