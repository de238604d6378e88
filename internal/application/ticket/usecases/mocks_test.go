package usecases

import (
	"context"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/ticket"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

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

type mockTicketMailer struct {
	assignedCalls []uint
	statusCalls   []uint
	err           error
}

func (m *mockTicketMailer) SendTicketAssignedEmail(to, assigneeName, subject string, ticketID uint) error {
	m.assignedCalls = append(m.assignedCalls, ticketID)
	return m.err
}

func (m *mockTicketMailer) SendTicketStatusEmail(to, subject string, ticketID uint, oldStatus, newStatus string) error {
	m.statusCalls = append(m.statusCalls, ticketID)
	return m.err
}

type passthroughSanitizer struct{}

func (passthroughSanitizer) StripTags(content string) string { return content }
