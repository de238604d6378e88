package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioscale/internal/domain/account"
	accountvo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/domain/ticket"
	vo "helioscale/internal/domain/ticket/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

func reconstructEmployee(t *testing.T, id uint, active bool) *account.Account {
	t.Helper()
	email, err := accountvo.NewEmail("staff@example.com")
	require.NoError(t, err)
	acc, err := account.ReconstructAccount(
		id, email, "Staff", "", "", "hash",
		false, true, active, true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return acc
}

func TestAssignTicketUseCase_Success(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusPending, nil)
	employee := reconstructEmployee(t, 5, true)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return employee, nil },
	}
	mailer := &mockTicketMailer{}

	uc := NewAssignTicketUseCase(ticketRepo, accountRepo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 5})

	require.NoError(t, err)
	assert.True(t, result.Ticket.IsAssignedTo(5))
	assert.Equal(t, vo.StatusInProgress, result.Ticket.Status(), "assignment starts work on a pending ticket")
	assert.Equal(t, []uint{1}, mailer.assignedCalls)
}

func TestAssignTicketUseCase_RejectsCustomerAssignee(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusPending, nil)
	customer := reconstructAccount(t, 7, "customer@example.com")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return customer, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, accountRepo, &mockTicketMailer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 7})

	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicketUseCase_RejectsDeactivatedAssignee(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusPending, nil)
	inactive := reconstructEmployee(t, 5, false)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return inactive, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, accountRepo, &mockTicketMailer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 5})

	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicketUseCase_MissingAssignee(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusPending, nil)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return nil, errors.NewNotFoundError("account not found")
		},
	}

	uc := NewAssignTicketUseCase(ticketRepo, accountRepo, &mockTicketMailer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 999})

	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicketUseCase_EmailFailureIsNonFatal(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusPending, nil)
	employee := reconstructEmployee(t, 5, true)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return employee, nil },
	}
	mailer := &mockTicketMailer{err: assert.AnError}

	uc := NewAssignTicketUseCase(ticketRepo, accountRepo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 5})

	require.NoError(t, err)
	assert.True(t, result.Ticket.IsAssignedTo(5))
}
