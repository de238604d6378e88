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

func reconstructTicket(t *testing.T, status vo.TicketStatus, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		1, vo.KindComplaint, "Inverter fault", "Error E03 every morning",
		status, 10, assigneeID, nil,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func reconstructAccount(t *testing.T, id uint, emailAddr string) *account.Account {
	t.Helper()
	email, err := accountvo.NewEmail(emailAddr)
	require.NoError(t, err)
	acc, err := account.ReconstructAccount(
		id, email, "Owner", "", "", "hash",
		false, false, true, true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return acc
}

func TestUpdateTicketStatusUseCase_AssigneeResolves(t *testing.T) {
	assignee := uint(5)
	tk := reconstructTicket(t, vo.StatusInProgress, &assignee)
	owner := reconstructAccount(t, 10, "owner@example.com")

	updated := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return owner, nil },
	}
	mailer := &mockTicketMailer{}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, accountRepo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		TicketID: 1,
		Status:   "resolved",
		ActorID:  5,
	})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.True(t, updated)
	assert.Equal(t, []uint{1}, mailer.statusCalls, "owner is notified of the change")
	assert.Equal(t, vo.StatusResolved, result.Ticket.Status())
}

func TestUpdateTicketStatusUseCase_UnassignedEmployeeGetsNotFound(t *testing.T) {
	assignee := uint(5)
	tk := reconstructTicket(t, vo.StatusInProgress, &assignee)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	mailer := &mockTicketMailer{}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, &mockAccountRepository{}, mailer, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		TicketID: 1,
		Status:   "resolved",
		ActorID:  6, // employee, but not the assignee
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err), "unassigned employee cannot learn the ticket exists")
	assert.Empty(t, mailer.statusCalls)
}

func TestUpdateTicketStatusUseCase_AdminBypassesAssignment(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusPending, nil)
	owner := reconstructAccount(t, 10, "owner@example.com")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return owner, nil },
	}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, accountRepo, &mockTicketMailer{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		TicketID: 1,
		Status:   "in_progress",
		ActorID:  99,
		IsAdmin:  true,
	})

	require.NoError(t, err)
	assert.True(t, result.Changed)
}

func TestUpdateTicketStatusUseCase_SameStatusIsNoOp(t *testing.T) {
	assignee := uint(5)
	tk := reconstructTicket(t, vo.StatusInProgress, &assignee)

	updated := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	mailer := &mockTicketMailer{}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, &mockAccountRepository{}, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		TicketID: 1,
		Status:   "in_progress",
		ActorID:  5,
	})

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, updated, "no write for an unchanged status")
	assert.Empty(t, mailer.statusCalls, "no duplicate notification")
}

func TestUpdateTicketStatusUseCase_InvalidStatus(t *testing.T) {
	uc := NewUpdateTicketStatusUseCase(&mockTicketRepository{}, &mockAccountRepository{}, &mockTicketMailer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		TicketID: 1,
		Status:   "archived",
		ActorID:  5,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketStatusUseCase_EmailFailureIsNonFatal(t *testing.T) {
	assignee := uint(5)
	tk := reconstructTicket(t, vo.StatusInProgress, &assignee)
	owner := reconstructAccount(t, 10, "owner@example.com")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) { return owner, nil },
	}
	mailer := &mockTicketMailer{err: assert.AnError}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, accountRepo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		TicketID: 1,
		Status:   "resolved",
		ActorID:  5,
	})

	require.NoError(t, err, "a failed notification never fails the update")
	assert.True(t, result.Changed)
}
