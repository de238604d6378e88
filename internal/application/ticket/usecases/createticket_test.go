package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/ticket"
	vo "helioscale/internal/domain/ticket/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
	"helioscale/internal/shared/services/markdown"
)

func TestCreateTicketUseCase_Success(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, &mockAccountRepository{}, passthroughSanitizer{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		Kind:        "enquiry",
		Subject:     "Quote for weighbridge service",
		Description: "Annual calibration for a 60t weighbridge.",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, vo.KindEnquiry, result.Ticket.Kind())
	assert.Equal(t, vo.StatusPending, result.Ticket.Status())
	assert.Equal(t, uint(10), result.Ticket.OwnerID())
}

func TestCreateTicketUseCase_AdminFilesForCustomer(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return reconstructAccount(t, id, "customer@example.com"), nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, accountRepo, passthroughSanitizer{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:      1,
		ActorIsAdmin: true,
		OwnerID:      42,
		Kind:         "complaint",
		Subject:      "Weighbridge reads 2t heavy",
		Description:  "Phoned in: readings drifted after the monsoon.",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(42), result.Ticket.OwnerID(),
		"the ticket belongs to the customer, not the admin who filed it")
}

func TestCreateTicketUseCase_NonAdminCannotFileForOthers(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("nothing may be saved when the owner override is rejected")
			return nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, &mockAccountRepository{}, passthroughSanitizer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		OwnerID:     42,
		Kind:        "complaint",
		Subject:     "subject",
		Description: "description",
	})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateTicketUseCase_OwnIDIsSelfFiling(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			t.Fatal("no owner lookup when the actor names themselves")
			return nil, nil
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, accountRepo, passthroughSanitizer{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		OwnerID:     10,
		Kind:        "enquiry",
		Subject:     "subject",
		Description: "description",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.Ticket.OwnerID())
}

func TestCreateTicketUseCase_UnknownOwner(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return nil, errors.NewNotFoundError("account not found")
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, accountRepo, passthroughSanitizer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:      1,
		ActorIsAdmin: true,
		OwnerID:      99,
		Kind:         "complaint",
		Subject:      "subject",
		Description:  "description",
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicketUseCase_DeactivatedOwner(t *testing.T) {
	accountRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return reconstructEmployee(t, id, false), nil
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, accountRepo, passthroughSanitizer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:      1,
		ActorIsAdmin: true,
		OwnerID:      42,
		Kind:         "complaint",
		Subject:      "subject",
		Description:  "description",
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicketUseCase_StripsMarkup(t *testing.T) {
	ticketRepo := &mockTicketRepository{}

	// The real sanitizer, not a passthrough: script tags must not
	// survive into storage.
	uc := NewCreateTicketUseCase(ticketRepo, &mockAccountRepository{}, markdown.NewService(), logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		Kind:        "complaint",
		Subject:     `Broken <script>alert("x")</script> display`,
		Description: "The <b>display</b> flickers.",
	})

	require.NoError(t, err)
	assert.NotContains(t, result.Ticket.Subject(), "<script>")
	assert.NotContains(t, result.Ticket.Description(), "<b>")
	assert.Contains(t, result.Ticket.Description(), "display")
}

func TestCreateTicketUseCase_InvalidKind(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockAccountRepository{}, passthroughSanitizer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		Kind:        "feedback",
		Subject:     "subject",
		Description: "description",
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicketUseCase_EmptyAfterSanitizing(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockAccountRepository{}, markdown.NewService(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		Kind:        "complaint",
		Subject:     strings.TrimSpace("<script></script>"),
		Description: "description",
	})

	assert.True(t, errors.IsValidationError(err), "a subject that is all markup is rejected")
}
