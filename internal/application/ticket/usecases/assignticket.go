package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/ticket"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
}

type AssignTicketResult struct {
	Ticket *ticket.Ticket
}

// AssignTicketUseCase assigns a ticket to an employee. Assigning a
// pending ticket moves it to in_progress, and the assignee is notified
// by email on a best-effort basis.
type AssignTicketUseCase struct {
	ticketRepo  ticket.Repository
	accountRepo account.Repository
	mailer      TicketMailer
	logger      logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	accountRepo account.Repository,
	mailer TicketMailer,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:  ticketRepo,
		accountRepo: accountRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	assignee, err := uc.accountRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("assignee not found")
		}
		uc.logger.Errorw("failed to get assignee", "account_id", cmd.AssigneeID, "error", err)
		return nil, fmt.Errorf("failed to get assignee: %w", err)
	}

	if !assignee.IsEmployee() && !assignee.IsAdmin() {
		return nil, errors.NewValidationError("assignee must be an employee")
	}
	if !assignee.IsActive() {
		return nil, errors.NewValidationError("assignee account is deactivated")
	}

	if err := t.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if err := uc.mailer.SendTicketAssignedEmail(
		assignee.Email().String(), assignee.Name(), t.Subject(), t.ID(),
	); err != nil {
		uc.logger.Warnw("failed to send assignment email", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", assignee.ID())
	return &AssignTicketResult{Ticket: t}, nil
}
