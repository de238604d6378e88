package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/ticket"
	vo "helioscale/internal/domain/ticket/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TicketID uint
	Status   string
	ActorID  uint
	IsAdmin  bool
}

type UpdateTicketStatusResult struct {
	Ticket *ticket.Ticket
	// Changed is false when the ticket was already in the requested
	// status. No update is written and no notification is sent.
	Changed bool
}

// UpdateTicketStatusUseCase changes a ticket's status. Only the current
// assignee or an admin may do so; an employee probing a ticket assigned
// to someone else gets not found, the same as a ticket that does not
// exist.
type UpdateTicketStatusUseCase struct {
	ticketRepo  ticket.Repository
	accountRepo account.Repository
	mailer      TicketMailer
	logger      logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.Repository,
	accountRepo account.Repository,
	mailer TicketMailer,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo:  ticketRepo,
		accountRepo: accountRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error) {
	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !cmd.IsAdmin && !t.IsAssignedTo(cmd.ActorID) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()
	changed, err := t.ChangeStatus(newStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !changed {
		return &UpdateTicketStatusResult{Ticket: t, Changed: false}, nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.notifyOwner(ctx, t, oldStatus, newStatus)

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", oldStatus.String(),
		"to", newStatus.String(),
	)
	return &UpdateTicketStatusResult{Ticket: t, Changed: true}, nil
}

func (uc *UpdateTicketStatusUseCase) notifyOwner(ctx context.Context, t *ticket.Ticket, oldStatus, newStatus vo.TicketStatus) {
	owner, err := uc.accountRepo.GetByID(ctx, t.OwnerID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket owner for notification",
			"ticket_id", t.ID(), "owner_id", t.OwnerID(), "error", err)
		return
	}

	if err := uc.mailer.SendTicketStatusEmail(
		owner.Email().String(), t.Subject(), t.ID(), oldStatus.String(), newStatus.String(),
	); err != nil {
		uc.logger.Warnw("failed to send status email", "ticket_id", t.ID(), "error", err)
	}
}
