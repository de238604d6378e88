package usecases

import (
	"context"
	"fmt"
	"strings"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/ticket"
	vo "helioscale/internal/domain/ticket/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type CreateTicketCommand struct {
	ActorID      uint
	ActorIsAdmin bool
	// OwnerID optionally files the ticket for another account. Only
	// admins may set it; zero means the actor owns the ticket.
	OwnerID     uint
	Kind        string
	Subject     string
	Description string
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

// CreateTicketUseCase files a complaint or enquiry. Customers file
// for themselves; admins may file on behalf of another account, for
// example a complaint phoned in by a customer. Subject and description
// are stripped of any markup before storage.
type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	accountRepo account.Repository
	sanitizer   ContentSanitizer
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	accountRepo account.Repository,
	sanitizer ContentSanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		accountRepo: accountRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	ownerID, err := uc.resolveOwner(ctx, cmd)
	if err != nil {
		return nil, err
	}

	kind, err := vo.NewTicketKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	subject := strings.TrimSpace(uc.sanitizer.StripTags(cmd.Subject))
	description := strings.TrimSpace(uc.sanitizer.StripTags(cmd.Description))

	t, err := ticket.NewTicket(kind, subject, description, ownerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"kind", t.Kind().String(),
		"owner_id", t.OwnerID(),
		"actor_id", cmd.ActorID,
	)
	return &CreateTicketResult{Ticket: t}, nil
}

// resolveOwner decides who owns the new ticket. A non-zero OwnerID
// pointing at another account requires admin claims and an existing,
// active target account.
func (uc *CreateTicketUseCase) resolveOwner(ctx context.Context, cmd CreateTicketCommand) (uint, error) {
	if cmd.OwnerID == 0 || cmd.OwnerID == cmd.ActorID {
		return cmd.ActorID, nil
	}

	if !cmd.ActorIsAdmin {
		return 0, errors.NewForbiddenError("only admins can create tickets on behalf of another account")
	}

	acc, err := uc.accountRepo.GetByID(ctx, cmd.OwnerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return 0, errors.NewValidationError("ticket owner not found")
		}
		uc.logger.Errorw("failed to check ticket owner", "owner_id", cmd.OwnerID, "error", err)
		return 0, fmt.Errorf("failed to check ticket owner: %w", err)
	}
	if !acc.IsActive() {
		return 0, errors.NewValidationError("ticket owner is deactivated")
	}

	return acc.ID(), nil
}
