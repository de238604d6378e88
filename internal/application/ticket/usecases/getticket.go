package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/ticket"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID uint
	ActorID  uint
	IsAdmin  bool
}

type GetTicketResult struct {
	Ticket *ticket.Ticket
}

// GetTicketUseCase loads a single ticket. A ticket the actor may not
// view is reported as not found so the existence of other customers'
// tickets cannot be probed.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !t.CanBeViewedBy(cmd.ActorID, cmd.IsAdmin) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &GetTicketResult{Ticket: t}, nil
}
