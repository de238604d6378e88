package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/ticket"
	vo "helioscale/internal/domain/ticket/valueobjects"
	"helioscale/internal/shared/authorization"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type ListTicketsCommand struct {
	ActorID uint
	Flags   authorization.RoleFlags

	Kind      string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets  []*ticket.Ticket
	Total    int64
	Page     int
	PageSize int
}

// ListTicketsUseCase lists tickets scoped by role: customers see their
// own, employees see tickets assigned to them, admins see everything.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
		SortBy:    cmd.SortBy,
		SortOrder: cmd.SortOrder,
	}

	if cmd.Kind != "" {
		kind, err := vo.NewTicketKind(cmd.Kind)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Kind = &kind
	}
	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	switch {
	case cmd.Flags.IsAdmin:
		// unrestricted
	case cmd.Flags.IsEmployee:
		filter.AssigneeID = &cmd.ActorID
	default:
		filter.OwnerID = &cmd.ActorID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Tickets:  tickets,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
