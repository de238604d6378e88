package ticket

import (
	"context"

	vo "helioscale/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
}

type Filter struct {
	Kind       *vo.TicketKind
	Status     *vo.TicketStatus
	OwnerID    *uint
	AssigneeID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
