package mappers

import (
	"fmt"

	"helioscale/internal/domain/ticket"
	vo "helioscale/internal/domain/ticket/valueobjects"
	"helioscale/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities
// and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Kind:        t.Kind().String(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Status:      t.Status().String(),
		OwnerID:     t.OwnerID(),
		AssigneeID:  t.AssigneeID(),
		ResolvedAt:  t.ResolvedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	kind, err := vo.NewTicketKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid kind in ticket row (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket row (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		kind,
		model.Subject,
		model.Description,
		status,
		model.OwnerID,
		model.AssigneeID,
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
