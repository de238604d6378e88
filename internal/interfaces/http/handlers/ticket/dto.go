package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/ticket/usecases"
	"helioscale/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Kind        string `json:"kind" binding:"required"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	// OwnerID lets an admin file the ticket for a customer, e.g. a
	// complaint taken over the phone. Ignored unless the caller is an
	// admin targeting another account.
	OwnerID uint `json:"owner_id" binding:"omitempty"`
}

func (r *CreateTicketRequest) ToCommand(actorID uint, actorIsAdmin bool) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ActorID:      actorID,
		ActorIsAdmin: actorIsAdmin,
		OwnerID:      r.OwnerID,
		Kind:         r.Kind,
		Subject:      r.Subject,
		Description:  r.Description,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListTicketsRequest struct {
	Kind      string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	req := &ListTicketsRequest{
		Kind:      c.Query("kind"),
		Status:    c.Query("status"),
		Page:      1,
		PageSize:  20,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}

	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		req.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", "20")); err == nil && v > 0 && v <= 100 {
		req.PageSize = v
	}
	return req
}

type TicketResponse struct {
	ID          uint       `json:"id"`
	Kind        string     `json:"kind"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	OwnerID     uint       `json:"owner_id"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
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
}

func NewTicketResponseList(tickets []*ticket.Ticket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, NewTicketResponse(t))
	}
	return responses
}
