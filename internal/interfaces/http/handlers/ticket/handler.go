package ticket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/ticket/usecases"
	"helioscale/internal/interfaces/http/middleware"
	"helioscale/internal/shared/utils"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetTicketCommand) (*usecases.GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListTicketsCommand) (*usecases.ListTicketsResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignTicketCommand) (*usecases.AssignTicketResult, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketStatusCommand) (*usecases.UpdateTicketStatusResult, error)
}

type Handler struct {
	createTicketUC CreateTicketExecutor
	getTicketUC    GetTicketExecutor
	listTicketsUC  ListTicketsExecutor
	assignTicketUC AssignTicketExecutor
	updateStatusUC UpdateTicketStatusExecutor
}

func NewHandler(
	createTicketUC CreateTicketExecutor,
	getTicketUC GetTicketExecutor,
	listTicketsUC ListTicketsExecutor,
	assignTicketUC AssignTicketExecutor,
	updateStatusUC UpdateTicketStatusExecutor,
) *Handler {
	return &Handler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		assignTicketUC: assignTicketUC,
		updateStatusUC: updateStatusUC,
	}
}

// CreateTicket handles POST /tickets
func (h *Handler) CreateTicket(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(claims.AccountID, claims.IsAdmin))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTicketResponse(result.Ticket), "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *Handler) GetTicket(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: ticketID,
		ActorID:  claims.AccountID,
		IsAdmin:  claims.IsAdmin,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketResponse(result.Ticket))
}

// ListTickets handles GET /tickets
func (h *Handler) ListTickets(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		ActorID:   claims.AccountID,
		Flags:     claims.RoleFlags(),
		Kind:      req.Kind,
		Status:    req.Status,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewTicketResponseList(result.Tickets), result.Total, req.Page, req.PageSize)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *Handler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", NewTicketResponse(result.Ticket))
}

// UpdateStatus handles PATCH /tickets/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
		ActorID:  claims.AccountID,
		IsAdmin:  claims.IsAdmin,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", NewTicketResponse(result.Ticket))
}
