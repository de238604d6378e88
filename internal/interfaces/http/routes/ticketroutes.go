package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helioscale/internal/interfaces/http/handlers/ticket"
	"helioscale/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	RoleGate       *middleware.RoleGateMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific action endpoints registered before /:id.
		tickets.POST("/:id/assign",
			config.RoleGate.RequireAdmin(),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status",
			config.RoleGate.RequireEmployee(),
			config.TicketHandler.UpdateStatus)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
