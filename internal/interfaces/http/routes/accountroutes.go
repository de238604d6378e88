package routes

import (
	"github.com/gin-gonic/gin"

	accounthandlers "helioscale/internal/interfaces/http/handlers/account"
	"helioscale/internal/interfaces/http/middleware"
)

type AccountRouteConfig struct {
	AccountHandler *accounthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	RoleGate       *middleware.RoleGateMiddleware
}

func SetupAccountRoutes(engine *gin.Engine, config *AccountRouteConfig) {
	profile := engine.Group("/profile")
	profile.Use(config.AuthMiddleware.RequireAuth())
	{
		profile.GET("", config.AccountHandler.GetProfile)
		profile.PUT("", config.AccountHandler.UpdateProfile)
		profile.POST("/password", config.AccountHandler.ChangePassword)
	}

	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), config.RoleGate.RequireAdmin())
	{
		admin.POST("/employees", config.AccountHandler.CreateEmployee)
		admin.GET("/accounts", config.AccountHandler.ListAccounts)
		admin.PATCH("/accounts/:id/verified", config.AccountHandler.SetVerified)
		admin.POST("/accounts/:id/deactivate", config.AccountHandler.Deactivate)
	}
}
