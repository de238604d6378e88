package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "helioscale/internal/interfaces/http/handlers/auth"
	"helioscale/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.Handler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.RateLimiter != nil {
		auth.Use(config.RateLimiter.Limit())
	}
	{
		auth.POST("/signup", config.AuthHandler.Signup)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/promote", config.AuthHandler.Promote)
	}
}
