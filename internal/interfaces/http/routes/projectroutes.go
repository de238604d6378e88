package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "helioscale/internal/interfaces/http/handlers/project"
	"helioscale/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	RoleGate       *middleware.RoleGateMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	// The portfolio is public; authentication is optional so staff see
	// projects still in planning.
	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.OptionalAuth())
	{
		projects.GET("", config.ProjectHandler.ListProjects)
		projects.GET("/:id", config.ProjectHandler.GetProject)
	}

	admin := engine.Group("/admin/projects")
	admin.Use(config.AuthMiddleware.RequireAuth(), config.RoleGate.RequireAdmin())
	{
		admin.POST("", config.ProjectHandler.CreateProject)
		admin.PUT("/:id/team", config.ProjectHandler.AssignTeam)
		admin.PATCH("/:id/status", config.ProjectHandler.ChangeStatus)
		admin.POST("/:id/images", config.ProjectHandler.AddImage)
	}
}
