package project

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/project/usecases"
	"helioscale/internal/interfaces/http/middleware"
	"helioscale/internal/shared/authorization"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/utils"
)

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateProjectCommand) (*usecases.CreateProjectResult, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetProjectCommand) (*usecases.GetProjectResult, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListProjectsCommand) (*usecases.ListProjectsResult, error)
}

type AssignTeamExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignTeamCommand) (*usecases.AssignTeamResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeProjectStatusCommand) (*usecases.ChangeProjectStatusResult, error)
}

type AddImageExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddProjectImageCommand) (*usecases.AddProjectImageResult, error)
}

// ImageStore persists an uploaded file and returns its public path.
type ImageStore interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
}

type Handler struct {
	createProjectUC CreateProjectExecutor
	getProjectUC    GetProjectExecutor
	listProjectsUC  ListProjectsExecutor
	assignTeamUC    AssignTeamExecutor
	changeStatusUC  ChangeStatusExecutor
	addImageUC      AddImageExecutor
	imageStore      ImageStore
}

func NewHandler(
	createProjectUC CreateProjectExecutor,
	getProjectUC GetProjectExecutor,
	listProjectsUC ListProjectsExecutor,
	assignTeamUC AssignTeamExecutor,
	changeStatusUC ChangeStatusExecutor,
	addImageUC AddImageExecutor,
	imageStore ImageStore,
) *Handler {
	return &Handler{
		createProjectUC: createProjectUC,
		getProjectUC:    getProjectUC,
		listProjectsUC:  listProjectsUC,
		assignTeamUC:    assignTeamUC,
		changeStatusUC:  changeStatusUC,
		addImageUC:      addImageUC,
		imageStore:      imageStore,
	}
}

// CreateProject handles POST /admin/projects
func (h *Handler) CreateProject(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), req.ToCommand(claims.AccountID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewProjectResponse(result.Project), "Project created successfully")
}

// GetProject handles GET /projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var actorID uint
	var flags authorization.RoleFlags
	if claims, ok := middleware.ClaimsFromContext(c); ok {
		actorID = claims.AccountID
		flags = claims.RoleFlags()
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectCommand{
		ProjectID: projectID,
		ActorID:   actorID,
		Flags:     flags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewProjectResponse(result.Project))
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(c *gin.Context) {
	req := parseListProjectsRequest(c)

	var flags authorization.RoleFlags
	if claims, ok := middleware.ClaimsFromContext(c); ok {
		flags = claims.RoleFlags()
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsCommand{
		Flags:    flags,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewProjectResponseList(result.Projects), result.Total, req.Page, req.PageSize)
}

// AssignTeam handles PUT /admin/projects/:id/team
func (h *Handler) AssignTeam(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assignTeamUC.Execute(c.Request.Context(), usecases.AssignTeamCommand{
		ProjectID:     projectID,
		TeamMemberIDs: req.TeamMemberIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project team assigned", NewProjectResponse(result.Project))
}

// ChangeStatus handles PATCH /admin/projects/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeProjectStatusCommand{
		ProjectID: projectID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project status updated", NewProjectResponse(result.Project))
}

// AddImage handles POST /admin/projects/:id/images with a multipart
// form carrying the file under "image" and an optional caption field.
func (h *Handler) AddImage(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("image file is required"))
		return
	}

	var req AddImageRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid form data", err.Error()))
		return
	}

	path, err := h.imageStore.SaveImage(fileHeader)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addImageUC.Execute(c.Request.Context(), usecases.AddProjectImageCommand{
		ProjectID: projectID,
		Path:      path,
		Caption:   req.Caption,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ImageResponse{
		ID:        result.Image.ID,
		Path:      result.Image.Path,
		Caption:   result.Image.Caption,
		CreatedAt: result.Image.CreatedAt,
	}, "Project image added")
}
