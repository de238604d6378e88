package project

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/project/usecases"
	"helioscale/internal/domain/project"
)

type CreateProjectRequest struct {
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description" binding:"omitempty,max=5000"`
	Location      string     `json:"location" binding:"omitempty,max=200"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	TeamMemberIDs []uint     `json:"team_member_ids"`
}

func (r *CreateProjectRequest) ToCommand(creatorID uint) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		CreatorID:     creatorID,
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		TeamMemberIDs: r.TeamMemberIDs,
	}
}

type AssignTeamRequest struct {
	TeamMemberIDs []uint `json:"team_member_ids" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddImageRequest struct {
	Caption string `form:"caption" binding:"omitempty,max=500"`
}

type ListProjectsRequest struct {
	Status   string
	Page     int
	PageSize int
}

func parseListProjectsRequest(c *gin.Context) *ListProjectsRequest {
	req := &ListProjectsRequest{
		Status:   c.Query("status"),
		Page:     1,
		PageSize: 20,
	}

	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		req.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", "20")); err == nil && v > 0 && v <= 100 {
		req.PageSize = v
	}
	return req
}

type ImageResponse struct {
	ID        uint      `json:"id"`
	Path      string    `json:"path"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status"`
	Location      string          `json:"location,omitempty"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	CreatorID     uint            `json:"creator_id"`
	TeamMemberIDs []uint          `json:"team_member_ids"`
	Images        []ImageResponse `json:"images"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewProjectResponse(p *project.Project) ProjectResponse {
	images := make([]ImageResponse, 0, len(p.Images()))
	for _, img := range p.Images() {
		images = append(images, ImageResponse{
			ID:        img.ID,
			Path:      img.Path,
			Caption:   img.Caption,
			CreatedAt: img.CreatedAt,
		})
	}

	return ProjectResponse{
		ID:            p.ID(),
		Title:         p.Title(),
		Description:   p.Description(),
		Status:        p.Status().String(),
		Location:      p.Location(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		CreatorID:     p.CreatorID(),
		TeamMemberIDs: p.TeamMemberIDs(),
		Images:        images,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func NewProjectResponseList(projects []*project.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, NewProjectResponse(p))
	}
	return responses
}
