package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/project"
	vo "helioscale/internal/domain/project/valueobjects"
	"helioscale/internal/shared/authorization"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type ListProjectsCommand struct {
	Flags authorization.RoleFlags

	Status   string
	MemberID *uint
	Page     int
	PageSize int
}

type ListProjectsResult struct {
	Projects []*project.Project
	Total    int64
	Page     int
	PageSize int
}

// ListProjectsUseCase lists the portfolio. Visitors and customers see
// only ongoing and completed projects; admins and employees see all.
type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, cmd ListProjectsCommand) (*ListProjectsResult, error) {
	filter := project.Filter{
		MemberID: cmd.MemberID,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewProjectStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if !cmd.Flags.IsAdmin && !cmd.Flags.IsEmployee {
		filter.PublicOnly = true
	}

	projects, total, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &ListProjectsResult{
		Projects: projects,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
