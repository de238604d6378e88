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

type GetProjectCommand struct {
	ProjectID uint
	// ActorID is zero for unauthenticated visitors.
	ActorID uint
	Flags   authorization.RoleFlags
}

type GetProjectResult struct {
	Project *project.Project
}

// GetProjectUseCase loads one project. Projects still in planning are
// visible only to admins and the assigned team; everyone else gets not
// found.
type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*GetProjectResult, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if !canViewProject(p, cmd.ActorID, cmd.Flags) {
		return nil, errors.NewNotFoundError("project not found")
	}

	return &GetProjectResult{Project: p}, nil
}

func canViewProject(p *project.Project, actorID uint, flags authorization.RoleFlags) bool {
	// Ongoing and completed projects are part of the public portfolio.
	if p.Status() != vo.StatusPlanned {
		return true
	}
	if flags.IsAdmin {
		return true
	}
	return actorID != 0 && (p.CreatorID() == actorID || p.HasTeamMember(actorID))
}
