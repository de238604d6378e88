package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/project"
	vo "helioscale/internal/domain/project/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type ChangeProjectStatusCommand struct {
	ProjectID uint
	Status    string
}

type ChangeProjectStatusResult struct {
	Project *project.Project
}

type ChangeProjectStatusUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewChangeProjectStatusUseCase(projectRepo project.Repository, logger logger.Interface) *ChangeProjectStatusUseCase {
	return &ChangeProjectStatusUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ChangeProjectStatusUseCase) Execute(ctx context.Context, cmd ChangeProjectStatusCommand) (*ChangeProjectStatusResult, error) {
	status, err := vo.NewProjectStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := p.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", p.ID(), "error", err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("project status changed", "project_id", p.ID(), "status", status.String())
	return &ChangeProjectStatusResult{Project: p}, nil
}
