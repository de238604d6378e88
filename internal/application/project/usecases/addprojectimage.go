package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/project"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type AddProjectImageCommand struct {
	ProjectID uint
	// Path is the public path of the already stored file.
	Path    string
	Caption string
}

type AddProjectImageResult struct {
	Image project.Image
}

// AddProjectImageUseCase attaches an uploaded image to a project.
// Images are insert-only; there is no update or delete.
type AddProjectImageUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewAddProjectImageUseCase(projectRepo project.Repository, logger logger.Interface) *AddProjectImageUseCase {
	return &AddProjectImageUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *AddProjectImageUseCase) Execute(ctx context.Context, cmd AddProjectImageCommand) (*AddProjectImageResult, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := p.AddImage(cmd.Path, cmd.Caption); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	images := p.Images()
	image := images[len(images)-1]

	if err := uc.projectRepo.AddImage(ctx, &image); err != nil {
		uc.logger.Errorw("failed to save project image", "project_id", p.ID(), "error", err)
		return nil, fmt.Errorf("failed to save project image: %w", err)
	}

	uc.logger.Infow("project image added", "project_id", p.ID(), "path", image.Path)
	return &AddProjectImageResult{Image: image}, nil
}
