package usecases

import (
	"context"
	"fmt"
	"time"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/project"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type CreateProjectCommand struct {
	CreatorID     uint
	Title         string
	Description   string
	Location      string
	StartDate     *time.Time
	EndDate       *time.Time
	TeamMemberIDs []uint
}

type CreateProjectResult struct {
	Project *project.Project
}

// CreateProjectUseCase creates a project together with its initial
// team. The project row and membership rows are written in one
// transaction so a partially created project is never visible.
type CreateProjectUseCase struct {
	projectRepo project.Repository
	accountRepo account.Repository
	tx          Transactor
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	accountRepo account.Repository,
	tx Transactor,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	p, err := project.NewProject(cmd.Title, cmd.Description, cmd.Location, cmd.StartDate, cmd.EndDate, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.TeamMemberIDs) > 0 {
		if err := uc.validateMembers(ctx, cmd.TeamMemberIDs); err != nil {
			return nil, err
		}
		if err := p.AssignTeam(cmd.TeamMemberIDs); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.Save(txCtx, p)
	}); err != nil {
		uc.logger.Errorw("failed to save project", "error", err)
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	uc.logger.Infow("project created",
		"project_id", p.ID(),
		"creator_id", p.CreatorID(),
		"team_size", len(p.TeamMemberIDs()),
	)
	return &CreateProjectResult{Project: p}, nil
}

func (uc *CreateProjectUseCase) validateMembers(ctx context.Context, memberIDs []uint) error {
	for _, id := range memberIDs {
		acc, err := uc.accountRepo.GetByID(ctx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError(fmt.Sprintf("team member %d not found", id))
			}
			return fmt.Errorf("failed to check team member: %w", err)
		}
		if !acc.IsEmployee() && !acc.IsAdmin() {
			return errors.NewValidationError(fmt.Sprintf("team member %d is not an employee", id))
		}
	}
	return nil
}
