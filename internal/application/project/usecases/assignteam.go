package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/domain/project"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type AssignTeamCommand struct {
	ProjectID     uint
	TeamMemberIDs []uint
}

type AssignTeamResult struct {
	Project *project.Project
}

// AssignTeamUseCase replaces a project's team with the given employee
// accounts. The swap happens in one transaction so readers never see a
// half-replaced team.
type AssignTeamUseCase struct {
	projectRepo project.Repository
	accountRepo account.Repository
	tx          Transactor
	logger      logger.Interface
}

func NewAssignTeamUseCase(
	projectRepo project.Repository,
	accountRepo account.Repository,
	tx Transactor,
	logger logger.Interface,
) *AssignTeamUseCase {
	return &AssignTeamUseCase{
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *AssignTeamUseCase) Execute(ctx context.Context, cmd AssignTeamCommand) (*AssignTeamResult, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	for _, id := range cmd.TeamMemberIDs {
		acc, err := uc.accountRepo.GetByID(ctx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError(fmt.Sprintf("team member %d not found", id))
			}
			return nil, fmt.Errorf("failed to check team member: %w", err)
		}
		if !acc.IsEmployee() && !acc.IsAdmin() {
			return nil, errors.NewValidationError(fmt.Sprintf("team member %d is not an employee", id))
		}
	}

	if err := p.AssignTeam(cmd.TeamMemberIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.ReplaceTeam(txCtx, p.ID(), cmd.TeamMemberIDs)
	}); err != nil {
		uc.logger.Errorw("failed to replace team", "project_id", p.ID(), "error", err)
		return nil, fmt.Errorf("failed to replace team: %w", err)
	}

	uc.logger.Infow("project team assigned", "project_id", p.ID(), "team_size", len(cmd.TeamMemberIDs))
	return &AssignTeamResult{Project: p}, nil
}
