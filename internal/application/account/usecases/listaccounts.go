package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/logger"
)

type ListAccountsCommand struct {
	IsEmployee *bool
	IsAdmin    *bool
	IsActive   *bool
	IsVerified *bool
	Page       int
	PageSize   int
}

type ListAccountsResult struct {
	Accounts []*account.Account
	Total    int64
	Page     int
	PageSize int
}

type ListAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo, logger: logger}
}

func (uc *ListAccountsUseCase) Execute(ctx context.Context, cmd ListAccountsCommand) (*ListAccountsResult, error) {
	filter := account.Filter{
		IsEmployee: cmd.IsEmployee,
		IsAdmin:    cmd.IsAdmin,
		IsActive:   cmd.IsActive,
		IsVerified: cmd.IsVerified,
		Page:       cmd.Page,
		PageSize:   cmd.PageSize,
	}

	accounts, total, err := uc.accountRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsResult{
		Accounts: accounts,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}
