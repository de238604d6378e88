package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type GetAccountCommand struct {
	AccountID uint
}

type GetAccountResult struct {
	Account *account.Account
}

type GetAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetAccountUseCase(accountRepo account.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo, logger: logger}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, cmd GetAccountCommand) (*GetAccountResult, error) {
	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountID, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &GetAccountResult{Account: acc}, nil
}
