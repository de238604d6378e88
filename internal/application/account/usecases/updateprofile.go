package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type UpdateProfileCommand struct {
	AccountID uint
	Name      string
	Phone     string
	Company   string
}

type UpdateProfileResult struct {
	Account *account.Account
}

type UpdateProfileUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(accountRepo account.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{accountRepo: accountRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountID, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := acc.UpdateProfile(cmd.Name, cmd.Phone, cmd.Company); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateProfileResult{Account: acc}, nil
}
