package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type ChangePasswordCommand struct {
	AccountID   uint
	OldPassword string
	NewPassword string
}

type ChangePasswordUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewChangePasswordUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountID, "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}

	if err := uc.hasher.Verify(cmd.OldPassword, acc.PasswordHash()); err != nil {
		return errors.NewInvalidCredentialsError()
	}

	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := acc.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return fmt.Errorf("failed to update account: %w", err)
	}

	uc.logger.Infow("password changed", "account_id", acc.ID())
	return nil
}
