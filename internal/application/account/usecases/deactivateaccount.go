package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type DeactivateAccountCommand struct {
	AccountID uint
	// ActorID is the admin performing the deactivation. Admins cannot
	// deactivate themselves.
	ActorID uint
}

type DeactivateAccountResult struct {
	Account *account.Account
}

// DeactivateAccountUseCase blocks an account from logging in. The role
// cache entry is dropped so an existing token stops passing gated
// routes within one cache miss.
type DeactivateAccountUseCase struct {
	accountRepo account.Repository
	roleCache   RoleCacheInvalidator
	logger      logger.Interface
}

func NewDeactivateAccountUseCase(
	accountRepo account.Repository,
	roleCache RoleCacheInvalidator,
	logger logger.Interface,
) *DeactivateAccountUseCase {
	return &DeactivateAccountUseCase{
		accountRepo: accountRepo,
		roleCache:   roleCache,
		logger:      logger,
	}
}

func (uc *DeactivateAccountUseCase) Execute(ctx context.Context, cmd DeactivateAccountCommand) (*DeactivateAccountResult, error) {
	if cmd.AccountID == cmd.ActorID {
		return nil, errors.NewValidationError("cannot deactivate your own account")
	}

	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountID, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	acc.Deactivate()
	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	if err := uc.roleCache.Invalidate(ctx, acc.ID()); err != nil {
		uc.logger.Warnw("failed to invalidate role cache", "account_id", acc.ID(), "error", err)
	}

	uc.logger.Infow("account deactivated", "account_id", acc.ID())
	return &DeactivateAccountResult{Account: acc}, nil
}
