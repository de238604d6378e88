package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type PromoteAccountCommand struct {
	Email string
	// Secret must match the configured promotion secret.
	Secret string
}

type PromoteAccountResult struct {
	Account *account.Account
}

// PromoteAccountUseCase elevates an account to admin. It is guarded by
// a shared secret rather than an admin session so the first admin can
// be bootstrapped on a fresh deployment.
type PromoteAccountUseCase struct {
	accountRepo     account.Repository
	promotionSecret string
	roleCache       RoleCacheInvalidator
	logger          logger.Interface
}

func NewPromoteAccountUseCase(
	accountRepo account.Repository,
	promotionSecret string,
	roleCache RoleCacheInvalidator,
	logger logger.Interface,
) *PromoteAccountUseCase {
	return &PromoteAccountUseCase{
		accountRepo:     accountRepo,
		promotionSecret: promotionSecret,
		roleCache:       roleCache,
		logger:          logger,
	}
}

func (uc *PromoteAccountUseCase) Execute(ctx context.Context, cmd PromoteAccountCommand) (*PromoteAccountResult, error) {
	if uc.promotionSecret == "" ||
		subtle.ConstantTimeCompare([]byte(cmd.Secret), []byte(uc.promotionSecret)) != 1 {
		uc.logger.Warnw("promotion attempt with wrong secret", "email", cmd.Email)
		return nil, errors.NewForbiddenError("invalid promotion secret")
	}

	acc, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	acc.Promote()
	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	// Tokens issued before the promotion carry stale flags; dropping
	// the cached entry makes the next gated request see the new role.
	if err := uc.roleCache.Invalidate(ctx, acc.ID()); err != nil {
		uc.logger.Warnw("failed to invalidate role cache", "account_id", acc.ID(), "error", err)
	}

	uc.logger.Infow("account promoted to admin", "account_id", acc.ID())
	return &PromoteAccountResult{Account: acc}, nil
}
