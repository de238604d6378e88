package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type SetVerifiedCommand struct {
	AccountID uint
	Verified  bool
}

type SetVerifiedResult struct {
	Account *account.Account
}

// SetVerifiedUseCase toggles the admin verification flag that gates
// customer logins. Verifying an already verified account is a no-op
// and sends no notification.
type SetVerifiedUseCase struct {
	accountRepo account.Repository
	mailer      AccountMailer
	logger      logger.Interface
}

func NewSetVerifiedUseCase(
	accountRepo account.Repository,
	mailer AccountMailer,
	logger logger.Interface,
) *SetVerifiedUseCase {
	return &SetVerifiedUseCase{
		accountRepo: accountRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *SetVerifiedUseCase) Execute(ctx context.Context, cmd SetVerifiedCommand) (*SetVerifiedResult, error) {
	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountID, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if acc.IsVerified() == cmd.Verified {
		return &SetVerifiedResult{Account: acc}, nil
	}

	if cmd.Verified {
		acc.Verify()
	} else {
		acc.Unverify()
	}

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	if cmd.Verified {
		if err := uc.mailer.SendAccountVerifiedEmail(acc.Email().String(), acc.Name()); err != nil {
			uc.logger.Warnw("failed to send verification email", "account_id", acc.ID(), "error", err)
		}
	}

	uc.logger.Infow("account verification changed", "account_id", acc.ID(), "verified", cmd.Verified)
	return &SetVerifiedResult{Account: acc}, nil
}
