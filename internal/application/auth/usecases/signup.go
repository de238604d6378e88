package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type SignupCommand struct {
	Email    string
	Name     string
	Phone    string
	Company  string
	Password string
}

type SignupResult struct {
	Account *account.Account
}

// SignupUseCase registers a new customer account. New accounts start
// unverified and cannot log in until an admin verifies them.
type SignupUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	mailer      WelcomeMailer
	logger      logger.Interface
}

func NewSignupUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	mailer WelcomeMailer,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.accountRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc, err := account.NewAccount(email, cmd.Name, cmd.Phone, cmd.Company, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Save(ctx, acc); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save account", "error", err)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	if err := uc.mailer.SendWelcomeEmail(acc.Email().String(), acc.Name()); err != nil {
		uc.logger.Warnw("failed to send welcome email",
			"account_id", acc.ID(),
			"error", err,
		)
	}

	uc.logger.Infow("account registered", "account_id", acc.ID(), "email", acc.Email().String())
	return &SignupResult{Account: acc}, nil
}
