package usecases

import (
	"context"
	"fmt"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type CreateEmployeeCommand struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

type CreateEmployeeResult struct {
	Account *account.Account
}

// CreateEmployeeUseCase provisions an employee account. Employee
// accounts are created verified since an admin vouches for them.
type CreateEmployeeUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	mailer      AccountMailer
	logger      logger.Interface
}

func NewCreateEmployeeUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	mailer AccountMailer,
	logger logger.Interface,
) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*CreateEmployeeResult, error) {
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

	acc, err := account.NewEmployeeAccount(email, cmd.Name, cmd.Phone, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Save(ctx, acc); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save employee account", "error", err)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	if err := uc.mailer.SendWelcomeEmail(acc.Email().String(), acc.Name()); err != nil {
		uc.logger.Warnw("failed to send welcome email", "account_id", acc.ID(), "error", err)
	}

	uc.logger.Infow("employee account created", "account_id", acc.ID())
	return &CreateEmployeeResult{Account: acc}, nil
}
