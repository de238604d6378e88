package usecases

import (
	"context"
	"fmt"
	"strings"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Account   *account.Account
	Token     string
	ExpiresIn int64
}

// LoginUseCase authenticates an account and issues an access token
// whose claims carry the role flags current at login time.
type LoginUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	tokens      TokenIssuer
	// allowList holds emails permitted to log in before verification,
	// typically the bootstrap admin.
	allowList []string
	logger    logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	allowList []string,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		allowList:   allowList,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	acc, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same error as a bad password so the response does not
			// reveal whether the email is registered.
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, acc.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !acc.IsVerified() && !uc.isAllowListed(acc.Email().String()) {
		return nil, errors.NewPendingVerificationError()
	}

	if !acc.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	token, err := uc.tokens.Generate(acc.ID(), acc.Email().String(), acc.RoleFlags())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "account_id", acc.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("account logged in", "account_id", acc.ID())
	return &LoginResult{
		Account:   acc,
		Token:     token,
		ExpiresIn: uc.tokens.ExpiresIn(),
	}, nil
}

func (uc *LoginUseCase) isAllowListed(email string) bool {
	for _, allowed := range uc.allowList {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}
