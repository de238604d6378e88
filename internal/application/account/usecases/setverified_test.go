package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioscale/internal/domain/account"
	"helioscale/internal/shared/errors"
	"helioscale/internal/shared/logger"
)

func TestSetVerifiedUseCase_Verify(t *testing.T) {
	acc := reconstructAccount(t, 3, false)
	var updated bool
	repo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return acc, nil
		},
		UpdateFunc: func(ctx context.Context, a *account.Account) error {
			updated = true
			return nil
		},
	}
	mailer := &mockAccountMailer{}

	uc := NewSetVerifiedUseCase(repo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SetVerifiedCommand{AccountID: 3, Verified: true})

	require.NoError(t, err)
	assert.True(t, result.Account.IsVerified())
	assert.True(t, updated)
	assert.Equal(t, []string{"member@example.com"}, mailer.verifiedCalls)
}

func TestSetVerifiedUseCase_AlreadyVerifiedIsNoOp(t *testing.T) {
	acc := reconstructAccount(t, 3, true)
	repo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return acc, nil
		},
		UpdateFunc: func(ctx context.Context, a *account.Account) error {
			t.Fatal("no update for an unchanged flag")
			return nil
		},
	}
	mailer := &mockAccountMailer{}

	uc := NewSetVerifiedUseCase(repo, mailer, logger.NewLogger())
	_, err := uc.Execute(context.Background(), SetVerifiedCommand{AccountID: 3, Verified: true})

	require.NoError(t, err)
	assert.Empty(t, mailer.verifiedCalls, "repeat verification must not re-notify")
}

func TestSetVerifiedUseCase_UnverifySendsNoEmail(t *testing.T) {
	acc := reconstructAccount(t, 3, true)
	repo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return acc, nil
		},
	}
	mailer := &mockAccountMailer{}

	uc := NewSetVerifiedUseCase(repo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SetVerifiedCommand{AccountID: 3, Verified: false})

	require.NoError(t, err)
	assert.False(t, result.Account.IsVerified())
	assert.Empty(t, mailer.verifiedCalls)
}

func TestSetVerifiedUseCase_EmailFailureIsNonFatal(t *testing.T) {
	acc := reconstructAccount(t, 3, false)
	repo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return acc, nil
		},
	}
	mailer := &mockAccountMailer{err: assert.AnError}

	uc := NewSetVerifiedUseCase(repo, mailer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SetVerifiedCommand{AccountID: 3, Verified: true})

	require.NoError(t, err)
	assert.True(t, result.Account.IsVerified())
}

func TestSetVerifiedUseCase_AccountMissing(t *testing.T) {
	repo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*account.Account, error) {
			return nil, errors.NewNotFoundError("account not found")
		},
	}

	uc := NewSetVerifiedUseCase(repo, &mockAccountMailer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), SetVerifiedCommand{AccountID: 99, Verified: true})
	assert.True(t, errors.IsNotFoundError(err))
}
