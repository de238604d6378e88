package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helioscale/internal/domain/account/valueobjects"
)

func mustEmail(t *testing.T, value string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(value)
	require.NoError(t, err)
	return email
}

func TestNewAccount(t *testing.T) {
	acc, err := NewAccount(mustEmail(t, "alice@example.com"), "Alice", "555-0100", "Acme Scales", "hash")
	require.NoError(t, err)

	assert.False(t, acc.IsAdmin())
	assert.False(t, acc.IsEmployee())
	assert.True(t, acc.IsActive())
	assert.False(t, acc.IsVerified(), "customer signups start unverified")
}

func TestNewEmployeeAccount(t *testing.T) {
	acc, err := NewEmployeeAccount(mustEmail(t, "bob@example.com"), "Bob", "555-0101", "hash")
	require.NoError(t, err)

	assert.True(t, acc.IsEmployee())
	assert.False(t, acc.IsAdmin())
	assert.True(t, acc.IsVerified(), "admin-created employees skip verification")
}

func TestAccount_PromoteDemote(t *testing.T) {
	acc, err := NewAccount(mustEmail(t, "carol@example.com"), "Carol", "", "", "hash")
	require.NoError(t, err)

	acc.Promote()
	assert.True(t, acc.IsAdmin())
	assert.True(t, acc.IsEmployee(), "admin implies employee")

	flags := acc.RoleFlags()
	assert.True(t, flags.IsAdmin)
	assert.True(t, flags.IsEmployee)

	acc.Demote()
	assert.False(t, acc.IsAdmin())
	assert.True(t, acc.IsEmployee(), "demotion keeps the employee flag")
}

func TestAccount_VerifyAndDeactivate(t *testing.T) {
	acc, err := NewAccount(mustEmail(t, "dave@example.com"), "Dave", "", "", "hash")
	require.NoError(t, err)

	acc.Verify()
	assert.True(t, acc.IsVerified())

	acc.Deactivate()
	assert.False(t, acc.IsActive())

	acc.Activate()
	assert.True(t, acc.IsActive())
}

func TestAccount_SetID(t *testing.T) {
	acc, err := NewAccount(mustEmail(t, "erin@example.com"), "Erin", "", "", "hash")
	require.NoError(t, err)

	require.NoError(t, acc.SetID(7))
	assert.Error(t, acc.SetID(8), "ID can only be set once")
	assert.Equal(t, uint(7), acc.ID())
}

func TestPasswordValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"minimum length", "secret", false},
		{"typical", "secret1", false},
		{"too short", "abc", true},
		{"too long for bcrypt", string(make([]byte, 73)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vo.NewPassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
