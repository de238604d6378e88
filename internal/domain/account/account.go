package account

import (
	"fmt"
	"time"

	"helioscale/internal/shared/authorization"

	vo "helioscale/internal/domain/account/valueobjects"
)

// Account is a customer, employee, or admin identity. The role is a
// set of flags rather than an enum: an admin is usually also an
// employee, and verification/activation are orthogonal to both.
type Account struct {
	id           uint
	email        *vo.Email
	name         string
	phone        string
	company      string
	passwordHash string
	isAdmin      bool
	isEmployee   bool
	isActive     bool
	isVerified   bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAccount creates a customer account pending admin verification.
func NewAccount(email *vo.Email, name, phone, company, passwordHash string) (*Account, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &Account{
		email:        email,
		name:         name,
		phone:        phone,
		company:      company,
		passwordHash: passwordHash,
		isActive:     true,
		isVerified:   false,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewEmployeeAccount creates an employee account. Employees are
// created by admins and start verified.
func NewEmployeeAccount(email *vo.Email, name, phone, passwordHash string) (*Account, error) {
	a, err := NewAccount(email, name, phone, "", passwordHash)
	if err != nil {
		return nil, err
	}
	a.isEmployee = true
	a.isVerified = true
	return a, nil
}

// ReconstructAccount rebuilds an account from persistence.
func ReconstructAccount(
	id uint,
	email *vo.Email,
	name, phone, company, passwordHash string,
	isAdmin, isEmployee, isActive, isVerified bool,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Account{
		id:           id,
		email:        email,
		name:         name,
		phone:        phone,
		company:      company,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		isEmployee:   isEmployee,
		isActive:     isActive,
		isVerified:   isVerified,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Account) ID() uint             { return a.id }
func (a *Account) Email() *vo.Email     { return a.email }
func (a *Account) Name() string         { return a.name }
func (a *Account) Phone() string        { return a.phone }
func (a *Account) Company() string      { return a.company }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) IsAdmin() bool        { return a.isAdmin }
func (a *Account) IsEmployee() bool     { return a.isEmployee }
func (a *Account) IsActive() bool       { return a.isActive }
func (a *Account) IsVerified() bool     { return a.isVerified }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// RoleFlags returns the flags embedded into issued tokens.
func (a *Account) RoleFlags() authorization.RoleFlags {
	return authorization.RoleFlags{
		IsAdmin:    a.isAdmin,
		IsEmployee: a.isEmployee,
	}
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// Verify marks the account as admin-verified.
func (a *Account) Verify() {
	if a.isVerified {
		return
	}
	a.isVerified = true
	a.updatedAt = time.Now()
}

// Unverify flips the account back to pending verification.
func (a *Account) Unverify() {
	if !a.isVerified {
		return
	}
	a.isVerified = false
	a.updatedAt = time.Now()
}

// Promote grants the admin flag. Admins are implicitly employees.
func (a *Account) Promote() {
	if a.isAdmin {
		return
	}
	a.isAdmin = true
	a.isEmployee = true
	a.updatedAt = time.Now()
}

// Demote removes the admin flag but keeps employee status.
func (a *Account) Demote() {
	if !a.isAdmin {
		return
	}
	a.isAdmin = false
	a.updatedAt = time.Now()
}

// Deactivate disables the account. Accounts are never hard-deleted.
func (a *Account) Deactivate() {
	if !a.isActive {
		return
	}
	a.isActive = false
	a.updatedAt = time.Now()
}

// Activate re-enables a deactivated account.
func (a *Account) Activate() {
	if a.isActive {
		return
	}
	a.isActive = true
	a.updatedAt = time.Now()
}

// UpdateProfile changes the mutable profile fields.
func (a *Account) UpdateProfile(name, phone, company string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	a.name = name
	a.phone = phone
	a.company = company
	a.updatedAt = time.Now()
	return nil
}

// ChangePasswordHash replaces the stored password hash.
func (a *Account) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = hash
	a.updatedAt = time.Now()
	return nil
}
