package auth

import (
	"time"

	"helioscale/internal/application/auth/usecases"
	"helioscale/internal/domain/account"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Company  string `json:"company" binding:"omitempty,max=100"`
	Password string `json:"password" binding:"required"`
}

func (r *SignupRequest) ToCommand() usecases.SignupCommand {
	return usecases.SignupCommand{
		Email:    r.Email,
		Name:     r.Name,
		Phone:    r.Phone,
		Company:  r.Company,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PromoteRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Secret string `json:"secret" binding:"required"`
}

type AccountResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	IsEmployee bool      `json:"is_employee"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAccountResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:         acc.ID(),
		Email:      acc.Email().String(),
		Name:       acc.Name(),
		Phone:      acc.Phone(),
		Company:    acc.Company(),
		IsAdmin:    acc.IsAdmin(),
		IsEmployee: acc.IsEmployee(),
		IsActive:   acc.IsActive(),
		IsVerified: acc.IsVerified(),
		CreatedAt:  acc.CreatedAt(),
	}
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expires_in"`
	Account   AccountResponse `json:"account"`
}
